package logger

import (
	"fmt"
	"io"

	echo_log "github.com/labstack/gommon/log"
)

// EchoLoggerAdapter routes echo's framework logger into a module Logger so
// startup messages and internal errors share the application format.
//
//	e := echo.New()
//	e.Logger = logger.NewEchoLoggerAdapter(central.Module("api"))
type EchoLoggerAdapter struct {
	logger Logger
}

// NewEchoLoggerAdapter creates a new Echo logger adapter
func NewEchoLoggerAdapter(logger Logger) *EchoLoggerAdapter {
	if logger == nil {
		logger = NewSlogLogger(nil, LogLevelInfo, nil)
	}
	return &EchoLoggerAdapter{logger: logger}
}

func (a *EchoLoggerAdapter) Output() io.Writer       { return io.Discard }
func (a *EchoLoggerAdapter) SetOutput(_ io.Writer)   {}
func (a *EchoLoggerAdapter) Prefix() string          { return "" }
func (a *EchoLoggerAdapter) SetPrefix(_ string)      {}
func (a *EchoLoggerAdapter) Level() echo_log.Lvl     { return echo_log.INFO }
func (a *EchoLoggerAdapter) SetLevel(_ echo_log.Lvl) {}
func (a *EchoLoggerAdapter) SetHeader(_ string)      {}

func (a *EchoLoggerAdapter) Print(i ...any)                 { a.logger.Info(fmt.Sprint(i...)) }
func (a *EchoLoggerAdapter) Printf(format string, v ...any) { a.logger.Info(fmt.Sprintf(format, v...)) }
func (a *EchoLoggerAdapter) Printj(j echo_log.JSON)         { a.logger.Info("echo", Any("data", j)) }

func (a *EchoLoggerAdapter) Debug(i ...any)                 { a.logger.Debug(fmt.Sprint(i...)) }
func (a *EchoLoggerAdapter) Debugf(format string, v ...any) { a.logger.Debug(fmt.Sprintf(format, v...)) }
func (a *EchoLoggerAdapter) Debugj(j echo_log.JSON)         { a.logger.Debug("echo", Any("data", j)) }

func (a *EchoLoggerAdapter) Info(i ...any)                 { a.logger.Info(fmt.Sprint(i...)) }
func (a *EchoLoggerAdapter) Infof(format string, v ...any) { a.logger.Info(fmt.Sprintf(format, v...)) }
func (a *EchoLoggerAdapter) Infoj(j echo_log.JSON)         { a.logger.Info("echo", Any("data", j)) }

func (a *EchoLoggerAdapter) Warn(i ...any)                 { a.logger.Warn(fmt.Sprint(i...)) }
func (a *EchoLoggerAdapter) Warnf(format string, v ...any) { a.logger.Warn(fmt.Sprintf(format, v...)) }
func (a *EchoLoggerAdapter) Warnj(j echo_log.JSON)         { a.logger.Warn("echo", Any("data", j)) }

func (a *EchoLoggerAdapter) Error(i ...any)                 { a.logger.Error(fmt.Sprint(i...)) }
func (a *EchoLoggerAdapter) Errorf(format string, v ...any) { a.logger.Error(fmt.Sprintf(format, v...)) }
func (a *EchoLoggerAdapter) Errorj(j echo_log.JSON)         { a.logger.Error("echo", Any("data", j)) }

// Fatal variants log at ERROR and panic so the server's recover path runs
// instead of os.Exit.
func (a *EchoLoggerAdapter) Fatal(i ...any) { a.fail(fmt.Sprint(i...)) }
func (a *EchoLoggerAdapter) Fatalf(format string, v ...any) {
	a.fail(fmt.Sprintf(format, v...))
}
func (a *EchoLoggerAdapter) Fatalj(j echo_log.JSON) { a.fail(fmt.Sprintf("%v", j)) }

func (a *EchoLoggerAdapter) Panic(i ...any) { a.fail(fmt.Sprint(i...)) }
func (a *EchoLoggerAdapter) Panicf(format string, v ...any) {
	a.fail(fmt.Sprintf(format, v...))
}
func (a *EchoLoggerAdapter) Panicj(j echo_log.JSON) { a.fail(fmt.Sprintf("%v", j)) }

func (a *EchoLoggerAdapter) fail(msg string) {
	a.logger.Error(msg)
	panic(msg)
}
