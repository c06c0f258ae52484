package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/logger"
)

// Default timeouts for the HTTP server.
const (
	DefaultReadTimeout     = 30 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Server is the HTTP server for the journal API.
type Server struct {
	echo       *echo.Echo
	controller *Controller
	listen     string
	log        logger.Logger
}

// NewServer creates the echo instance, applies the webserver settings and
// registers the API routes.
func NewServer(settings *conf.Settings, svc *journal.Service, log logger.Logger, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = settings.WebServer.Debug
	e.Logger = logger.NewEchoLoggerAdapter(log)

	e.Server.ReadTimeout = orDefault(settings.WebServer.ReadTimeout, DefaultReadTimeout)
	e.Server.WriteTimeout = orDefault(settings.WebServer.WriteTimeout, DefaultWriteTimeout)
	e.Server.IdleTimeout = DefaultIdleTimeout

	return &Server{
		echo:       e,
		controller: New(e, svc, settings, log, opts...),
		listen:     settings.WebServer.Listen,
		log:        log,
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// Run serves until ctx is cancelled, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("HTTP server starting", logger.String("address", s.listen))
		if err := s.echo.Start(s.listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}
		return errors.New(fmt.Errorf("http server: %w", err)).
			Component("api").
			Category(errors.CategorySystem).
			Context("listen", s.listen).
			Build()
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	if err, ok := <-errCh; ok {
		return err
	}
	s.log.Info("HTTP server shutdown complete")
	return nil
}

// Echo returns the underlying echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Controller returns the API controller.
func (s *Server) Controller() *Controller {
	return s.controller
}
