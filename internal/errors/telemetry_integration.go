// Package errors - telemetry integration (optional)
package errors

import (
	"regexp"
	"sync/atomic"
)

// TelemetryReporter is an interface for reporting errors to telemetry systems
type TelemetryReporter interface {
	ReportError(err *EnhancedError)
	IsEnabled() bool
}

type reporterHolder struct {
	reporter TelemetryReporter
}

var globalTelemetryReporter atomic.Pointer[reporterHolder]

// SetTelemetryReporter sets the global telemetry reporter. Passing nil disables reporting.
func SetTelemetryReporter(reporter TelemetryReporter) {
	if reporter == nil {
		globalTelemetryReporter.Store(nil)
		return
	}
	globalTelemetryReporter.Store(&reporterHolder{reporter: reporter})
}

// GetTelemetryReporter returns the current telemetry reporter
func GetTelemetryReporter() TelemetryReporter {
	if h := globalTelemetryReporter.Load(); h != nil {
		return h.reporter
	}
	return nil
}

// reportToTelemetry reports an error to the configured telemetry system
func reportToTelemetry(ee *EnhancedError) {
	h := globalTelemetryReporter.Load()
	if h == nil || !h.reporter.IsEnabled() {
		return
	}
	h.reporter.ReportError(ee)
}

var (
	dsnCredentialRegex = regexp.MustCompile(`[^\s:/@]+:[^\s@]+@tcp\(`)
	secretParamRegex   = regexp.MustCompile(`(?i)(password|passwd|token|secret|dsn)[=:]\S+`)
	urlQueryRegex      = regexp.MustCompile(`(https?://[^?\s]+)\?\S*`)
)

// ScrubMessage removes credentials from messages before they leave the process.
func ScrubMessage(message string) string {
	scrubbed := urlQueryRegex.ReplaceAllString(message, "$1?[REDACTED]")
	scrubbed = dsnCredentialRegex.ReplaceAllString(scrubbed, "[CREDENTIALS_REDACTED]@tcp(")
	scrubbed = secretParamRegex.ReplaceAllString(scrubbed, "$1=[REDACTED]")
	return scrubbed
}
