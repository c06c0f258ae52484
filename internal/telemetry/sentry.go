// Package telemetry forwards selected EnhancedErrors to Sentry.
//
// Only infrastructure failures are reported: database and configuration
// errors. Validation, not-found, conflict and authorization errors are
// ordinary user outcomes and never leave the process.
package telemetry

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/logger"
)

const flushTimeout = 2 * time.Second

// reportedCategories lists the error categories forwarded to Sentry.
var reportedCategories = map[errors.ErrorCategory]bool{
	errors.CategoryDatabase:      true,
	errors.CategoryConfiguration: true,
	errors.CategorySystem:        true,
}

// SentryReporter implements errors.TelemetryReporter on top of a sentry hub.
type SentryReporter struct {
	hub     *sentry.Hub
	enabled atomic.Bool
	log     logger.Logger
}

// Option customizes the sentry client.
type Option func(*sentry.ClientOptions)

// WithTransport replaces the sentry transport, used by tests.
func WithTransport(t sentry.Transport) Option {
	return func(o *sentry.ClientOptions) {
		o.Transport = t
	}
}

// NewSentryReporter builds a reporter from settings. The returned reporter is
// disabled when sentry is not enabled in settings.
func NewSentryReporter(settings *conf.Settings, log logger.Logger, opts ...Option) (*SentryReporter, error) {
	r := &SentryReporter{log: log}
	if settings == nil || !settings.Sentry.Enabled {
		return r, nil
	}

	options := sentry.ClientOptions{
		Dsn:              settings.Sentry.DSN,
		SampleRate:       settings.Sentry.SampleRate,
		Environment:      settings.Sentry.Environment,
		AttachStacktrace: false,
		ServerName:       "",
		Release:          fmt.Sprintf("huntlog@%s", settings.Version),
		BeforeSend:       beforeSend,
	}
	for _, opt := range opts {
		opt(&options)
	}

	client, err := sentry.NewClient(options)
	if err != nil {
		return nil, fmt.Errorf("sentry initialization failed: %w", err)
	}

	r.hub = sentry.NewHub(client, sentry.NewScope())
	r.enabled.Store(true)
	if log != nil {
		log.Info("sentry error reporting enabled", logger.String("environment", settings.Sentry.Environment))
	}
	return r, nil
}

// beforeSend strips identifying data from every outgoing event.
func beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	event.Message = errors.ScrubMessage(event.Message)
	for i := range event.Exception {
		event.Exception[i].Value = errors.ScrubMessage(event.Exception[i].Value)
	}
	event.ServerName = ""
	event.User = sentry.User{}
	event.Request = nil
	return event
}

// IsEnabled implements errors.TelemetryReporter.
func (r *SentryReporter) IsEnabled() bool {
	return r != nil && r.enabled.Load()
}

// ReportError implements errors.TelemetryReporter.
func (r *SentryReporter) ReportError(ee *errors.EnhancedError) {
	if !r.IsEnabled() || ee == nil || ee.IsReported() {
		return
	}
	if !reportedCategories[ee.Category] {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", ee.Component)
		scope.SetTag("category", string(ee.Category))
		if ee.Priority != "" {
			scope.SetTag("priority", ee.Priority)
		}
		details := sentry.Context{}
		for k, v := range ee.GetContext() {
			if s, ok := v.(string); ok {
				v = errors.ScrubMessage(s)
			}
			details[k] = v
		}
		scope.SetContext("error", details)
		scope.SetFingerprint([]string{ee.Component, string(ee.Category)})
		scope.SetLevel(levelFor(ee))

		r.hub.CaptureMessage(fmt.Sprintf("%s: %s", ee.Component, errors.ScrubMessage(ee.Error())))
	})
	ee.MarkReported()
}

// Flush waits for queued events.
func (r *SentryReporter) Flush() bool {
	if !r.IsEnabled() {
		return true
	}
	return r.hub.Flush(flushTimeout)
}

// Disable stops reporting without tearing down the client.
func (r *SentryReporter) Disable() {
	if r != nil {
		r.enabled.Store(false)
	}
}

func levelFor(ee *errors.EnhancedError) sentry.Level {
	switch ee.Priority {
	case errors.PriorityCritical:
		return sentry.LevelFatal
	case errors.PriorityLow:
		return sentry.LevelWarning
	default:
		return sentry.LevelError
	}
}

// Initialize wires the reporter into the error package.
func Initialize(settings *conf.Settings, log logger.Logger) (*SentryReporter, error) {
	reporter, err := NewSentryReporter(settings, log)
	if err != nil {
		return nil, err
	}
	if reporter.IsEnabled() {
		errors.SetTelemetryReporter(reporter)
	}
	return reporter, nil
}
