// Package app assembles the application context shared by the commands:
// settings, logging, the database and the journal service.
package app

import (
	"fmt"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/datastore"
	"github.com/huntlog/huntlog/internal/datastore/repository"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/observability"
)

// Context holds the overall application state.
type Context struct {
	Settings *conf.Settings
	Logger   *logger.CentralLogger
	Store    *datastore.Store
	Repos    *repository.Repositories
	Journal  *journal.Service
	Metrics  *observability.Metrics // nil unless telemetry is enabled
}

// Open builds the logger, opens the database and creates the journal service.
func Open(settings *conf.Settings, opts ...logger.CentralLoggerOption) (*Context, error) {
	central, err := logger.NewCentralLogger(&settings.Logging, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	store, err := datastore.Open(settings, central.Module("datastore"))
	if err != nil {
		_ = central.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	c := &Context{
		Settings: settings,
		Logger:   central,
		Store:    store,
		Repos:    repository.New(store.DB()),
	}

	var svcOpts []journal.Option
	if settings.Telemetry.Enabled {
		c.Metrics, err = observability.NewMetrics()
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
		svcOpts = append(svcOpts, journal.WithMetrics(c.Metrics.Journal))
	}
	c.Journal = journal.New(c.Repos, settings, central.Module("journal"), svcOpts...)

	return c, nil
}

// Log returns a logger for module.
func (c *Context) Log(module string) logger.Logger {
	return c.Logger.Module(module)
}

// Close closes the database and flushes the logs.
func (c *Context) Close() error {
	var errs []error
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Logger != nil {
		if err := c.Logger.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("close: %v", errs)
	}
	return nil
}
