// Package api serves the journal over a JSON HTTP API. Hunting data routes
// require HTTP basic authentication; every request is scoped to the
// authenticated account.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/huntlog/huntlog/internal/conf"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/logger"
	"github.com/huntlog/huntlog/internal/observability/metrics"
)

const (
	// APIPrefix is the path prefix of all JSON routes.
	APIPrefix = "/api/v1"

	bodyLimit = "1M"
	realm     = "huntlog"
)

// Pinger reports database reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller manages the API routes and handlers
type Controller struct {
	Echo     *echo.Echo
	Group    *echo.Group
	Service  *journal.Service
	Settings *conf.Settings

	log            logger.Logger
	accessLog      logger.Logger
	metrics        *metrics.HTTPMetrics
	metricsHandler http.Handler
	db             Pinger
	startTime      time.Time

	authMiddleware echo.MiddlewareFunc
}

// Option is a functional option for configuring the Controller.
type Option func(*Controller)

// WithHTTPMetrics records request counts, latencies and auth attempts.
func WithHTTPMetrics(m *metrics.HTTPMetrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithMetricsHandler serves h at /metrics on the API listener.
func WithMetricsHandler(h http.Handler) Option {
	return func(c *Controller) {
		c.metricsHandler = h
	}
}

// WithAccessLogger writes one record per request to log.
func WithAccessLogger(log logger.Logger) Option {
	return func(c *Controller) {
		c.accessLog = log
	}
}

// WithHealthCheck reports the database status in /health.
func WithHealthCheck(db Pinger) Option {
	return func(c *Controller) {
		c.db = db
	}
}

// New creates the controller and registers all routes on e.
func New(e *echo.Echo, svc *journal.Service, settings *conf.Settings, log logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		Echo:      e,
		Service:   svc,
		Settings:  settings,
		log:       log,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.accessLog == nil {
		c.accessLog = log.Module("access")
	}

	e.HTTPErrorHandler = c.errorHandler
	c.authMiddleware = c.BasicAuthMiddleware()

	// Preflight requests match no route, so CORS runs on the echo instance.
	if origins := settings.WebServer.CORSOrigins; len(origins) > 0 {
		e.Use(CORSMiddleware(origins))
	}

	c.Group = e.Group(APIPrefix)
	c.Group.Use(middleware.Recover())
	c.Group.Use(SecureHeadersMiddleware())
	c.Group.Use(c.RequestIDMiddleware())
	c.Group.Use(c.LoggingMiddleware())
	c.Group.Use(middleware.BodyLimit(bodyLimit))
	if settings.WebServer.RateLimit > 0 {
		c.Group.Use(c.RateLimitMiddleware())
	}

	if c.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(c.metricsHandler))
	}

	c.initRoutes()
	return c
}

// initRoutes registers all API endpoints
func (c *Controller) initRoutes() {
	routeInitializers := []struct {
		name string
		fn   func()
	}{
		{"public routes", c.initPublicRoutes},
		{"account routes", c.initAccountRoutes},
		{"entry routes", c.initEntryRoutes},
		{"area routes", c.initAreaRoutes},
		{"stand routes", c.initStandRoutes},
		{"firearm routes", c.initFirearmRoutes},
	}

	for _, initializer := range routeInitializers {
		initializer.fn()
		c.log.Debug("initialized routes", logger.String("group", initializer.name))
	}
}

// initPublicRoutes registers the endpoints that need no account, plus the
// account's own profile and dashboard.
func (c *Controller) initPublicRoutes() {
	c.Group.GET("/health", c.HealthCheck)
	c.Group.GET("/taxonomy", c.GetTaxonomy)
	c.Group.GET("/season", c.GetSeason)
	c.Group.POST("/register", c.Register)

	c.Group.GET("/me", c.GetMe, c.authMiddleware)
	c.Group.GET("/dashboard", c.GetDashboard, c.authMiddleware)
}

// HealthCheck handles the API health check endpoint
func (c *Controller) HealthCheck(ctx echo.Context) error {
	response := map[string]any{
		"status":         "healthy",
		"name":           c.Settings.Main.Name,
		"version":        c.Settings.Version,
		"build_date":     c.Settings.BuildDate,
		"timestamp":      time.Now().Format(time.RFC3339),
		"uptime":         time.Since(c.startTime).Round(time.Second).String(),
		"uptime_seconds": time.Since(c.startTime).Seconds(),
	}

	if c.db != nil {
		if err := c.db.Ping(ctx.Request().Context()); err != nil {
			response["status"] = "degraded"
			response["database_status"] = "disconnected"
			c.log.Warn("health check database ping failed", logger.Error(err))
			return ctx.JSON(http.StatusServiceUnavailable, response)
		}
		response["database_status"] = "connected"
	}

	return ctx.JSON(http.StatusOK, response)
}
