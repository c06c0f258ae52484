package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/huntlog/huntlog/internal/datastore/entities"
	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/logger"
)

const (
	accountKey      = "account"
	rateLimitExpiry = 3 * time.Minute
)

// RequestIDMiddleware assigns every request a uuid. The id is echoed in the
// X-Request-ID header, used as the error correlation id and attached to the
// request context as the log trace id.
func (c *Controller) RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(ctx echo.Context, id string) {
			req := ctx.Request()
			ctx.SetRequest(req.WithContext(logger.WithTraceID(req.Context(), id)))
		},
	})
}

// LoggingMiddleware writes an access log record and HTTP metrics for each
// request. Errors are rendered here so the logged status is final.
func (c *Controller) LoggingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()

			if err := next(ctx); err != nil {
				ctx.Error(err)
			}

			req := ctx.Request()
			res := ctx.Response()
			elapsed := time.Since(start)

			fields := []logger.Field{
				logger.String("method", req.Method),
				logger.String("path", req.URL.Path),
				logger.String("query", req.URL.RawQuery),
				logger.Int("status", res.Status),
				logger.String("ip", ctx.RealIP()),
				logger.String("user_agent", req.UserAgent()),
				logger.Int64("latency_ms", elapsed.Milliseconds()),
				logger.Int64("bytes_out", res.Size),
			}
			if account := currentAccount(ctx); account != nil {
				fields = append(fields, logger.String("user", account.Username))
			}
			c.accessLog.WithContext(req.Context()).Info(req.Method+" "+req.URL.Path, fields...)

			if c.metrics != nil {
				c.metrics.RecordHTTPRequest(req.Method, ctx.Path(), res.Status, elapsed.Seconds())
				c.metrics.RecordHTTPResponseSize(req.Method, ctx.Path(), res.Size)
			}
			return nil
		}
	}
}

// BasicAuthMiddleware authenticates the request against the account store
// and stores the account in the echo context.
func (c *Controller) BasicAuthMiddleware() echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: realm,
		Validator: func(username, password string, ctx echo.Context) (bool, error) {
			account, err := c.Service.Authenticate(ctx.Request().Context(), username, password)
			if c.metrics != nil {
				c.metrics.RecordAuth(err == nil)
			}
			switch {
			case errors.Is(err, journal.ErrInvalidCredentials):
				c.log.Info("authentication failed",
					logger.String("username", username),
					logger.String("ip", ctx.RealIP()))
				return false, nil
			case err != nil:
				return false, err
			}
			ctx.Set(accountKey, account)
			return true, nil
		},
	})
}

// RateLimitMiddleware limits requests per client IP. The health endpoint is
// exempt.
func (c *Controller) RateLimitMiddleware() echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(ctx echo.Context) bool {
			return ctx.Path() == APIPrefix+"/health"
		},
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(c.Settings.WebServer.RateLimit),
				Burst:     c.Settings.WebServer.RateBurst,
				ExpiresIn: rateLimitExpiry,
			},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		DenyHandler: func(ctx echo.Context, _ string, _ error) error {
			return c.HandleError(ctx, echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded"),
				"Too many requests, please wait before trying again")
		},
	})
}

// currentAccount returns the authenticated account, or nil on public routes.
func currentAccount(ctx echo.Context) *entities.Account {
	account, _ := ctx.Get(accountKey).(*entities.Account)
	return account
}

// parseID reads the :id path parameter.
func parseID(ctx echo.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 0)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// bind decodes the JSON body into in.
func bind(ctx echo.Context, in any) error {
	if err := ctx.Bind(in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	return nil
}

// hstsMaxAge is the HSTS max-age in seconds, one year.
const hstsMaxAge = 31536000

// SecureHeadersMiddleware sets the standard security response headers.
func SecureHeadersMiddleware() echo.MiddlewareFunc {
	return middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge,
	})
}

// CORSMiddleware allows browser clients served from origins to call the API.
func CORSMiddleware(origins []string) echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPut,
			http.MethodPatch,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
		AllowCredentials: true,
	})
}
