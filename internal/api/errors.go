package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/errors"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/logger"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error         string            `json:"error"`
	Message       string            `json:"message"`
	Code          int               `json:"code"`
	CorrelationID string            `json:"correlation_id"` // request id, also sent as X-Request-ID
	Fields        map[string]string `json:"fields,omitempty"`
	Input         any               `json:"input,omitempty"`
}

// NewErrorResponse creates a new API error response
func NewErrorResponse(err error, message string, code int, correlationID string) *ErrorResponse {
	errorStr := message
	if err != nil {
		errorStr = err.Error()
	}
	return &ErrorResponse{
		Error:         errorStr,
		Message:       message,
		Code:          code,
		CorrelationID: correlationID,
	}
}

// statusFor maps a journal error to its HTTP status.
func statusFor(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, journal.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, journal.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, journal.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, journal.ErrReferentialIntegrity):
		return http.StatusConflict
	}

	switch errors.CategoryOf(err) {
	case errors.CategoryValidation:
		return http.StatusUnprocessableEntity
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryAuthorization:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// errorType returns the metrics label for err. Echo errors raised by
// middleware are labelled by status code, journal errors by category.
func errorType(err error) string {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return string(errors.CategoryOf(err))
	}
	switch he.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return string(errors.CategoryAuthorization)
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return string(errors.CategoryNotFound)
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		return string(errors.CategoryValidation)
	default:
		return string(errors.CategoryHTTP)
	}
}

// HandleError writes an ErrorResponse for err. Validation errors carry the
// per-field messages and the submitted input. Details of internal errors
// are logged, not returned.
func (c *Controller) HandleError(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	correlationID := ctx.Response().Header().Get(echo.HeaderXRequestID)

	resp := NewErrorResponse(err, message, code, correlationID)
	var verr *journal.ValidationError
	if errors.As(err, &verr) {
		resp.Fields = verr.Fields
		resp.Input = verr.Input
	}
	if code >= http.StatusInternalServerError {
		resp.Error = http.StatusText(code)
	}

	log := c.log.WithContext(ctx.Request().Context())
	fields := []logger.Field{
		logger.String("correlation_id", correlationID),
		logger.String("message", message),
		logger.Int("code", code),
		logger.String("path", ctx.Request().URL.Path),
		logger.String("method", ctx.Request().Method),
		logger.String("ip", ctx.RealIP()),
		logger.Error(err),
	}
	if code >= http.StatusInternalServerError {
		log.Error("API error", fields...)
	} else {
		log.Debug("API error", fields...)
	}

	if c.metrics != nil {
		c.metrics.RecordHTTPRequestError(ctx.Request().Method, ctx.Path(), errorType(err))
	}

	return ctx.JSON(code, resp)
}

// errorHandler replaces echo's default error handler so routing errors and
// middleware rejections use the same body as handler errors.
func (c *Controller) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}
	message := http.StatusText(statusFor(err))
	var he *echo.HTTPError
	if errors.As(err, &he) {
		message = fmt.Sprint(he.Message)
	}
	if herr := c.HandleError(ctx, err, message); herr != nil {
		c.log.Error("failed to write error response", logger.Error(herr))
	}
}
