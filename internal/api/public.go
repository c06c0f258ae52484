package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/api/dto"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/season"
	"github.com/huntlog/huntlog/internal/species"
)

// GetTaxonomy handles GET /taxonomy and returns the species groups with
// their codes and labels.
func (c *Controller) GetTaxonomy(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, species.Groups())
}

// GetSeason handles GET /season?date=YYYY-MM-DD. Without a date the
// current day in the configured timezone is used.
func (c *Controller) GetSeason(ctx echo.Context) error {
	day, err := c.dayParam(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid date")
	}
	return ctx.JSON(http.StatusOK, dto.NewSeasonResponse(day.Format(season.DateLayout), season.Current(day)))
}

// Register handles POST /register. It answers 403 unless
// security.allowregistration is set.
func (c *Controller) Register(ctx echo.Context) error {
	var in journal.AccountInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid registration")
	}
	account, err := c.Service.Register(ctx.Request().Context(), in)
	if err != nil {
		return c.HandleError(ctx, err, "Registration failed")
	}
	return ctx.JSON(http.StatusCreated, account)
}

// GetMe handles GET /me
func (c *Controller) GetMe(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, currentAccount(ctx))
}

// GetDashboard handles GET /dashboard?date=YYYY-MM-DD
func (c *Controller) GetDashboard(ctx echo.Context) error {
	day, err := c.dayParam(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid date")
	}
	d, err := c.Service.Dashboard(ctx.Request().Context(), currentAccount(ctx), day)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to build dashboard")
	}
	return ctx.JSON(http.StatusOK, dto.NewDashboardResponse(d))
}

// dayParam reads the optional date query parameter in the configured
// timezone, defaulting to today.
func (c *Controller) dayParam(ctx echo.Context) (time.Time, error) {
	raw := ctx.QueryParam("date")
	if raw == "" {
		return c.Service.Today(), nil
	}
	day, err := time.ParseInLocation(season.DateLayout, raw, c.Settings.Location())
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return day, nil
}
