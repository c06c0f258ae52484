package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/journal"
)

// initFirearmRoutes registers the firearm endpoints
func (c *Controller) initFirearmRoutes() {
	g := c.Group.Group("/firearms")
	g.GET("", c.ListFirearms, c.authMiddleware)
	g.POST("", c.CreateFirearm, c.authMiddleware)
	g.GET("/:id", c.GetFirearm, c.authMiddleware)
	g.PATCH("/:id", c.UpdateFirearm, c.authMiddleware)
	g.PUT("/:id", c.UpdateFirearm, c.authMiddleware)
	g.DELETE("/:id", c.DeleteFirearm, c.authMiddleware)
}

// ListFirearms handles GET /firearms
func (c *Controller) ListFirearms(ctx echo.Context) error {
	firearms, err := c.Service.ListFirearms(ctx.Request().Context(), currentAccount(ctx))
	if err != nil {
		return c.HandleError(ctx, err, "Failed to list firearms")
	}
	return ctx.JSON(http.StatusOK, firearms)
}

// GetFirearm handles GET /firearms/:id
func (c *Controller) GetFirearm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid firearm id")
	}
	firearm, err := c.Service.GetFirearm(ctx.Request().Context(), currentAccount(ctx), id)
	if err != nil {
		return c.HandleError(ctx, err, "Firearm not found")
	}
	return ctx.JSON(http.StatusOK, firearm)
}

// CreateFirearm handles POST /firearms
func (c *Controller) CreateFirearm(ctx echo.Context) error {
	var in journal.FirearmInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid firearm")
	}
	firearm, err := c.Service.CreateFirearm(ctx.Request().Context(), currentAccount(ctx), in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to create firearm")
	}
	return ctx.JSON(http.StatusCreated, firearm)
}

// UpdateFirearm handles PATCH and PUT /firearms/:id
func (c *Controller) UpdateFirearm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid firearm id")
	}
	var in journal.FirearmInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid firearm")
	}
	firearm, err := c.Service.UpdateFirearm(ctx.Request().Context(), currentAccount(ctx), id, in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to update firearm")
	}
	return ctx.JSON(http.StatusOK, firearm)
}

// DeleteFirearm handles DELETE /firearms/:id. Entries made with the firearm
// lose the reference.
func (c *Controller) DeleteFirearm(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid firearm id")
	}
	if err := c.Service.DeleteFirearm(ctx.Request().Context(), currentAccount(ctx), id); err != nil {
		return c.HandleError(ctx, err, "Failed to delete firearm")
	}
	return ctx.NoContent(http.StatusNoContent)
}
