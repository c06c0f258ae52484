package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/api/dto"
	"github.com/huntlog/huntlog/internal/journal"
)

// initAreaRoutes registers the hunting area endpoints
func (c *Controller) initAreaRoutes() {
	g := c.Group.Group("/areas")
	g.GET("", c.ListAreas, c.authMiddleware)
	g.POST("", c.CreateArea, c.authMiddleware)
	g.GET("/:id", c.GetArea, c.authMiddleware)
	g.PATCH("/:id", c.UpdateArea, c.authMiddleware)
	g.PUT("/:id", c.UpdateArea, c.authMiddleware)
	g.DELETE("/:id", c.DeleteArea, c.authMiddleware)
}

// ListAreas handles GET /areas
func (c *Controller) ListAreas(ctx echo.Context) error {
	areas, err := c.Service.ListAreas(ctx.Request().Context(), currentAccount(ctx))
	if err != nil {
		return c.HandleError(ctx, err, "Failed to list areas")
	}
	return ctx.JSON(http.StatusOK, areas)
}

// GetArea handles GET /areas/:id and includes the number of entries
// recorded in the area.
func (c *Controller) GetArea(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid area id")
	}
	reqCtx, owner := ctx.Request().Context(), currentAccount(ctx)

	area, err := c.Service.GetArea(reqCtx, owner, id)
	if err != nil {
		return c.HandleError(ctx, err, "Area not found")
	}
	used, err := c.Service.AreaUsage(reqCtx, owner, id)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to count area entries")
	}
	return ctx.JSON(http.StatusOK, dto.AreaResponse{Area: *area, EntryCount: used})
}

// CreateArea handles POST /areas
func (c *Controller) CreateArea(ctx echo.Context) error {
	var in journal.AreaInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid area")
	}
	area, err := c.Service.CreateArea(ctx.Request().Context(), currentAccount(ctx), in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to create area")
	}
	return ctx.JSON(http.StatusCreated, area)
}

// UpdateArea handles PATCH and PUT /areas/:id
func (c *Controller) UpdateArea(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid area id")
	}
	var in journal.AreaInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid area")
	}
	area, err := c.Service.UpdateArea(ctx.Request().Context(), currentAccount(ctx), id, in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to update area")
	}
	return ctx.JSON(http.StatusOK, area)
}

// DeleteArea handles DELETE /areas/:id. Areas referenced by stands or
// entries are kept and answered with 409.
func (c *Controller) DeleteArea(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid area id")
	}
	if err := c.Service.DeleteArea(ctx.Request().Context(), currentAccount(ctx), id); err != nil {
		return c.HandleError(ctx, err, "Failed to delete area")
	}
	return ctx.NoContent(http.StatusNoContent)
}
