package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/journal"
)

// initStandRoutes registers the hunting stand endpoints
func (c *Controller) initStandRoutes() {
	g := c.Group.Group("/stands")
	g.GET("", c.ListStands, c.authMiddleware)
	g.POST("", c.CreateStand, c.authMiddleware)
	g.GET("/:id", c.GetStand, c.authMiddleware)
	g.PATCH("/:id", c.UpdateStand, c.authMiddleware)
	g.PUT("/:id", c.UpdateStand, c.authMiddleware)
	g.DELETE("/:id", c.DeleteStand, c.authMiddleware)
}

// ListStands handles GET /stands?area=. A malformed area filter is ignored.
func (c *Controller) ListStands(ctx echo.Context) error {
	areaID, _ := strconv.ParseUint(ctx.QueryParam("area"), 10, 0)
	stands, err := c.Service.ListStands(ctx.Request().Context(), currentAccount(ctx), uint(areaID))
	if err != nil {
		return c.HandleError(ctx, err, "Failed to list stands")
	}
	return ctx.JSON(http.StatusOK, stands)
}

// GetStand handles GET /stands/:id
func (c *Controller) GetStand(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid stand id")
	}
	stand, err := c.Service.GetStand(ctx.Request().Context(), currentAccount(ctx), id)
	if err != nil {
		return c.HandleError(ctx, err, "Stand not found")
	}
	return ctx.JSON(http.StatusOK, stand)
}

// CreateStand handles POST /stands
func (c *Controller) CreateStand(ctx echo.Context) error {
	var in journal.StandInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid stand")
	}
	stand, err := c.Service.CreateStand(ctx.Request().Context(), currentAccount(ctx), in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to create stand")
	}
	return ctx.JSON(http.StatusCreated, stand)
}

// UpdateStand handles PATCH and PUT /stands/:id
func (c *Controller) UpdateStand(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid stand id")
	}
	var in journal.StandInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid stand")
	}
	stand, err := c.Service.UpdateStand(ctx.Request().Context(), currentAccount(ctx), id, in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to update stand")
	}
	return ctx.JSON(http.StatusOK, stand)
}

// DeleteStand handles DELETE /stands/:id. Entries at the stand keep their
// other data and lose the stand reference.
func (c *Controller) DeleteStand(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid stand id")
	}
	if err := c.Service.DeleteStand(ctx.Request().Context(), currentAccount(ctx), id); err != nil {
		return c.HandleError(ctx, err, "Failed to delete stand")
	}
	return ctx.NoContent(http.StatusNoContent)
}
