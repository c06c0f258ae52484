package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/api/dto"
	"github.com/huntlog/huntlog/internal/journal"
	"github.com/huntlog/huntlog/internal/query"
)

// initEntryRoutes registers the journal entry endpoints
func (c *Controller) initEntryRoutes() {
	g := c.Group.Group("/entries")
	g.GET("", c.ListEntries, c.authMiddleware)
	g.POST("", c.CreateEntry, c.authMiddleware)
	g.GET("/:id", c.GetEntry, c.authMiddleware)
	g.PATCH("/:id", c.UpdateEntry, c.authMiddleware)
	g.PUT("/:id", c.UpdateEntry, c.authMiddleware)
	g.DELETE("/:id", c.DeleteEntry, c.authMiddleware)
}

// ListEntries handles GET /entries?species=&area=&year=&sort=
func (c *Controller) ListEntries(ctx echo.Context) error {
	list, err := c.Service.ListEntries(ctx.Request().Context(), currentAccount(ctx), query.ParseParams(ctx.QueryParams()))
	if err != nil {
		return c.HandleError(ctx, err, "Failed to list entries")
	}
	return ctx.JSON(http.StatusOK, dto.NewEntryListResponse(list))
}

// GetEntry handles GET /entries/:id
func (c *Controller) GetEntry(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid entry id")
	}
	entry, err := c.Service.GetEntry(ctx.Request().Context(), currentAccount(ctx), id)
	if err != nil {
		return c.HandleError(ctx, err, "Entry not found")
	}
	return ctx.JSON(http.StatusOK, dto.NewEntryResponse(entry))
}

// CreateEntry handles POST /entries
func (c *Controller) CreateEntry(ctx echo.Context) error {
	var in journal.EntryInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid entry")
	}
	entry, err := c.Service.CreateEntry(ctx.Request().Context(), currentAccount(ctx), in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to create entry")
	}
	return ctx.JSON(http.StatusCreated, dto.NewEntryResponse(entry))
}

// UpdateEntry handles PATCH and PUT /entries/:id. Fields missing from the
// body keep their stored value; null clears optional fields.
func (c *Controller) UpdateEntry(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid entry id")
	}
	var in journal.EntryInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid entry")
	}
	entry, err := c.Service.UpdateEntry(ctx.Request().Context(), currentAccount(ctx), id, in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to update entry")
	}
	return ctx.JSON(http.StatusOK, dto.NewEntryResponse(entry))
}

// DeleteEntry handles DELETE /entries/:id
func (c *Controller) DeleteEntry(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid entry id")
	}
	if err := c.Service.DeleteEntry(ctx.Request().Context(), currentAccount(ctx), id); err != nil {
		return c.HandleError(ctx, err, "Failed to delete entry")
	}
	return ctx.NoContent(http.StatusNoContent)
}
