package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huntlog/huntlog/internal/journal"
)

// initAccountRoutes registers the account administration endpoints. The
// journal rejects non-admin callers.
func (c *Controller) initAccountRoutes() {
	g := c.Group.Group("/accounts")
	g.GET("", c.ListAccounts, c.authMiddleware)
	g.POST("", c.CreateAccount, c.authMiddleware)
	g.PATCH("/:id", c.UpdateAccount, c.authMiddleware)
	g.DELETE("/:id", c.DeleteAccount, c.authMiddleware)
}

// ListAccounts handles GET /accounts
func (c *Controller) ListAccounts(ctx echo.Context) error {
	accounts, err := c.Service.ListAccounts(ctx.Request().Context(), currentAccount(ctx))
	if err != nil {
		return c.HandleError(ctx, err, "Failed to list accounts")
	}
	return ctx.JSON(http.StatusOK, accounts)
}

// CreateAccount handles POST /accounts
func (c *Controller) CreateAccount(ctx echo.Context) error {
	var in journal.AccountInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid account")
	}
	account, err := c.Service.CreateAccount(ctx.Request().Context(), currentAccount(ctx), in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to create account")
	}
	return ctx.JSON(http.StatusCreated, account)
}

// UpdateAccount handles PATCH /accounts/:id
func (c *Controller) UpdateAccount(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid account id")
	}
	var in journal.AccountInput
	if err := bind(ctx, &in); err != nil {
		return c.HandleError(ctx, err, "Invalid account")
	}
	account, err := c.Service.UpdateAccount(ctx.Request().Context(), currentAccount(ctx), id, in)
	if err != nil {
		return c.HandleError(ctx, err, "Failed to update account")
	}
	return ctx.JSON(http.StatusOK, account)
}

// DeleteAccount handles DELETE /accounts/:id and removes the account's
// hunting data with it.
func (c *Controller) DeleteAccount(ctx echo.Context) error {
	id, err := parseID(ctx)
	if err != nil {
		return c.HandleError(ctx, err, "Invalid account id")
	}
	if err := c.Service.DeleteAccount(ctx.Request().Context(), currentAccount(ctx), id); err != nil {
		return c.HandleError(ctx, err, "Failed to delete account")
	}
	return ctx.NoContent(http.StatusNoContent)
}
