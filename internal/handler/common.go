package handler // handler defines http handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/devfolio/internal/model"
)

// getUserID extracts the authenticated user id placed in the context by the
// auth middleware.
func getUserID(c echo.Context) (string, error) {
	if id, ok := c.Get("user_id").(string); ok && id != "" {
		return id, nil
	}
	return "", errors.New("no user_id in context")
}

// currentUser returns the user row loaded by the auth middleware, or nil.
func currentUser(c echo.Context) *model.User {
	u, _ := c.Get("user").(*model.User)
	return u
}
