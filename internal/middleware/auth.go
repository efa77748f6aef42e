package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/devfolio/internal/repository"
	"github.com/iliyamo/devfolio/internal/utils"
)

// RequireAuth returns an Echo middleware that resolves a Bearer access
// token to an authenticated user.  It verifies the token signature and
// expiry, then loads the referenced user so that a token for a vanished
// account is rejected like any other bad token.  On success the user id
// and the loaded user row are stored in the request context under
// "user_id" and "user".
//
// Every failure mode (missing header, malformed token, bad signature,
// expired token, unknown user) answers 401 with the same body so callers
// cannot probe which condition occurred.  A store failure during the user
// lookup is not an auth failure and answers 500 instead.
func RequireAuth(secret string, users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c)
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			sub, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				// expired and invalid collapse into one response
				return unauthorized(c)
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()
			u, err := users.GetByID(ctx, sub)
			if err != nil {
				// A vanished account is an auth failure; a store failure
				// is not and must not masquerade as one.
				if errors.Is(err, repository.ErrUserNotFound) {
					return unauthorized(c)
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
			}

			c.Set("user_id", u.ID)
			c.Set("user", u)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
}
