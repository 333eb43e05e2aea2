package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velura/storefront-api/internal/core/domain"
	"github.com/velura/storefront-api/internal/core/ports"
)

// Auth resolves the bearer token to a stored user and injects it into the
// request context. Domain errors flow to the central error handler:
// a missing header fails with ErrUnauthenticated, a garbled one with
// ErrTokenInvalid, and a valid token whose subject was deleted with
// ErrUserNotFound.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if header := c.Request().Header.Get("Authorization"); header != "" {
				parts := strings.SplitN(header, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
					return domain.ErrTokenInvalid
				}
				token = parts[1]
			}

			user, err := auth.CurrentUser(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set("user", user)
			c.Set("user_id", user.ID)

			return next(c)
		}
	}
}
