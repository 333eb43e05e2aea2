package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velura/storefront-api/internal/core/domain"
)

// currentUser extracts the user injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// routing mistake, rejected with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

func currentUserID(c echo.Context) (string, error) {
	user, err := currentUser(c)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}
