package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadmin-africa/portal-api/internal/core/domain"
	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// ctxViewer extracts the session claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a missing user id or
// role means the middleware did not run, so the token is unusable.
func ctxViewer(c echo.Context) (ports.Viewer, error) {
	userID, _ := c.Get("user_id").(string)
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	if userID == "" || role == "" {
		return ports.Viewer{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return ports.Viewer{
		UserID: userID,
		Email:  email,
		Role:   domain.Role(role),
	}, nil
}
