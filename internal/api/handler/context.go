package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/api/middleware"
	"github.com/taskdeck/project-system/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: its presence proves
// the middleware ran. Handlers behind the gate can rely on the workspace id
// already being validated.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p := middleware.Principal(c)
	if p == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
