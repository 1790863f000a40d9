package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/api/metrics"
	"github.com/taskdeck/project-system/internal/core/authz"
	"github.com/taskdeck/project-system/internal/core/domain"
)

// WorkspaceIDKey is the context key the resolved workspace id is stored
// under for app-area routes.
const WorkspaceIDKey = "workspace_id"

// WorkspaceHeader is the fallback header carrying the workspace id when the
// route path does not.
const WorkspaceHeader = "X-Workspace-ID"

// Area enforces the area & scope gate on every request before any handler
// or per-resource policy check runs: area exclusivity first, then (app area
// only) workspace presence and membership. Denials map to distinct errors
// so the central error handler can tell a malformed request (missing
// workspace → 400) from a denied one (403).
func Area(gate *authz.Gate, area authz.Area) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := Principal(c)

			workspaceID := ""
			if area == authz.AreaApp {
				workspaceID = c.Param("workspace_id")
				if workspaceID == "" {
					workspaceID = c.Request().Header.Get(WorkspaceHeader)
				}
			}

			d := gate.AuthorizeArea(c.Request().Context(), p, area, workspaceID)
			if !d.Allow {
				metrics.GateDenialsTotal.WithLabelValues(string(d.Reason)).Inc()
				return decisionError(d)
			}

			if area == authz.AreaApp {
				c.Set(WorkspaceIDKey, workspaceID)
			}
			return next(c)
		}
	}
}

// WorkspaceID returns the workspace id the gate admitted the request to.
func WorkspaceID(c echo.Context) string {
	id, _ := c.Get(WorkspaceIDKey).(string)
	return id
}

// decisionError maps a gate denial to the domain error the central error
// handler translates into a status code.
func decisionError(d authz.Decision) error {
	switch d.Reason {
	case authz.ReasonUnauthenticated:
		return domain.ErrUnauthenticated
	case authz.ReasonWrongArea:
		return domain.ErrWrongArea
	case authz.ReasonMissingWorkspace:
		return domain.ErrMissingWorkspace
	case authz.ReasonNotAMember:
		return domain.ErrNotAMember
	default:
		return domain.ErrForbidden
	}
}
