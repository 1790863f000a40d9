package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/core/ports"
)

// AdminHandler covers the admin-area management surface: user listing,
// workspace creation and the membership relation. These routes sit behind
// the admin-area gate, so every caller here is an admin principal already.
type AdminHandler struct {
	users      ports.UserRepository
	workspaces ports.WorkspaceService
}

func NewAdminHandler(users ports.UserRepository, workspaces ports.WorkspaceService) *AdminHandler {
	return &AdminHandler{users: users, workspaces: workspaces}
}

type createWorkspaceRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	OwnerID string `json:"owner_id" validate:"required"`
}

// ListUsers handles GET /admin/v1/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ListWorkspaces handles GET /admin/v1/workspaces.
func (h *AdminHandler) ListWorkspaces(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	list, err := h.workspaces.List(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// CreateWorkspace handles POST /admin/v1/workspaces.
//
// @Summary      Create a workspace
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkspaceRequest  true  "Workspace details"
// @Success      201   {object}  domain.Workspace
// @Failure      403   {object}  errorResponse
// @Router       /admin/v1/workspaces [post]
func (h *AdminHandler) CreateWorkspace(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	ws, err := h.workspaces.Create(c.Request().Context(), p, req.Name, req.OwnerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ws)
}

// AttachMember handles POST /admin/v1/workspaces/:workspace_id/members/:user_id.
func (h *AdminHandler) AttachMember(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.workspaces.AttachMember(c.Request().Context(), p, c.Param("workspace_id"), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DetachMember handles DELETE /admin/v1/workspaces/:workspace_id/members/:user_id.
// The only way a member ever leaves a workspace.
func (h *AdminHandler) DetachMember(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.workspaces.DetachMember(c.Request().Context(), p, c.Param("workspace_id"), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
