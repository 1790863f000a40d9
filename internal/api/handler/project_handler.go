package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/project-system/internal/api/middleware"
	"github.com/taskdeck/project-system/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project operations. The area &
// scope gate has already admitted the request by the time these run; only
// the per-resource policy checks remain, and those live in the service.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /v1/workspaces/:workspace_id/projects.
//
// @Summary      List projects visible to the caller
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        workspace_id  path      string  true  "Workspace id"
// @Success      200           {array}   domain.Project
// @Failure      403           {object}  errorResponse
// @Router       /v1/workspaces/{workspace_id}/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), p, middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Create handles POST /v1/workspaces/:workspace_id/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workspace_id  path      string                true  "Workspace id"
// @Param        body          body      createProjectRequest  true  "Project details"
// @Success      201           {object}  domain.Project
// @Failure      403           {object}  errorResponse
// @Failure      422           {object}  errorResponse
// @Router       /v1/workspaces/{workspace_id}/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	proj, err := h.service.Create(c.Request().Context(), p, ports.CreateProjectInput{
		WorkspaceID: middleware.WorkspaceID(c),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, proj)
}

// Get handles GET /v1/workspaces/:workspace_id/projects/:project_id.
func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	proj, err := h.service.Get(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, proj)
}

// Update handles PATCH /v1/workspaces/:workspace_id/projects/:project_id.
func (h *ProjectHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	proj, err := h.service.Update(c.Request().Context(), p, ports.UpdateProjectInput{
		WorkspaceID: middleware.WorkspaceID(c),
		ProjectID:   c.Param("project_id"),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, proj)
}

// Delete handles DELETE /v1/workspaces/:workspace_id/projects/:project_id.
func (h *ProjectHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("project_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignOwner handles PUT /v1/workspaces/:workspace_id/projects/:project_id/owner.
//
// @Summary      Hand a project over to a new owner
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        workspace_id  path      string              true  "Workspace id"
// @Param        project_id    path      string              true  "Project id"
// @Param        body          body      assignOwnerRequest  true  "New owner"
// @Success      200           {object}  domain.Project
// @Failure      403           {object}  errorResponse
// @Router       /v1/workspaces/{workspace_id}/projects/{project_id}/owner [put]
func (h *ProjectHandler) AssignOwner(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req assignOwnerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	proj, err := h.service.AssignOwner(c.Request().Context(), p, middleware.WorkspaceID(c), c.Param("project_id"), req.OwnerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, proj)
}
