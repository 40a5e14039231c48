package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-management-system.com/task-management-system/internal/data_models"
)

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, project)
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, projects)
}

func (h *Handler) GetProject(c echo.Context) error {
	project, err := h.projectService.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, project)
}

func (h *Handler) UpdateProject(c echo.Context) error {
	var req dto.UpdateProjectRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, project)
}

func (h *Handler) DeleteProject(c echo.Context) error {
	if err := h.projectService.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil)
}
