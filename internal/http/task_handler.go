package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var query dto.TaskFilterQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return errs.ErrInvalidQuery
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, nil)
}
