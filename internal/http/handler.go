package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
	"task-management-system.com/task-management-system/internal/services"
)

type Handler struct {
	taskService      *services.TaskService
	projectService   *services.ProjectService
	userService      *services.UserService
	dashboardService *services.DashboardService
}

func NewHandler(
	taskService *services.TaskService,
	projectService *services.ProjectService,
	userService *services.UserService,
	dashboardService *services.DashboardService,
) *Handler {
	return &Handler{
		taskService:      taskService,
		projectService:   projectService,
		userService:      userService,
		dashboardService: dashboardService,
	}
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, dto.Envelope{Data: data})
}

// bindJSON decodes the request body into req. Fields req does not declare
// are rejected. An empty body decodes to the zero value.
func bindJSON(c echo.Context, req any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(req)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		if unquoted, uerr := strconv.Unquote(field); uerr == nil {
			field = unquoted
		}
		result := &errs.ValidationError{}
		result.Add(field, "is not allowed")
		return result
	default:
		return errs.ErrInvalidJSON
	}
}

func (h *Handler) Health(c echo.Context) error {
	return respond(c, http.StatusOK, dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) Dashboard(c echo.Context) error {
	summary, err := h.dashboardService.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, summary)
}
