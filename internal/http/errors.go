package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-management-system.com/task-management-system/internal/data_models"
	errs "task-management-system.com/task-management-system/internal/errors"
)

// ErrorHandler renders every error returned by a handler or middleware as
// {statusCode, message, errors?}.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	body := dto.ErrorResponse{
		StatusCode: errs.StatusCode(err),
		Message:    err.Error(),
	}

	var httpErr *echo.HTTPError
	var validationErr *errs.ValidationError
	switch {
	case errors.As(err, &httpErr):
		body.StatusCode = httpErr.Code
		body.Message = fmt.Sprint(httpErr.Message)
	case errors.As(err, &validationErr):
		body.Message = "validation failed"
		body.Errors = validationErr.Fields
	}

	if body.StatusCode >= http.StatusInternalServerError {
		log.Printf("%s %s failed: %v", c.Request().Method, c.Request().URL.Path, err)
		body.Message = http.StatusText(body.StatusCode)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(body.StatusCode)
	} else {
		err = c.JSON(body.StatusCode, body)
	}
	if err != nil {
		log.Printf("failed to write error response: %v", err)
	}
}
