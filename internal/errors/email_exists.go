package errors

import "net/http"

var ErrEmailExists = &Exception{
	Message:    "email already exists",
	StatusCode: http.StatusConflict,
}
