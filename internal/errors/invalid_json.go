package errors

import "net/http"

var ErrInvalidJSON = &Exception{
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidQuery = &Exception{
	Message:    "invalid query parameters",
	StatusCode: http.StatusBadRequest,
}
