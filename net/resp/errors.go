package resp

import (
	"net/http"
)

// UnAuthorized indicates that the request is unauthorized.
func UnAuthorized(message string) *Exception {
	return newResponse(http.StatusUnauthorized, message)
}

// BadRequest indicates a bad request.
func BadRequest(message string) *Exception {
	return newResponse(http.StatusBadRequest, message)
}

// NotFound indicates that the requested resource is not found.
func NotFound(message string) *Exception {
	return newResponse(http.StatusNotFound, message)
}

// Forbidden indicates access is forbidden.
func Forbidden(message string) *Exception {
	return newResponse(http.StatusForbidden, message)
}

// Conflict indicates a conflict error.
func Conflict(message string) *Exception {
	return newResponse(http.StatusConflict, message)
}

// InternalServer indicates a server error.
func InternalServer(message string) *Exception {
	return newResponse(http.StatusInternalServerError, message)
}
