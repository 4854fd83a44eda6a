package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteDomain maps a domain error to its HTTP status. Anything that is not
// a DomainError is surfaced as a 500.
func WriteDomain(c *gin.Context, err error) {
	var de DomainError
	if !errors.As(err, &de) {
		Internal(c, "internal_error", "Unexpected error.")
		return
	}

	switch de.Kind {
	case KindForbidden:
		Write(c, http.StatusForbidden, "forbidden", de.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, "not_found", de.Message)
	default:
		Write(c, http.StatusBadRequest, "validation_error", de.Message)
	}
}
