package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "mandi-bazaar.backend/internal/domain/errors"
)

// Envelope is the wire shape of every API response
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// OK sends a 200 success envelope
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Created sends a 201 success envelope
func Created(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusCreated, message, data)
}

// Success sends a success envelope with the given status
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

// Error sends an error envelope. Unknown errors become a generic 500 so no
// internal detail leaks past the request scope.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, Envelope{
		StatusCode: appErr.Status,
		Success:    false,
		Message:    appErr.Message,
	})
}
