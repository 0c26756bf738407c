package response

import (
	"errors"
	"net/http"

	"secure-payment-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the nested error object of the §6 error envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope is the standard error response shape.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error sends an error response. It checks if err is an *apperror.AppError
// and maps it accordingly, otherwise returns 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, ErrorEnvelope{Error: ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		}})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorEnvelope{Error: ErrorBody{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	}})
}
