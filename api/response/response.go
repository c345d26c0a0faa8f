// Package response defines the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the common response envelope.
type Body struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Message string       `json:"message,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError carries field-level validation detail.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Body{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Body{Success: true, Message: message, Data: data})
}

func BadRequest(c *gin.Context, message string, errs ...FieldError) {
	c.JSON(http.StatusBadRequest, Body{Success: false, Message: message, Errors: errs})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Body{Success: false, Message: message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Body{Success: false, Message: message})
}

// ServerError deliberately carries no internal detail; the cause is
// logged server-side.
func ServerError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Body{Success: false, Message: message})
}
