package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking-server/internal/apperr"
)

// ResponseData represents the structure of a standard API response.
type ResponseData struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a standard success response.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created sends a standard resource created response.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, ResponseData{
		Status:  http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, ResponseData{
		Status:  statusCode,
		Message: "An error occurred",
		Error:   errorMessage,
	})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, errorMessage string) {
	Error(c, http.StatusForbidden, errorMessage)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, errorMessage string) {
	Error(c, http.StatusConflict, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}

// RespondError maps the apperr taxonomy onto HTTP responses so every handler
// surfaces the same status for the same failure. Store failures are logged
// here and returned as a generic internal error.
func RespondError(c *gin.Context, err error) {
	var ve *apperr.ValidationError
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		Unauthorized(c, "Unauthorized")
	case errors.Is(err, apperr.ErrForbidden):
		Forbidden(c, "Forbidden")
	case errors.Is(err, apperr.ErrNotFound):
		NotFound(c, "Not found")
	case errors.Is(err, apperr.ErrConflict):
		Conflict(c, "The requested slot is already booked")
	case errors.As(err, &ve):
		BadRequest(c, ve.Error())
	case errors.Is(err, apperr.ErrStore):
		log.Printf("store error: %v", err)
		InternalServerError(c, "Internal server error")
	default:
		log.Printf("unexpected error: %v", err)
		InternalServerError(c, "Internal server error")
	}
}
