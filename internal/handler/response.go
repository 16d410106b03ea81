package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"spendlens/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, "INVALID_STATUS", "invalid invoice status; allowed: paid, pending, overdue"
	case errors.Is(err, domain.ErrEmptyQuestion):
		return http.StatusBadRequest, "EMPTY_QUESTION", "question is required"
	case errors.Is(err, domain.ErrEmptyQuery):
		return http.StatusBadRequest, "EMPTY_QUERY", "sql query is required"
	case errors.Is(err, domain.ErrUnsafeQuery):
		return http.StatusBadRequest, "UNSAFE_QUERY", "only SELECT statements are allowed"
	case errors.Is(err, domain.ErrSQLGenUnavailable):
		return http.StatusBadGateway, "SQLGEN_UNAVAILABLE", "sql generation service unavailable"
	case errors.Is(err, domain.ErrUnknownExportFormat):
		return http.StatusBadRequest, "UNKNOWN_EXPORT_FORMAT", "unknown export format; allowed: csv, xlsx"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Error().Interface("request_id", requestID).Err(err).Msg("request failed")
	}
	RespondError(c, status, code, msg)
}
