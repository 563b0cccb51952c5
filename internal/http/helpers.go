package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/bookshelf/internal/services"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`    // machine-readable error code
	Details any    `json:"details,omitempty"` // field errors for validation failures
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, code, message string, details map[string]string) {
	resp := ErrorResponse{Error: message, Code: code}
	if len(details) > 0 {
		resp.Details = details
	}
	c.JSON(http.StatusBadRequest, resp)
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, resource string) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: resource + " not found",
		Code:  "NOT_FOUND",
	})
}

// respondInternalError logs the error and sends a 500 Internal Server Error response.
// The actual error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Error().
		Err(err).
		Str("request_id", GetRequestID(c)).
		Str("context", context).
		Msg("Internal error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error: "internal server error",
		Code:  "INTERNAL_ERROR",
	})
}

// respondServiceError maps a service error onto its status code and body.
func respondServiceError(c *gin.Context, err error, context string) {
	status := services.ToHTTPStatus(err)
	if status == http.StatusInternalServerError {
		respondInternalError(c, err, context)
		return
	}

	resp := ErrorResponse{Error: err.Error(), Code: services.ToErrorCode(err)}
	if details := services.ValidationDetails(err); len(details) > 0 {
		resp.Error = services.ErrValidation.Error()
		resp.Details = details
	}
	c.JSON(status, resp)
}

// --- Parameter Parsing ---

// parseIDParam extracts an unsigned integer ID from URL parameters.
// Anything that is not a positive integer cannot name a stored row, so
// it responds with 404 and returns 0, false.
func parseIDParam(c *gin.Context, paramName, resource string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || id == 0 {
		respondNotFound(c, resource)
		return 0, false
	}
	return uint(id), true
}

// bindBody decodes the request body into dst using the Content-Type
// (JSON or form) and runs its binding tags. On failure it responds with
// 400 and returns false.
func bindBody(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil {
		details := bindingDetails(err)
		if len(details) == 0 {
			respondBadRequest(c, "INVALID_BODY", "invalid request body: "+err.Error(), nil)
			return false
		}
		respondBadRequest(c, "VALIDATION_ERROR", services.ErrValidation.Error(), details)
		return false
	}
	return true
}
