package utils

import (
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps a service-level error onto an HTTP status. The
// response message embeds the underlying error text; there are no structured
// error codes.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrPlanNotFound), errors.Is(err, ErrAddressNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailConfirmationRequired):
		RespondError(c, http.StatusBadRequest,
			"Sign up succeeded but no session was returned. Confirm the email first, or disable email confirmations in Authentication > Settings.")
	case errors.Is(err, ErrUpstreamTimeout):
		RespondError(c, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, ErrSpeechNotConfigured):
		RespondError(c, http.StatusNotImplemented, err.Error())
	case errors.Is(err, ErrUpstreamFailure), errors.Is(err, ErrModelResponseInvalid):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusInternalServerError, fmt.Sprintf("request failed: %v", err))
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, fmt.Sprintf("request failed: %v", err))
	}
}
