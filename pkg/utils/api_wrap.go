package utils

import (
	"errors"
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

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	RespondWithCode(c, http.StatusOK, data, message)
}

func RespondWithCode(c *gin.Context, code int, data interface{}, message string) {
	c.JSON(code, APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrIncompleteInput):
		RespondError(c, http.StatusBadRequest, "Please fill in all the required fields")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrCompletionUnavailable):
		log.Printf("Completion error: %v", err)
		RespondError(c, http.StatusBadGateway, "The travel assistant is currently unavailable, please try again")
	case errors.Is(err, ErrTripRequestMissing):
		RespondError(c, http.StatusConflict, "Please complete the trip details before proceeding")
	case errors.Is(err, ErrItineraryMissing):
		RespondError(c, http.StatusConflict, "Please generate recommendations before selecting plans")
	case errors.Is(err, ErrNothingSelected):
		RespondError(c, http.StatusConflict, "You have not selected any plans")
	case errors.Is(err, ErrSectionNotFound):
		RespondError(c, http.StatusNotFound, "Plan not found in the current recommendations")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Session not found or expired")
	case errors.Is(err, ErrInvalidSessionToken):
		RespondError(c, http.StatusUnauthorized, "Session token missing or invalid")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
