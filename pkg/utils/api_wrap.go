package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

// ErrorResponse is the only error body shape the API emits.
type ErrorResponse struct {
	Error string `json:"error"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service sentinel errors to HTTP responses.
// Generation failures stay generic on the wire; the underlying cause is
// already logged where it happened.
func HandleServiceError(c *gin.Context, err error) {
	traceID := c.GetString("trace_id")

	switch {
	case errors.Is(err, ErrTopicRequired):
		RespondError(c, http.StatusBadRequest, "Course topic is required")
	case errors.Is(err, ErrTopicTooShort):
		RespondError(c, http.StatusBadRequest, "Please enter a course topic")
	case errors.Is(err, ErrTopicTooLong):
		RespondError(c, http.StatusBadRequest, "Topic is too long")
	case errors.Is(err, ErrAnswersRequired):
		RespondError(c, http.StatusBadRequest, "Answers are required")
	case errors.Is(err, ErrQuestionGeneration):
		RespondError(c, http.StatusInternalServerError, "Failed to generate questions. Please try again.")
	case errors.Is(err, ErrRoadmapGeneration):
		RespondError(c, http.StatusInternalServerError, "Failed to generate course roadmap. Please try again.")
	case errors.Is(err, ErrInvalidRoadmap):
		RespondError(c, http.StatusUnprocessableEntity, "Invalid roadmap data")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Wizard session not found")
	case errors.Is(err, ErrWizardNotAtEnd):
		RespondError(c, http.StatusBadRequest, "All questions must be shown before finishing")
	case errors.Is(err, ErrWizardBusy):
		RespondError(c, http.StatusConflict, "A submission is already in progress")
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email is already registered")
	case errors.Is(err, ErrCourseNotFound):
		RespondError(c, http.StatusNotFound, "Course not found")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("[%s] database error: %v", traceID, err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("[%s] unknown error: %v", traceID, err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
