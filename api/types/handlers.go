package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cutroom/timeline-api/internal/services/jobs"
	"github.com/cutroom/timeline-api/internal/services/scenes"
	"github.com/cutroom/timeline-api/internal/services/sessions"
	apperrors "github.com/cutroom/timeline-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Error: message})
}

// SendConflict sends a standardized conflict response
func SendConflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, ErrorResponse{Error: message})
}

// SendInternalError sends a standardized internal server error response
func SendInternalError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}

// SendServiceError maps a service-layer error onto the right HTTP response:
// structured AppErrors carry their own status, service sentinels map to
// 404/400/409, anything else is a 500 with a generic message so internals
// never leak to clients.
func SendServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		c.JSON(appErr.GetHTTPCode(), ErrorResponse{
			Status:  StatusError,
			Message: appErr.Message,
			Error:   string(appErr.Code),
			Details: appErr.Details,
		})
	case scenes.IsNotFound(err),
		errors.Is(err, sessions.ErrSessionNotFound),
		errors.Is(err, sessions.ErrClipNotFound),
		errors.Is(err, jobs.ErrJobNotFound):
		SendNotFound(c, err.Error())
	case errors.Is(err, scenes.ErrInvalidInput),
		errors.Is(err, sessions.ErrInvalidDrag),
		errors.Is(err, sessions.ErrInvalidTrack),
		errors.Is(err, sessions.ErrNoActiveDrag):
		SendBadRequest(c, err.Error())
	case errors.Is(err, sessions.ErrSessionClosed), errors.Is(err, sessions.ErrManagerClosed):
		SendConflict(c, err.Error())
	default:
		SendInternalError(c, "Internal server error")
	}
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}
