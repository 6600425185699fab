package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/casey-mccarthy/kromrif-planning-sub000/internal/api/shared/errors"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/domain"
	"github.com/casey-mccarthy/kromrif-planning-sub000/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error *apierrors.APIError `json:"error"`
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, apiErr *apierrors.APIError) {
	c.JSON(statusCode, errorResponse{Error: apiErr})
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondConflict sends a 409 Conflict response
func respondConflict(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusConflict, apierrors.NewConflictError(message, details...))
}

// respondValidationError sends a 400 Bad Request carrying the validation failure
func respondValidationError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondWithError(c, http.StatusBadRequest, apiErr)
		return
	}
	respondWithError(c, http.StatusBadRequest, apierrors.NewValidationError(err.Error()))
}

// respondInternalError sends a 500 Internal Server Error response and logs the error
func respondInternalError(c *gin.Context, err error, message string, fields ...zap.Field) {
	logger.ErrorCtx(c.Request.Context(), err, fields...)
	respondWithError(c, http.StatusInternalServerError, apierrors.NewInternalError(message))
}

// notFoundErrors are service failures reported as 404
var notFoundErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrCharacterNotFound,
	domain.ErrRankNotFound,
	domain.ErrAdjustmentNotFound,
	domain.ErrRaidNotFound,
	domain.ErrEventNotFound,
	domain.ErrItemNotFound,
	domain.ErrDistributionNotFound,
	domain.ErrApplicationNotFound,
}

// conflictErrors are service failures reported as 409: the request was
// well-formed but collides with the current state of the record
var conflictErrors = []error{
	domain.ErrUsernameTaken,
	domain.ErrCharacterNameTaken,
	domain.ErrDiscordAlreadyLinked,
	domain.ErrDuplicateAttendance,
	domain.ErrPointsAlreadyAwarded,
	domain.ErrInvalidStateTransition,
	domain.ErrVotingClosed,
	domain.ErrAlreadyProcessed,
	domain.ErrAdjustmentLocked,
}

// badRequestErrors are service failures reported as 400: the request asks
// for something the rules never allow
var badRequestErrors = []error{
	domain.ErrAltOfAlt,
	domain.ErrSameOwner,
	domain.ErrInvalidDiscordID,
	domain.ErrInvalidAdjustmentSign,
	domain.ErrInsufficientBalance,
	domain.ErrRaidNotCompleted,
	domain.ErrNotEligibleToVote,
}

// respondServiceError maps a service failure onto the status its sentinel
// calls for, falling back to a logged 500
func respondServiceError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadRequest
		if apiErr.Code == apierrors.ErrCodeNotFound {
			status = http.StatusNotFound
		}
		respondWithError(c, status, apiErr)
		return
	}

	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			respondNotFound(c, message, err.Error())
			return
		}
	}
	for _, sentinel := range conflictErrors {
		if errors.Is(err, sentinel) {
			respondConflict(c, message, err.Error())
			return
		}
	}
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			respondBadRequest(c, message, err.Error())
			return
		}
	}

	respondInternalError(c, err, message)
}
