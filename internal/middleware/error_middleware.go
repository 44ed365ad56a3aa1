package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/keremavci/studentapi/internal/app/models/dto"
	"github.com/keremavci/studentapi/internal/app/repositories"
	"github.com/keremavci/studentapi/internal/pkg/apperrors"
	"github.com/keremavci/studentapi/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses.
// Contract-specific bodies (login failure, duplicate state) are produced by
// the controllers; everything else funnels through here.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"),
		))

	case errors.Is(err, repositories.ErrStateNotFound):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "State does not exist"),
		))

	case errors.Is(err, apperrors.ErrBlankStateName):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "State name cannot be blank"),
		))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()),
		))

	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))

	default:
		// Storage failures and anything unclassified: log, respond 500,
		// never swallow.
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
