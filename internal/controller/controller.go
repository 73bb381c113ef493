// Package controller holds helpers shared by the HTTP controllers.
package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockmate/internal/dto"
	"github.com/lshigami/mockmate/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	MsgMissingFields       = "Missing required fields"
	MsgInternalServerError = "Internal Server Error"
)

// RespondError maps a service error to its status code and body. Detail stays
// in the logs; clients get fallbackMsg for anything unexpected.
func RespondError(ctx *gin.Context, err error, fallbackMsg string) {
	var outErr *service.ModelOutputError
	switch {
	case errors.As(err, &outErr):
		ctx.JSON(http.StatusBadGateway, dto.ModelOutputErrorResponse{
			Success:    false,
			RawContent: outErr.Raw,
			Error:      "Failed to parse AI response",
		})
	case errors.Is(err, service.ErrInterviewNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Interview not found"})
	case errors.Is(err, service.ErrNoFeedback):
		ctx.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No feedback found for this interview"})
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Upstream deadline exceeded")
		ctx.JSON(http.StatusGatewayTimeout, dto.ErrorResponse{Error: "AI service timed out"})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Request failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallbackMsg})
	}
}

// Recovery turns a panic into the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", ctx.Request.URL.Path).Msg("Recovered from panic")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: MsgInternalServerError})
	})
}
