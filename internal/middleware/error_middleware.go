package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/logger"
)

const (
	exposeErrorDetailsKey = "exposeErrorDetails"
	internalErrorMessage  = "Something went wrong!"
)

// ErrorDetails makes HandleAPIError include the internal error text of 500 responses
func ErrorDetails(expose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(exposeErrorDetailsKey, expose)
		c.Next()
	}
}

// HandleAPIError maps err to a status code and writes the error body
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Invalid request")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(apperrors.Message(err, "Resource not found")))
	case errors.Is(err, apperrors.ErrConflict):
		// Existing clients expect 400 for duplicates.
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(apperrors.Message(err, "Resource already exists")))
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(requestIDKey)).
			Msg("Unhandled error")
		writeInternalError(c, err)
	}
}

func writeInternalError(c *gin.Context, err error) {
	resp := dto.NewErrorResponse(internalErrorMessage)
	if c.GetBool(exposeErrorDetailsKey) && err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
}

// Recovery turns a panic into a 500 error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
		writeInternalError(c, err)
	})
}

// NoRoute answers requests that match no route
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse("Route not found"))
}
