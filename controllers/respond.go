package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/northwind-labs/northwind-api/apperrors"
)

// statusFor maps each domain error kind to its HTTP status. Every kind
// currently maps to 400, including ResourceNotFound, which the API
// deliberately reports as a bad request rather than 404.
func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.InvalidPage:
		return http.StatusBadRequest
	case apperrors.InvalidResourceID:
		return http.StatusBadRequest
	case apperrors.ResourceNotFound:
		return http.StatusBadRequest
	case apperrors.Validation:
		return http.StatusBadRequest
	case apperrors.AlreadyExists:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError writes the JSON error body for a failed service call.
// Domain errors surface their message with the mapped status; anything
// else is logged with full detail and answered with an opaque 500.
func respondError(c *gin.Context, log zerolog.Logger, operation string, err error) {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		c.JSON(statusFor(domainErr.Kind), gin.H{"error": domainErr.Message})
		return
	}

	log.Error().Str("operation", operation).Err(err).Msg("unhandled error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
}

// respondBadBody answers a request whose JSON body failed to decode.
func respondBadBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
