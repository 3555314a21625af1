package handlers

import (
	"errors"
	"net/http"

	"github.com/cyphera/cyphera-wallets/internal/middleware"
	"github.com/cyphera/cyphera-wallets/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// sendError logs err and sends message as a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps service errors to HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var validationErr *services.ValidationError
	var providerErr *services.ProviderError
	switch {
	case errors.As(err, &validationErr):
		sendError(c, http.StatusBadRequest, validationErr.Error(), err)
	case errors.Is(err, services.ErrWalletNotFound):
		sendError(c, http.StatusNotFound, "Wallet not found", err)
	case errors.Is(err, services.ErrUnknownWebhook):
		sendError(c, http.StatusNotFound, "Unknown webhook", err)
	case errors.Is(err, services.ErrInvalidSignature):
		sendError(c, http.StatusUnauthorized, "Invalid webhook signature", err)
	case errors.Is(err, services.ErrWalletLimitReached):
		sendError(c, http.StatusForbidden, "Organization wallet limit reached", err)
	case errors.Is(err, services.ErrAlreadyAttached), errors.Is(err, services.ErrNotAttached):
		sendError(c, http.StatusConflict, "Wallet webhook state changed, retry the request", err)
	case errors.As(err, &providerErr):
		sendError(c, http.StatusBadGateway, "Notification provider unavailable", err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess sends data as a JSON response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
