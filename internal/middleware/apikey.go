package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/helpers"
	"github.com/cyphera/cyphera-wallets/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	organizationIDKey = "organizationID"
	apiKeyIDKey       = "apiKeyID"
)

// APIKeyStore is the subset of queries the API key middleware needs.
type APIKeyStore interface {
	GetAPIKeyByPrefix(ctx context.Context, keyPrefix string) (db.ApiKey, error)
	TouchAPIKey(ctx context.Context, id uuid.UUID) error
}

// APIKeyAuth authenticates the X-API-Key header and scopes the request to the
// key's organization.
func APIKeyAuth(store APIKeyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(constants.APIKeyHeader)
		if apiKey == "" {
			abortUnauthorized(c, "API key is required")
			return
		}

		prefix := helpers.ExtractKeyPrefix(apiKey)
		if prefix == "invalid" {
			abortUnauthorized(c, "Invalid API key")
			return
		}

		ctx := c.Request.Context()
		key, err := store.GetAPIKeyByPrefix(ctx, prefix)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				abortUnauthorized(c, "Invalid API key")
				return
			}
			logger.Error("Failed to look up API key",
				zap.String("key_prefix", prefix),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if err := helpers.CompareAPIKeyHash(apiKey, key.KeyHash); err != nil {
			abortUnauthorized(c, "Invalid API key")
			return
		}

		if err := store.TouchAPIKey(ctx, key.ID); err != nil {
			logger.Warn("Failed to update API key last_used_at",
				zap.String("api_key_id", key.ID.String()),
				zap.Error(err),
			)
		}

		c.Set(organizationIDKey, key.OrganizationID)
		c.Set(apiKeyIDKey, key.ID)
		c.Next()
	}
}

// GetOrganizationID returns the organization the authenticated API key belongs to.
func GetOrganizationID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(organizationIDKey)
	if !exists {
		return uuid.Nil, false
	}
	orgID, ok := value.(uuid.UUID)
	return orgID, ok
}

// SetOrganizationID is used by handler tests to stand in for APIKeyAuth.
func SetOrganizationID(c *gin.Context, orgID uuid.UUID) {
	c.Set(organizationIDKey, orgID)
}

func abortUnauthorized(c *gin.Context, message string) {
	logger.Warn("API key authentication failed",
		zap.String("reason", message),
		zap.String("path", c.Request.URL.Path),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}
