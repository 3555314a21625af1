package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/cyphera/cyphera-wallets/internal/db"
)

// WebhookCapacityTracker decides whether the newest webhook on a network can take another wallet.
type WebhookCapacityTracker struct {
	queries    db.Querier
	maxWallets int32
}

// NewWebhookCapacityTracker creates a tracker enforcing maxWallets addresses per webhook
func NewWebhookCapacityTracker(queries db.Querier, maxWallets int32) *WebhookCapacityTracker {
	return &WebhookCapacityTracker{
		queries:    queries,
		maxWallets: maxWallets,
	}
}

// MaxWalletsPerWebhook returns the configured capacity
func (t *WebhookCapacityTracker) MaxWalletsPerWebhook() int32 {
	return t.maxWallets
}

// MostRecent returns the most recently created live webhook for network, or nil when there is none.
// Older webhooks with spare room are never refilled.
func (t *WebhookCapacityTracker) MostRecent(ctx context.Context, network string) (*db.WalletWebhook, error) {
	webhook, err := t.queries.GetMostRecentWalletWebhook(ctx, network)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get most recent webhook for %s: %w", network, err)
	}
	return &webhook, nil
}

// HasCapacity reports whether webhook can take one more wallet
func (t *WebhookCapacityTracker) HasCapacity(webhook *db.WalletWebhook) bool {
	return webhook != nil && webhook.WalletCount < t.maxWallets
}
