package handlers

import (
	"context"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/services"
	"github.com/google/uuid"
)

// WalletManager is the wallet lifecycle the API exposes.
type WalletManager interface {
	CreateWallet(ctx context.Context, params services.CreateWalletParams) (*db.Wallet, error)
	GetWallet(ctx context.Context, organizationID, walletID uuid.UUID) (*db.Wallet, error)
	ListWallets(ctx context.Context, organizationID uuid.UUID) ([]db.Wallet, error)
	DeleteWallet(ctx context.Context, organizationID, walletID uuid.UUID) error
}

// DepositReceiver verifies and records provider webhook deliveries.
type DepositReceiver interface {
	VerifySignature(ctx context.Context, providerWebhookID string, body []byte, signature string) error
	ReceiveEvent(ctx context.Context, event alchemy.WebhookEvent) (*services.ReceiveResult, error)
}
