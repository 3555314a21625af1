package interfaces

import (
	"context"
	"math/big"

	"github.com/google/uuid"

	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
)

// WalletWebhookManager attaches and detaches wallet addresses at the notification provider.
type WalletWebhookManager interface {
	Attach(ctx context.Context, walletID uuid.UUID, network constants.Network) (*db.WalletWebhook, error)
	Detach(ctx context.Context, walletID uuid.UUID) error
	DetachForRollback(ctx context.Context, walletID uuid.UUID, cause error) error
}

// SettlementResult holds the transactions of a settlement. A hash is empty
// when its leg was skipped because it carried nothing.
type SettlementResult struct {
	TopUpTxHash     string
	FeeTxHash       string
	RecipientTxHash string
	Fee             *big.Int
	ToRecipient     *big.Int
	TopUp           *big.Int
}

// Settler moves a received deposit out of its wallet on chain.
type Settler interface {
	Settle(ctx context.Context, wallet db.Wallet, receipt db.WebhookReceipt) (*SettlementResult, error)
}

// DepositRelay forwards a recorded deposit to the wallet owner.
type DepositRelay interface {
	Send(ctx context.Context, wallet db.Wallet, receipt db.WebhookReceipt) (*db.SentWebhookReceipt, error)
}
