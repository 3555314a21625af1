package interfaces

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	"github.com/cyphera/cyphera-wallets/internal/constants"
)

// WebhookProvider manages address activity subscriptions at the notification provider.
// Every error is an *alchemy.ProviderError.
type WebhookProvider interface {
	CreateWebhook(ctx context.Context, url string, network constants.Network, addresses []string) (*alchemy.Webhook, error)
	DeleteWebhook(ctx context.Context, webhookID string) error
	UpdateWebhookAddresses(ctx context.Context, webhookID string, add, remove []string) error
}

// SecretStore holds per-webhook signing keys.
type SecretStore interface {
	PutSecret(ctx context.Context, name, value string) error
	GetSecret(ctx context.Context, name string) (string, error)
	DeleteSecret(ctx context.Context, name string) error
}

// KeyCustody encrypts and decrypts wallet key material.
type KeyCustody interface {
	Encrypt(ctx context.Context, keyID string, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

// ChainClient is one network's RPC endpoint.
type ChainClient interface {
	ChainID() int64
	EstimateTokenTransferGas(ctx context.Context, token, from, to string, amount *big.Int) (uint64, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	SendNativeTransfer(ctx context.Context, key *ecdsa.PrivateKey, to string, amount, gasPrice *big.Int) (string, error)
	SendTokenTransfer(ctx context.Context, key *ecdsa.PrivateKey, token, to string, amount *big.Int, gasLimit uint64, gasPrice *big.Int) (string, error)
	// WaitForInclusion blocks until the transaction is mined or ctx ends.
	// It reports whether the transaction executed successfully.
	WaitForInclusion(ctx context.Context, txHash string) (bool, error)
}

// ChainRegistry resolves the ChainClient for a network.
type ChainRegistry interface {
	ClientFor(network string) (ChainClient, error)
}

// SettlementQueue hands stored receipts to the settlement processor.
type SettlementQueue interface {
	EnqueueReceipt(ctx context.Context, receiptID string, network string) error
}

// AlertSender notifies operators about settlements that need manual attention.
type AlertSender interface {
	SendAlert(ctx context.Context, subject, body string) error
}
