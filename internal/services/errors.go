package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
)

var (
	// ErrWalletNotFound is returned when the wallet row does not exist.
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrAlreadyAttached is returned by Attach when the wallet already has a webhook.
	ErrAlreadyAttached = errors.New("wallet is already attached to a webhook")
	// ErrNotAttached is returned by Detach when the wallet has no webhook.
	ErrNotAttached = errors.New("wallet is not attached to a webhook")
	// ErrWebhookFull is returned when the reused webhook filled up before commit.
	ErrWebhookFull = errors.New("webhook has no remaining capacity")
	// ErrWalletLimitReached is returned when an organization is at max_wallets_allowed.
	ErrWalletLimitReached = errors.New("organization wallet limit reached")
	// ErrInvalidSignature is returned when a provider webhook signature does not verify.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrUnknownWebhook is returned when a provider webhook id is not ours.
	ErrUnknownWebhook = errors.New("unknown provider webhook")
)

// ProviderError is the notification provider failure type.
type ProviderError = alchemy.ProviderError

// ValidationError reports invalid input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// StorageTransactionError wraps a failed database transaction.
type StorageTransactionError struct {
	Op  string
	Err error
}

func (e *StorageTransactionError) Error() string {
	return fmt.Sprintf("storage transaction %s failed: %v", e.Op, e.Err)
}

func (e *StorageTransactionError) Unwrap() error {
	return e.Err
}

// TopUpFailedError means the gas funding transfer did not land.
// No token transfer was attempted.
type TopUpFailedError struct {
	TxHash string // empty when the transfer was never submitted
	Err    error
}

func (e *TopUpFailedError) Error() string {
	if e.TxHash == "" {
		return fmt.Sprintf("gas top-up failed: %v", e.Err)
	}
	return fmt.Sprintf("gas top-up %s failed: %v", e.TxHash, e.Err)
}

func (e *TopUpFailedError) Unwrap() error {
	return e.Err
}

// TransferFailedError means the top-up landed but a token transfer did not.
// It carries the hashes of every transfer that did succeed.
type TransferFailedError struct {
	Leg             string
	TopUpTxHash     string
	FeeTxHash       string
	RecipientTxHash string
	Err             error
}

func (e *TransferFailedError) Error() string {
	succeeded := []string{"top_up=" + e.TopUpTxHash}
	if e.FeeTxHash != "" {
		succeeded = append(succeeded, "fee="+e.FeeTxHash)
	}
	if e.RecipientTxHash != "" {
		succeeded = append(succeeded, "recipient="+e.RecipientTxHash)
	}
	return fmt.Sprintf("%s transfer failed after [%s]: %v", e.Leg, strings.Join(succeeded, " "), e.Err)
}

func (e *TransferFailedError) Unwrap() error {
	return e.Err
}
