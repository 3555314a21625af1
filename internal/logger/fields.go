package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field constructors for the identifiers every service logs, so the keys
// stay the same across the API and the Lambdas.

func CorrelationID(id string) zap.Field {
	return zap.String("correlation_id", id)
}

func WalletID(id uuid.UUID) zap.Field {
	return zap.Stringer("wallet_id", id)
}

func ReceiptID(id uuid.UUID) zap.Field {
	return zap.Stringer("receipt_id", id)
}

func OrganizationID(id uuid.UUID) zap.Field {
	return zap.Stringer("organization_id", id)
}

func Network(network string) zap.Field {
	return zap.String("network", network)
}

func ProviderWebhookID(id string) zap.Field {
	return zap.String("provider_webhook_id", id)
}

func TxHash(hash string) zap.Field {
	return zap.String("tx_hash", hash)
}
