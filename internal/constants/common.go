package constants

// Common string constants used throughout the codebase
const (
	// Environments
	ProdEnvironment = "prod"

	// Wallet sources
	WalletSourceExternalAPI = "external_api"

	// Default name given to wallets created through the API
	DefaultWalletName = "Main Wallet"

	// Provider webhook event types
	AddressActivityEventType = "ADDRESS_ACTIVITY"

	// Headers
	APIKeyHeader           = "X-API-Key"
	AlchemySignatureHeader = "X-Alchemy-Signature"
	WebhookSecretHeader    = "X-Webhook-Secret"

	// BasisPointsDenominator is 100% expressed in basis points
	BasisPointsDenominator = 10000

	// DefaultMaxWalletsPerWebhook is the number of addresses a single provider
	// webhook may watch unless overridden by MAX_WALLETS_PER_WEBHOOK
	DefaultMaxWalletsPerWebhook = 100

	// SigningKeySecretPrefix names the secret holding a provider webhook's signing key
	SigningKeySecretPrefix = "webhook_signing_key_"

	// Settlement outcomes recorded for audit. A receipt is claimed as
	// processing before any transaction is sent.
	SettlementStatusProcessing    = "processing"
	SettlementStatusCompleted     = "completed"
	SettlementStatusTopUpFailed   = "top_up_failed"
	SettlementStatusPartial       = "partial"
	SettlementStatusFailed        = "failed"
	SettlementStatusChainMismatch = "chain_mismatch"

	// DefaultTokenTransferGasLimit caps each ERC-20 transfer submitted during settlement
	DefaultTokenTransferGasLimit = uint64(100000)
)
