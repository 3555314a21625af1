package config

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/helpers"
	"github.com/cyphera/cyphera-wallets/internal/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultProviderTimeout     = 5 * time.Second
	defaultChainConfirmTimeout = 90 * time.Second
	defaultRateLimitRPS        = 10
	defaultRateLimitBurst      = 20
	defaultAlchemyBaseURL      = "https://dashboard.alchemy.com/api"
	defaultAlertFromEmail      = "alerts@cyphera.com"
	defaultPort                = "8080"
)

// SecretReader resolves a secret from an ARN env var, falling back to a plain env var.
type SecretReader interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
	GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error
}

// Config is the runtime configuration shared by the API and the settlement processor.
type Config struct {
	Stage       string
	Port        string
	DatabaseURL string

	MaxWalletsPerWebhook  int32
	WalletWebhookURL      string
	AlchemyBaseURL        string
	AlchemyAuthToken      string
	PrivateKeyKMSKeyID    string
	WebhookSecretKMSKeyID string
	SettlementQueueURL    string

	TokenTransferGasLimit uint64
	ProviderTimeout       time.Duration
	ChainConfirmTimeout   time.Duration
	DaoFeeRecipient       string
	DaoFeeBasisPoints     int32
	// GasWallet is the gas funding account encoded as "address::privateKey".
	GasWallet string
	RPCURLs   map[constants.Network]string

	RateLimitRPS       float64
	RateLimitBurst     int
	CORSAllowedOrigins []string

	ResendAPIKey       string
	OperatorAlertEmail string
	AlertFromEmail     string
}

// LoadStage loads .env for local runs and returns the validated STAGE.
func LoadStage() string {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}
	return stage
}

// Load reads plain settings from the environment and secrets through secrets.
func Load(ctx context.Context, stage string, secrets SecretReader) (*Config, error) {
	cfg := &Config{
		Stage:                 stage,
		Port:                  getEnv("PORT", defaultPort),
		WalletWebhookURL:      os.Getenv("WALLET_WEBHOOK_URL"),
		AlchemyBaseURL:        getEnv("ALCHEMY_NOTIFY_BASE_URL", defaultAlchemyBaseURL),
		PrivateKeyKMSKeyID:    os.Getenv("KMS_PRIVATE_KEY_KEY_ID"),
		WebhookSecretKMSKeyID: os.Getenv("KMS_WEBHOOK_SECRET_KEY_ID"),
		SettlementQueueURL:    os.Getenv("SETTLEMENT_QUEUE_URL"),
		DaoFeeRecipient:       helpers.NormalizeAddress(os.Getenv("DAO_FEE_RECIPIENT")),
		OperatorAlertEmail:    os.Getenv("OPERATOR_ALERT_EMAIL"),
		AlertFromEmail:        getEnv("ALERT_FROM_EMAIL", defaultAlertFromEmail),
		RPCURLs:               make(map[constants.Network]string),
		CORSAllowedOrigins:    splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}

	var err error
	if cfg.MaxWalletsPerWebhook, err = getEnvInt32("MAX_WALLETS_PER_WEBHOOK", constants.DefaultMaxWalletsPerWebhook); err != nil {
		return nil, err
	}
	if cfg.MaxWalletsPerWebhook <= 0 {
		return nil, fmt.Errorf("MAX_WALLETS_PER_WEBHOOK must be positive, got %d", cfg.MaxWalletsPerWebhook)
	}
	if cfg.TokenTransferGasLimit, err = getEnvUint64("TOKEN_TRANSFER_GAS_LIMIT", constants.DefaultTokenTransferGasLimit); err != nil {
		return nil, err
	}
	if cfg.ProviderTimeout, err = getEnvDuration("PROVIDER_TIMEOUT", defaultProviderTimeout); err != nil {
		return nil, err
	}
	if cfg.ChainConfirmTimeout, err = getEnvDuration("CHAIN_CONFIRM_TIMEOUT", defaultChainConfirmTimeout); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", defaultRateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", defaultRateLimitBurst); err != nil {
		return nil, err
	}

	if cfg.DaoFeeBasisPoints, err = getEnvInt32("DAO_FEE_BASIS_POINTS", 0); err != nil {
		return nil, err
	}
	if cfg.DaoFeeBasisPoints < 0 || cfg.DaoFeeBasisPoints > constants.BasisPointsDenominator {
		return nil, fmt.Errorf("DAO_FEE_BASIS_POINTS must be between 0 and %d, got %d", constants.BasisPointsDenominator, cfg.DaoFeeBasisPoints)
	}

	if cfg.DaoFeeRecipient != "" && !helpers.IsValidEVMAddress(cfg.DaoFeeRecipient) {
		return nil, fmt.Errorf("DAO_FEE_RECIPIENT is not a valid address: %s", cfg.DaoFeeRecipient)
	}

	for _, chain := range constants.ChainsForStage(stage) {
		rpcURL := getEnv("RPC_URL_"+string(chain.Network), chain.DefaultRPCURL)
		cfg.RPCURLs[chain.Network] = rpcURL
	}

	if cfg.DatabaseURL, err = loadDatabaseURL(ctx, stage, secrets); err != nil {
		return nil, err
	}

	if cfg.AlchemyAuthToken, err = secrets.GetSecretString(ctx, "ALCHEMY_AUTH_TOKEN_ARN", "ALCHEMY_AUTH_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to get alchemy auth token: %w", err)
	}

	cfg.GasWallet = optionalSecret(ctx, secrets, "GAS_WALLET_ARN", "GAS_WALLET")
	cfg.ResendAPIKey = optionalSecret(ctx, secrets, "RESEND_API_KEY_ARN", "RESEND_API_KEY")

	return cfg, nil
}

// RequireSettlement validates the settings only the settlement processor needs.
func (c *Config) RequireSettlement() error {
	if c.GasWallet == "" {
		return fmt.Errorf("GAS_WALLET is required for settlement")
	}
	if c.DaoFeeRecipient == "" {
		return fmt.Errorf("DAO_FEE_RECIPIENT is required for settlement")
	}
	if c.PrivateKeyKMSKeyID == "" {
		return fmt.Errorf("KMS_PRIVATE_KEY_KEY_ID is required for settlement")
	}
	return nil
}

// RequireAPI validates the settings only the HTTP API needs.
func (c *Config) RequireAPI() error {
	if !helpers.IsValidWebhookURL(c.WalletWebhookURL) {
		return fmt.Errorf("WALLET_WEBHOOK_URL must be an absolute http(s) URL")
	}
	if c.PrivateKeyKMSKeyID == "" {
		return fmt.Errorf("KMS_PRIVATE_KEY_KEY_ID is required")
	}
	if c.DaoFeeRecipient == "" {
		return fmt.Errorf("DAO_FEE_RECIPIENT is required")
	}
	return nil
}

func loadDatabaseURL(ctx context.Context, stage string, secrets SecretReader) (string, error) {
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := getEnv("DB_SSLMODE", "require")
		if dbEndpoint == "" || dbName == "" {
			return "", fmt.Errorf("missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}

		var secretData struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := secrets.GetSecretJSON(ctx, "RDS_SECRET_ARN", "", &secretData); err != nil {
			return "", fmt.Errorf("failed to retrieve RDS secret: %w", err)
		}
		if secretData.Username == "" || secretData.Password == "" {
			return "", fmt.Errorf("username or password not found in RDS secret data")
		}

		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username),
			url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode), nil
	}

	dsn, err := secrets.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		return "", fmt.Errorf("failed to get DATABASE_URL: %w", err)
	}
	return dsn, nil
}

func optionalSecret(ctx context.Context, secrets SecretReader, arnEnvVar, fallbackEnvVar string) string {
	value, err := secrets.GetSecretString(ctx, arnEnvVar, fallbackEnvVar)
	if err != nil {
		logger.Warn("Optional secret not configured", zap.String("env_var", fallbackEnvVar))
		return ""
	}
	return value
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvInt32(key string, fallback int32) (int32, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return int32(parsed), nil
}

func getEnvUint64(key string, fallback uint64) (uint64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
