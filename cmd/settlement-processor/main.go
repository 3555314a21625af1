package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	awsclient "github.com/cyphera/cyphera-wallets/internal/client/aws"
	"github.com/cyphera/cyphera-wallets/internal/client/chain"
	httpClient "github.com/cyphera/cyphera-wallets/internal/client/http"
	"github.com/cyphera/cyphera-wallets/internal/config"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/logger"
	"github.com/cyphera/cyphera-wallets/internal/services"
)

const relayTimeout = 10 * time.Second

// ReceiptProcessor settles one stored receipt.
type ReceiptProcessor interface {
	ProcessReceipt(ctx context.Context, receiptID uuid.UUID) error
}

// Application holds all dependencies for the settlement Lambda handler
type Application struct {
	processor ReceiptProcessor
	logger    *zap.Logger
}

// HandleSQSEvent settles each queued receipt. Records that fail are reported
// individually so SQS only redelivers those.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) (events.SQSEventResponse, error) {
	app.logger.Info("Settlement processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	var response events.SQSEventResponse
	for _, record := range event.Records {
		log := app.logger.With(zap.String("message_id", record.MessageId))

		receiptID, err := uuid.Parse(strings.TrimSpace(record.Body))
		if err != nil {
			// Redelivering a malformed message cannot succeed.
			log.Error("Dropping message with invalid receipt id", zap.String("body", record.Body), zap.Error(err))
			continue
		}

		if err := app.processor.ProcessReceipt(ctx, receiptID); err != nil {
			log.Error("Failed to process receipt",
				logger.ReceiptID(receiptID),
				zap.Error(err))
			response.BatchItemFailures = append(response.BatchItemFailures, events.SQSBatchItemFailure{
				ItemIdentifier: record.MessageId,
			})
		}
	}

	app.logger.Info("Settlement batch finished",
		zap.Int("count", len(event.Records)),
		zap.Int("failed", len(response.BatchItemFailures)))
	return response, nil
}

func newApplication(ctx context.Context, stage string) (*Application, error) {
	awsCfg, err := awsclient.LoadConfig(ctx)
	if err != nil {
		return nil, err
	}
	secrets := awsclient.NewSecretsManagerClient(awsCfg)

	cfg, err := config.Load(ctx, stage, secrets)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireSettlement(); err != nil {
		return nil, err
	}

	funding, err := chain.ParseFundingAccount(cfg.GasWallet)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gas wallet: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database connection string: %w", err)
	}
	poolConfig.MaxConns = 5
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	queries := db.New(pool)

	// Settlement Lambdas run concurrently and share the funding account.
	chains, err := chain.NewRegistry(ctx, cfg.RPCURLs, db.NewAdvisoryLocker(pool))
	if err != nil {
		return nil, err
	}

	custody := awsclient.NewKMSClient(awsCfg)
	relay := services.NewWebhookRelayService(
		httpClient.NewHTTPClient(httpClient.WithTimeout(relayTimeout)),
		queries,
		custody,
		cfg.ProviderTimeout,
	)
	settler := services.NewSettlementService(chains, custody, services.SettlementConfig{
		FundingAccount:        funding,
		TokenTransferGasLimit: cfg.TokenTransferGasLimit,
		ConfirmTimeout:        cfg.ChainConfirmTimeout,
		KeyCustodyTimeout:     cfg.ProviderTimeout,
	})
	alerts := services.NewAlertService(cfg.ResendAPIKey, cfg.AlertFromEmail, cfg.OperatorAlertEmail)

	return &Application{
		processor: services.NewSettlementProcessor(queries, relay, settler, alerts),
		logger:    logger.Log,
	}, nil
}

func main() {
	stage := config.LoadStage()
	logger.InitLogger(stage)
	defer logger.Sync()

	app, err := newApplication(context.Background(), stage)
	if err != nil {
		logger.Fatal("Failed to initialize settlement processor", zap.Error(err))
	}

	lambda.Start(app.HandleSQSEvent)
}
