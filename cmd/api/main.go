package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	awsclient "github.com/cyphera/cyphera-wallets/internal/client/aws"
	"github.com/cyphera/cyphera-wallets/internal/config"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/helpers"
	"github.com/cyphera/cyphera-wallets/internal/logger"
	"github.com/cyphera/cyphera-wallets/internal/middleware"
	"github.com/cyphera/cyphera-wallets/internal/server"
	"github.com/cyphera/cyphera-wallets/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	stage := config.LoadStage()
	logger.InitLogger(stage)
	defer logger.Sync()

	ctx := context.Background()
	router, cfg, cleanup, err := buildRouter(ctx, stage)
	if err != nil {
		logger.Fatal("Failed to initialize API", zap.Error(err))
	}
	defer cleanup()

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		ginLambda := ginadapter.New(router)
		lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
			return ginLambda.ProxyWithContext(ctx, req)
		})
		return
	}

	serve(router, cfg.Port)
}

func buildRouter(ctx context.Context, stage string) (*gin.Engine, *config.Config, func(), error) {
	awsCfg, err := awsclient.LoadConfig(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	secrets := awsclient.NewSecretsManagerClient(awsCfg)

	cfg, err := config.Load(ctx, stage, secrets)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireAPI(); err != nil {
		return nil, nil, nil, err
	}

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		return nil, nil, nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to parse database connection string: %w", err)
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("unable to create connection pool: %w", err)
	}
	store := db.NewStore(pool)

	custody := awsclient.NewKMSClient(awsCfg)
	queue := awsclient.NewSettlementQueue(awsCfg, cfg.SettlementQueueURL)
	provider := alchemy.NewNotifyClient(cfg.AlchemyBaseURL, cfg.AlchemyAuthToken, cfg.ProviderTimeout)

	webhooks := services.NewWalletWebhookService(store, provider, secrets, services.WalletWebhookConfig{
		WebhookURL:           cfg.WalletWebhookURL,
		MaxWalletsPerWebhook: cfg.MaxWalletsPerWebhook,
		ProviderTimeout:      cfg.ProviderTimeout,
	})
	wallets := services.NewWalletService(store, webhooks, custody, services.WalletConfig{
		Stage:                 cfg.Stage,
		PrivateKeyKMSKeyID:    cfg.PrivateKeyKMSKeyID,
		WebhookSecretKMSKeyID: cfg.WebhookSecretKMSKeyID,
		DaoFeeRecipient:       cfg.DaoFeeRecipient,
		DaoFeeBasisPoints:     cfg.DaoFeeBasisPoints,
		KeyCustodyTimeout:     cfg.ProviderTimeout,
	})
	receipts := services.NewWebhookReceiptService(store, secrets, queue, cfg.ProviderTimeout)

	if stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	router := server.NewRouter(server.Options{
		Wallets:        wallets,
		Receipts:       receipts,
		APIKeys:        store,
		RateLimiter:    rateLimiter,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	cleanup := func() {
		rateLimiter.Stop()
		pool.Close()
	}
	return router, cfg, cleanup, nil
}

func serve(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exiting")
}
