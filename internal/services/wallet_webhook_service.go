package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

// WalletWebhookConfig configures the attach/detach saga
type WalletWebhookConfig struct {
	// WebhookURL is the endpoint the provider calls back for every webhook.
	WebhookURL           string
	MaxWalletsPerWebhook int32
	ProviderTimeout      time.Duration
}

// WalletWebhookService keeps wallet addresses subscribed at the notification provider.
//
// Attach and Detach span three systems without a shared transaction: the
// provider, the secret store and the database. Provider calls always run
// first; when a later step fails, every provider or secret mutation made so
// far is undone before the original error is returned. Nothing is retried.
type WalletWebhookService struct {
	store           db.Store
	provider        interfaces.WebhookProvider
	secrets         interfaces.SecretStore
	capacity        *WebhookCapacityTracker
	webhookURL      string
	providerTimeout time.Duration
	logger          *zap.Logger
}

// NewWalletWebhookService creates a new wallet webhook service
func NewWalletWebhookService(store db.Store, provider interfaces.WebhookProvider, secrets interfaces.SecretStore, cfg WalletWebhookConfig) *WalletWebhookService {
	return &WalletWebhookService{
		store:           store,
		provider:        provider,
		secrets:         secrets,
		capacity:        NewWebhookCapacityTracker(store, cfg.MaxWalletsPerWebhook),
		webhookURL:      cfg.WebhookURL,
		providerTimeout: cfg.ProviderTimeout,
		logger:          logger.Log,
	}
}

// SigningKeySecretName names the secret holding a provider webhook's signing key
func SigningKeySecretName(providerWebhookID string) string {
	return constants.SigningKeySecretPrefix + providerWebhookID
}

// Attach subscribes the wallet's address on network, reusing the newest
// webhook when it has room and creating a new one otherwise.
func (s *WalletWebhookService) Attach(ctx context.Context, walletID uuid.UUID, network constants.Network) (*db.WalletWebhook, error) {
	var (
		latest *db.WalletWebhook
		wallet db.Wallet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		latest, err = s.capacity.MostRecent(gctx, string(network))
		return err
	})
	g.Go(func() error {
		var err error
		wallet, err = s.store.GetWalletByID(gctx, walletID)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWalletNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get wallet: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if wallet.WebhookID.Valid {
		return nil, ErrAlreadyAttached
	}
	if wallet.Network != string(network) {
		return nil, newValidationError("network", "wallet is on %s, not %s", wallet.Network, network)
	}

	if !s.capacity.HasCapacity(latest) {
		return s.attachToNewWebhook(ctx, wallet, network)
	}
	return s.attachToExistingWebhook(ctx, wallet, *latest)
}

func (s *WalletWebhookService) attachToNewWebhook(ctx context.Context, wallet db.Wallet, network constants.Network) (*db.WalletWebhook, error) {
	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	created, err := s.provider.CreateWebhook(providerCtx, s.webhookURL, network, []string{wallet.Address})
	cancel()
	if err != nil {
		return nil, fmt.Errorf("failed to create provider webhook: %w", err)
	}

	log := s.logger.With(
		logger.WalletID(wallet.ID),
		logger.ProviderWebhookID(created.ID),
		logger.Network(string(network)))

	secretCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	err = s.secrets.PutSecret(secretCtx, SigningKeySecretName(created.ID), created.SigningKey)
	cancel()
	if err != nil {
		log.Error("Failed to store webhook signing key, deleting provider webhook", zap.Error(err))
		s.deleteProviderWebhook(ctx, log, created.ID)
		return nil, fmt.Errorf("failed to store webhook signing key: %w", err)
	}

	var webhook db.WalletWebhook
	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		var err error
		webhook, err = q.CreateWalletWebhook(ctx, db.CreateWalletWebhookParams{
			ProviderWebhookID: created.ID,
			Network:           string(network),
			WebhookUrl:        s.webhookURL,
			WalletCount:       1,
		})
		if err != nil {
			return fmt.Errorf("failed to create wallet webhook: %w", err)
		}
		return setWalletWebhook(ctx, q, wallet.ID, webhook.ID)
	})
	if err != nil {
		log.Error("Failed to record new webhook, rolling back provider state", zap.Error(err))
		s.deleteSigningKey(ctx, log, created.ID)
		s.deleteProviderWebhook(ctx, log, created.ID)
		return nil, &StorageTransactionError{Op: "create webhook", Err: err}
	}

	log.Info("Wallet attached to new webhook", zap.String("webhook_id", webhook.ID.String()))
	return &webhook, nil
}

func (s *WalletWebhookService) attachToExistingWebhook(ctx context.Context, wallet db.Wallet, existing db.WalletWebhook) (*db.WalletWebhook, error) {
	log := s.logger.With(
		logger.WalletID(wallet.ID),
		zap.String("webhook_id", existing.ID.String()),
		logger.ProviderWebhookID(existing.ProviderWebhookID))

	if err := s.updateAddresses(ctx, existing.ProviderWebhookID, []string{wallet.Address}, nil); err != nil {
		return nil, fmt.Errorf("failed to add address to provider webhook: %w", err)
	}

	var webhook db.WalletWebhook
	err := s.store.ExecTx(ctx, func(q db.Querier) error {
		var err error
		webhook, err = q.IncrementWalletWebhookCount(ctx, db.IncrementWalletWebhookCountParams{
			ID:         existing.ID,
			MaxWallets: s.capacity.MaxWalletsPerWebhook(),
		})
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWebhookFull
		}
		if err != nil {
			return fmt.Errorf("failed to increment wallet count: %w", err)
		}
		return setWalletWebhook(ctx, q, wallet.ID, existing.ID)
	})
	if err != nil {
		log.Error("Failed to record attachment, removing address from provider webhook", zap.Error(err))
		if compErr := s.updateAddresses(context.WithoutCancel(ctx), existing.ProviderWebhookID, nil, []string{wallet.Address}); compErr != nil {
			log.Error("Compensation failed: address left on provider webhook", zap.Error(compErr))
		}
		return nil, &StorageTransactionError{Op: "attach wallet", Err: err}
	}

	log.Info("Wallet attached to existing webhook", zap.Int32("wallet_count", webhook.WalletCount))
	return &webhook, nil
}

// Detach removes the wallet's address from its webhook. When the database
// update fails the address is re-added and the wallet stays attached.
func (s *WalletWebhookService) Detach(ctx context.Context, walletID uuid.UUID) error {
	wallet, err := s.store.GetWalletByID(ctx, walletID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrWalletNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get wallet: %w", err)
	}
	return s.detach(ctx, wallet)
}

func (s *WalletWebhookService) detach(ctx context.Context, wallet db.Wallet) error {
	if !wallet.WebhookID.Valid {
		return ErrNotAttached
	}
	webhookID := uuid.UUID(wallet.WebhookID.Bytes)

	webhook, err := s.store.GetWalletWebhook(ctx, webhookID)
	if err != nil {
		return fmt.Errorf("failed to get wallet webhook %s: %w", webhookID, err)
	}

	log := s.logger.With(
		logger.WalletID(wallet.ID),
		zap.String("webhook_id", webhook.ID.String()),
		logger.ProviderWebhookID(webhook.ProviderWebhookID))

	if err := s.updateAddresses(ctx, webhook.ProviderWebhookID, nil, []string{wallet.Address}); err != nil {
		return fmt.Errorf("failed to remove address from provider webhook: %w", err)
	}

	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		if _, err := q.DecrementWalletWebhookCount(ctx, webhook.ID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("wallet webhook %s has no wallets to remove", webhook.ID)
			}
			return fmt.Errorf("failed to decrement wallet count: %w", err)
		}

		_, err := q.ClearWalletWebhookID(ctx, db.ClearWalletWebhookIDParams{
			ID:        wallet.ID,
			WebhookID: wallet.WebhookID,
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to clear wallet webhook: %w", err)
		}

		// The row no longer references this webhook. If it is gone entirely,
		// the decrement above is still correct.
		if _, getErr := q.GetWalletByID(ctx, wallet.ID); errors.Is(getErr, pgx.ErrNoRows) {
			log.Warn("Wallet disappeared during detach, continuing")
			return nil
		}
		return fmt.Errorf("wallet %s was modified during detach", wallet.ID)
	})
	if err != nil {
		log.Error("Failed to record detachment, re-adding address to provider webhook", zap.Error(err))
		if compErr := s.updateAddresses(context.WithoutCancel(ctx), webhook.ProviderWebhookID, []string{wallet.Address}, nil); compErr != nil {
			log.Error("Compensation failed: address missing from provider webhook", zap.Error(compErr))
		}
		return &StorageTransactionError{Op: "detach wallet", Err: err}
	}

	log.Info("Wallet detached from webhook")
	return nil
}

// DetachForRollback undoes a successful Attach after a later step failed with cause.
// cause is always returned; a Detach failure is logged and joined to it.
func (s *WalletWebhookService) DetachForRollback(ctx context.Context, walletID uuid.UUID, cause error) error {
	if err := s.Detach(context.WithoutCancel(ctx), walletID); err != nil {
		s.logger.Error("Rollback detach failed, wallet left attached",
			logger.WalletID(walletID),
			zap.NamedError("cause", cause),
			zap.Error(err))
		return errors.Join(cause, err)
	}
	return cause
}

func setWalletWebhook(ctx context.Context, q db.Querier, walletID, webhookID uuid.UUID) error {
	_, err := q.SetWalletWebhookID(ctx, db.SetWalletWebhookIDParams{
		ID:        walletID,
		WebhookID: pgtype.UUID{Bytes: webhookID, Valid: true},
	})
	if errors.Is(err, pgx.ErrNoRows) {
		// Attached concurrently, or deleted.
		return ErrAlreadyAttached
	}
	if err != nil {
		return fmt.Errorf("failed to set wallet webhook: %w", err)
	}
	return nil
}

func (s *WalletWebhookService) updateAddresses(ctx context.Context, providerWebhookID string, add, remove []string) error {
	providerCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()
	return s.provider.UpdateWebhookAddresses(providerCtx, providerWebhookID, add, remove)
}

func (s *WalletWebhookService) deleteProviderWebhook(ctx context.Context, log *zap.Logger, providerWebhookID string) {
	providerCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.providerTimeout)
	defer cancel()

	err := s.provider.DeleteWebhook(providerCtx, providerWebhookID)
	if err != nil && !alchemy.IsNotFound(err) {
		log.Error("Compensation failed: provider webhook leaked", zap.Error(err))
	}
}

func (s *WalletWebhookService) deleteSigningKey(ctx context.Context, log *zap.Logger, providerWebhookID string) {
	secretCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.providerTimeout)
	defer cancel()

	if err := s.secrets.DeleteSecret(secretCtx, SigningKeySecretName(providerWebhookID)); err != nil {
		log.Error("Compensation failed: signing key leaked", zap.Error(err))
	}
}
