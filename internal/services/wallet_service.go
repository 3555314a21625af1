package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cyphera/cyphera-wallets/internal/client/chain"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/helpers"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

// WalletConfig configures wallet issuance
type WalletConfig struct {
	Stage                 string
	PrivateKeyKMSKeyID    string
	WebhookSecretKMSKeyID string
	DaoFeeRecipient       string
	DaoFeeBasisPoints     int32
	KeyCustodyTimeout     time.Duration
}

// CreateWalletParams contains parameters for creating a wallet
type CreateWalletParams struct {
	OrganizationID   uuid.UUID
	Name             string
	Network          string
	RecipientAddress string
	WebhookURL       string
	// WebhookSecret is sent back to the owner on every relayed deposit. Optional.
	WebhookSecret string
	Source        string
}

// WalletService issues custodial deposit wallets
type WalletService struct {
	store          db.Store
	webhooks       interfaces.WalletWebhookManager
	custody        interfaces.KeyCustody
	cfg            WalletConfig
	custodyTimeout time.Duration
	logger         *zap.Logger
}

// NewWalletService creates a new wallet service
func NewWalletService(store db.Store, webhooks interfaces.WalletWebhookManager, custody interfaces.KeyCustody, cfg WalletConfig) *WalletService {
	return &WalletService{
		store:          store,
		webhooks:       webhooks,
		custody:        custody,
		cfg:            cfg,
		custodyTimeout: cfg.KeyCustodyTimeout,
		logger:         logger.Log,
	}
}

// CreateWallet generates a key pair, stores the wallet and subscribes its address.
// A wallet that cannot be subscribed is removed again.
func (s *WalletService) CreateWallet(ctx context.Context, params CreateWalletParams) (*db.Wallet, error) {
	chainInfo, err := s.validateCreate(&params)
	if err != nil {
		return nil, err
	}

	var (
		address             string
		encryptedPrivateKey string
		encryptedSecret     pgtype.Text
		org                 db.Organization
		walletCount         int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var privateKeyHex string
		var err error
		address, privateKeyHex, err = chain.GenerateKeyPair()
		if err != nil {
			return err
		}
		encryptedPrivateKey, err = s.encrypt(gctx, s.cfg.PrivateKeyKMSKeyID, privateKeyHex)
		if err != nil {
			return fmt.Errorf("failed to encrypt private key: %w", err)
		}
		return nil
	})
	if params.WebhookSecret != "" {
		g.Go(func() error {
			ciphertext, err := s.encrypt(gctx, s.webhookSecretKeyID(), params.WebhookSecret)
			if err != nil {
				return fmt.Errorf("failed to encrypt webhook secret: %w", err)
			}
			encryptedSecret = pgtype.Text{String: ciphertext, Valid: true}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		org, err = s.store.GetOrganization(gctx, params.OrganizationID)
		if errors.Is(err, pgx.ErrNoRows) {
			return newValidationError("organization_id", "organization %s does not exist", params.OrganizationID)
		}
		if err != nil {
			return fmt.Errorf("failed to get organization: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		walletCount, err = s.store.CountActiveWalletsByOrganization(gctx, params.OrganizationID)
		if err != nil {
			return fmt.Errorf("failed to count wallets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if walletCount >= int64(org.MaxWalletsAllowed) {
		return nil, ErrWalletLimitReached
	}

	wallet, err := s.store.CreateWallet(ctx, db.CreateWalletParams{
		OrganizationID:         params.OrganizationID,
		Name:                   params.Name,
		Address:                address,
		EncryptedPrivateKey:    encryptedPrivateKey,
		WebhookUrl:             params.WebhookURL,
		EncryptedWebhookSecret: encryptedSecret,
		DaoFeeBasisPoints:      s.cfg.DaoFeeBasisPoints,
		DaoFeeRecipient:        s.cfg.DaoFeeRecipient,
		RecipientAddress:       params.RecipientAddress,
		Network:                string(chainInfo.Network),
		ChainID:                chainInfo.ChainID,
		Source:                 params.Source,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	log := s.logger.With(
		logger.WalletID(wallet.ID),
		logger.OrganizationID(wallet.OrganizationID),
		zap.String("address", wallet.Address))

	if _, err := s.webhooks.Attach(ctx, wallet.ID, chainInfo.Network); err != nil {
		log.Error("Failed to attach wallet webhook, removing wallet", zap.Error(err))
		s.removeWallet(ctx, log, wallet.ID)
		return nil, fmt.Errorf("failed to attach wallet webhook: %w", err)
	}

	attached, err := s.store.GetWalletByID(ctx, wallet.ID)
	if err != nil {
		err = s.webhooks.DetachForRollback(ctx, wallet.ID, fmt.Errorf("failed to reload wallet: %w", err))
		s.removeWallet(ctx, log, wallet.ID)
		return nil, err
	}

	log.Info("Wallet created", logger.Network(attached.Network))
	return &attached, nil
}

// GetWallet returns one of the organization's wallets
func (s *WalletService) GetWallet(ctx context.Context, organizationID, walletID uuid.UUID) (*db.Wallet, error) {
	wallet, err := s.store.GetWallet(ctx, db.GetWalletParams{ID: walletID, OrganizationID: organizationID})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// ListWallets returns the organization's wallets, newest first
func (s *WalletService) ListWallets(ctx context.Context, organizationID uuid.UUID) ([]db.Wallet, error) {
	wallets, err := s.store.ListWalletsByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// DeleteWallet unsubscribes the wallet's address and removes the wallet.
// If the row cannot be removed the address is subscribed again.
func (s *WalletService) DeleteWallet(ctx context.Context, organizationID, walletID uuid.UUID) error {
	wallet, err := s.GetWallet(ctx, organizationID, walletID)
	if err != nil {
		return err
	}

	log := s.logger.With(logger.WalletID(wallet.ID))

	attached := wallet.WebhookID.Valid
	if attached {
		if err := s.webhooks.Detach(ctx, wallet.ID); err != nil && !errors.Is(err, ErrNotAttached) {
			return fmt.Errorf("failed to detach wallet webhook: %w", err)
		}
	}

	rows, err := s.store.DeleteWallet(ctx, wallet.ID)
	if err != nil {
		if attached {
			log.Error("Failed to delete wallet, re-attaching webhook", zap.Error(err))
			if _, attachErr := s.webhooks.Attach(context.WithoutCancel(ctx), wallet.ID, constants.Network(wallet.Network)); attachErr != nil {
				log.Error("Failed to re-attach wallet webhook", zap.Error(attachErr))
			}
		}
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	if rows == 0 {
		log.Info("Wallet already deleted")
		return nil
	}

	log.Info("Wallet deleted")
	return nil
}

func (s *WalletService) validateCreate(params *CreateWalletParams) (constants.Chain, error) {
	if params.OrganizationID == uuid.Nil {
		return constants.Chain{}, newValidationError("organization_id", "is required")
	}

	network, ok := constants.ParseNetwork(params.Network)
	if !ok || !s.networkEnabled(network) {
		return constants.Chain{}, newValidationError("network", "unsupported network %q", params.Network)
	}
	chainInfo, _ := constants.ChainForNetwork(network)

	if !helpers.IsValidEVMAddress(params.RecipientAddress) {
		return constants.Chain{}, newValidationError("recipient_address", "must be a 0x-prefixed hex address")
	}
	params.RecipientAddress = helpers.NormalizeAddress(params.RecipientAddress)

	if !helpers.IsValidWebhookURL(params.WebhookURL) {
		return constants.Chain{}, newValidationError("webhook_url", "must be an absolute http(s) URL")
	}

	params.Name = strings.TrimSpace(params.Name)
	if params.Name == "" {
		params.Name = constants.DefaultWalletName
	}
	if params.Source == "" {
		params.Source = constants.WalletSourceExternalAPI
	}
	return chainInfo, nil
}

func (s *WalletService) networkEnabled(network constants.Network) bool {
	for _, c := range constants.ChainsForStage(s.cfg.Stage) {
		if c.Network == network {
			return true
		}
	}
	return false
}

func (s *WalletService) webhookSecretKeyID() string {
	if s.cfg.WebhookSecretKMSKeyID != "" {
		return s.cfg.WebhookSecretKMSKeyID
	}
	return s.cfg.PrivateKeyKMSKeyID
}

func (s *WalletService) encrypt(ctx context.Context, keyID, plaintext string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.custodyTimeout)
	defer cancel()
	return s.custody.Encrypt(ctx, keyID, plaintext)
}

func (s *WalletService) removeWallet(ctx context.Context, log *zap.Logger, walletID uuid.UUID) {
	if _, err := s.store.DeleteWallet(context.WithoutCancel(ctx), walletID); err != nil {
		log.Error("Failed to remove wallet after failed create", zap.Error(err))
	}
}
