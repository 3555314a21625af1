package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/helpers"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

// ReceiveResult summarizes one provider event
type ReceiveResult struct {
	Recorded   []db.WebhookReceipt
	Duplicates int
	Skipped    int
}

// WebhookReceiptService records deposits reported by the notification provider
// and hands them to the settlement queue.
type WebhookReceiptService struct {
	store         db.Store
	secrets       interfaces.SecretStore
	queue         interfaces.SettlementQueue
	secretTimeout time.Duration
	logger        *zap.Logger
}

// NewWebhookReceiptService creates a new webhook receipt service
func NewWebhookReceiptService(store db.Store, secrets interfaces.SecretStore, queue interfaces.SettlementQueue, secretTimeout time.Duration) *WebhookReceiptService {
	return &WebhookReceiptService{
		store:         store,
		secrets:       secrets,
		queue:         queue,
		secretTimeout: secretTimeout,
		logger:        logger.Log,
	}
}

// VerifySignature checks signature against body with the signing key of providerWebhookID.
func (s *WebhookReceiptService) VerifySignature(ctx context.Context, providerWebhookID string, body []byte, signature string) error {
	if providerWebhookID == "" || signature == "" {
		return ErrInvalidSignature
	}

	if _, err := s.store.GetWalletWebhookByProviderID(ctx, providerWebhookID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUnknownWebhook
		}
		return fmt.Errorf("failed to get wallet webhook: %w", err)
	}

	secretCtx, cancel := context.WithTimeout(ctx, s.secretTimeout)
	defer cancel()
	signingKey, err := s.secrets.GetSecret(secretCtx, SigningKeySecretName(providerWebhookID))
	if err != nil {
		return fmt.Errorf("failed to get signing key: %w", err)
	}

	if !alchemy.VerifySignature(body, signature, signingKey) {
		return ErrInvalidSignature
	}
	return nil
}

// ReceiveEvent stores one receipt per transfer in event and enqueues the new ones.
// Redelivered transfers are counted as duplicates and not enqueued again.
func (s *WebhookReceiptService) ReceiveEvent(ctx context.Context, event alchemy.WebhookEvent) (*ReceiveResult, error) {
	result := &ReceiveResult{}
	log := s.logger.With(
		zap.String("event_id", event.ID),
		logger.ProviderWebhookID(event.WebhookID),
		zap.String("event_type", event.Type))

	if event.Type != constants.AddressActivityEventType {
		log.Info("Ignoring unsupported webhook event type")
		return result, nil
	}

	webhook, err := s.store.GetWalletWebhookByProviderID(ctx, event.WebhookID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUnknownWebhook
		}
		return nil, fmt.Errorf("failed to get wallet webhook: %w", err)
	}

	var body alchemy.AddressActivityEvent
	if err := json.Unmarshal(event.Event, &body); err != nil {
		return nil, newValidationError("event", "malformed address activity: %v", err)
	}
	network := webhook.Network
	if parsed, ok := constants.ParseNetwork(body.Network); ok {
		network = string(parsed)
	}

	receipts := make([]db.CreateWebhookReceiptParams, 0, len(body.Activity))
	for i, raw := range body.Activity {
		params, err := buildReceipt(event, webhook, network, raw)
		if err != nil {
			result.Skipped++
			log.Warn("Skipping activity", zap.Int("index", i), zap.Error(err))
			continue
		}
		receipts = append(receipts, params)
	}

	err = s.store.ExecTx(ctx, func(q db.Querier) error {
		for _, params := range receipts {
			receipt, err := q.CreateWebhookReceipt(ctx, params)
			if errors.Is(err, pgx.ErrNoRows) {
				result.Duplicates++
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to create webhook receipt: %w", err)
			}
			result.Recorded = append(result.Recorded, receipt)
		}
		return nil
	})
	if err != nil {
		return nil, &StorageTransactionError{Op: "record receipts", Err: err}
	}

	var enqueueErrs []error
	for _, receipt := range result.Recorded {
		if err := s.queue.EnqueueReceipt(ctx, receipt.ID.String(), receipt.Network); err != nil {
			log.Error("Failed to enqueue receipt for settlement",
				logger.ReceiptID(receipt.ID),
				zap.Error(err))
			enqueueErrs = append(enqueueErrs, err)
		}
	}

	log.Info("Webhook event processed",
		zap.Int("recorded", len(result.Recorded)),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("skipped", result.Skipped))

	if len(enqueueErrs) > 0 {
		return result, fmt.Errorf("failed to enqueue %d receipts: %w", len(enqueueErrs), errors.Join(enqueueErrs...))
	}
	return result, nil
}

func buildReceipt(event alchemy.WebhookEvent, webhook db.WalletWebhook, network string, raw json.RawMessage) (db.CreateWebhookReceiptParams, error) {
	var activity alchemy.Activity
	if err := json.Unmarshal(raw, &activity); err != nil {
		return db.CreateWebhookReceiptParams{}, fmt.Errorf("malformed activity: %w", err)
	}
	if !activity.Complete() {
		return db.CreateWebhookReceiptParams{}, errors.New("activity is missing required fields")
	}

	rawValue := *activity.RawContract.RawValue
	decimals := *activity.RawContract.Decimals
	value, err := helpers.FormatRawAmount(rawValue, decimals)
	if err != nil {
		return db.CreateWebhookReceiptParams{}, err
	}

	if activity.Log != nil && activity.Log.Removed {
		return db.CreateWebhookReceiptParams{}, errors.New("log was removed by a chain reorganization")
	}

	logIndex := int64(-1)
	if activity.Log != nil && activity.Log.LogIndex != nil {
		parsed, err := hexutil.DecodeUint64(*activity.Log.LogIndex)
		if err != nil {
			return db.CreateWebhookReceiptParams{}, fmt.Errorf("invalid log index %q: %w", *activity.Log.LogIndex, err)
		}
		logIndex = int64(parsed)
	}

	return db.CreateWebhookReceiptParams{
		WebhookID:         webhook.ID,
		ProviderWebhookID: event.WebhookID,
		EventID:           event.ID,
		EventType:         event.Type,
		ContractAddress:   helpers.NormalizeAddress(*activity.RawContract.Address),
		ContractDecimals:  decimals,
		FromAddress:       helpers.NormalizeAddress(*activity.FromAddress),
		ToAddress:         helpers.NormalizeAddress(*activity.ToAddress),
		RawValue:          rawValue,
		Value:             value,
		Hash:              *activity.Hash,
		Category:          *activity.Category,
		Asset:             *activity.Asset,
		BlockNum:          *activity.BlockNum,
		Network:           network,
		LogIndex:          logIndex,
	}, nil
}
