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

	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/helpers"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

// Activity categories that carry a fungible token amount.
var settleableCategories = map[string]bool{
	"token": true,
	"erc20": true,
}

// A processing claim older than this belongs to an invocation that died. It
// is longer than the Lambda timeout.
const settlementClaimTTL = 20 * time.Minute

// SettlementProcessor drives one queued receipt through relay and settlement.
type SettlementProcessor struct {
	store      db.Querier
	relay      interfaces.DepositRelay
	settler    interfaces.Settler
	alerts     interfaces.AlertSender
	calculator *SettlementCalculator
	logger     *zap.Logger
}

// NewSettlementProcessor creates a new settlement processor
func NewSettlementProcessor(store db.Querier, relay interfaces.DepositRelay, settler interfaces.Settler, alerts interfaces.AlertSender) *SettlementProcessor {
	return &SettlementProcessor{
		store:      store,
		relay:      relay,
		settler:    settler,
		alerts:     alerts,
		calculator: NewSettlementCalculator(),
		logger:     logger.Log,
	}
}

// ProcessReceipt relays and settles the receipt. It returns an error only when
// nothing was sent on chain, so redelivering the message is safe.
func (p *SettlementProcessor) ProcessReceipt(ctx context.Context, receiptID uuid.UUID) error {
	log := p.logger.With(logger.ReceiptID(receiptID))

	receipt, err := p.store.GetWebhookReceipt(ctx, receiptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("Receipt not found, dropping message")
			return nil
		}
		return fmt.Errorf("failed to get receipt: %w", err)
	}

	if !settleableCategories[strings.ToLower(receipt.Category)] {
		log.Info("Receipt is not a fungible token transfer, skipping", zap.String("category", receipt.Category))
		return nil
	}

	wallet, err := p.store.GetWalletByAddress(ctx, helpers.NormalizeAddress(receipt.ToAddress))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Outgoing transfers and transfers to deleted wallets land here.
			log.Info("No wallet receives this transfer, skipping", zap.String("to_address", receipt.ToAddress))
			return nil
		}
		return fmt.Errorf("failed to get wallet: %w", err)
	}
	log = log.With(logger.WalletID(wallet.ID))

	claim, err := p.store.ClaimSettlement(ctx, db.ClaimSettlementParams{
		ReceiptID:   receipt.ID,
		WalletID:    wallet.ID,
		StaleBefore: pgtype.Timestamptz{Time: time.Now().Add(-settlementClaimTTL), Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Another delivery holds the claim or already recorded an outcome.
			log.Info("Receipt already claimed, skipping")
			return nil
		}
		return fmt.Errorf("failed to claim receipt: %w", err)
	}

	if wallet.Network != receipt.Network {
		log.Error("Receipt network does not match wallet network",
			zap.String("wallet_network", wallet.Network),
			zap.String("receipt_network", receipt.Network))
		return p.record(ctx, claim, receipt, wallet, constants.SettlementStatusChainMismatch, nil, errors.New("chain mismatch"))
	}

	if _, err := p.relay.Send(ctx, wallet, receipt); err != nil {
		log.Error("Failed to relay deposit webhook", zap.Error(err))
	}

	result, err := p.settler.Settle(ctx, wallet, receipt)

	var (
		topUpErr    *TopUpFailedError
		transferErr *TransferFailedError
		validErr    *ValidationError
	)
	switch {
	case err == nil:
		return p.record(ctx, claim, receipt, wallet, constants.SettlementStatusCompleted, result, nil)

	case errors.As(err, &transferErr):
		partial := &SettlementResult{
			TopUpTxHash:     transferErr.TopUpTxHash,
			FeeTxHash:       transferErr.FeeTxHash,
			RecipientTxHash: transferErr.RecipientTxHash,
		}
		p.alert(ctx, wallet, receipt, transferErr)
		return p.record(ctx, claim, receipt, wallet, constants.SettlementStatusPartial, partial, err)

	case errors.As(err, &topUpErr) && topUpErr.TxHash != "":
		p.alertTopUp(ctx, wallet, receipt, topUpErr)
		return p.record(ctx, claim, receipt, wallet, constants.SettlementStatusTopUpFailed,
			&SettlementResult{TopUpTxHash: topUpErr.TxHash}, err)

	case errors.As(err, &validErr):
		return p.record(ctx, claim, receipt, wallet, constants.SettlementStatusFailed, nil, err)

	default:
		log.Error("Settlement failed before any transaction was sent", zap.Error(err))
		p.release(ctx, claim)
		return fmt.Errorf("failed to settle receipt %s: %w", receiptID, err)
	}
}

func (p *SettlementProcessor) alertTopUp(ctx context.Context, wallet db.Wallet, receipt db.WebhookReceipt, err *TopUpFailedError) {
	subject := fmt.Sprintf("Gas top-up failed on %s: deposit to wallet %s is unsettled", receipt.Network, wallet.Address)
	body := fmt.Sprintf("wallet_id: %s\nreceipt_id: %s\nasset: %s\nraw_value: %s\ntop_up_tx_hash: %s\nerror: %v\n",
		wallet.ID, receipt.ID, receipt.Asset, receipt.RawValue, err.TxHash, err.Err)
	if alertErr := p.alerts.SendAlert(ctx, subject, body); alertErr != nil {
		p.logger.Error("Failed to send top-up failure alert", zap.Error(alertErr))
	}
}

// release drops the claim so a redelivery can settle the receipt. If this
// fails the claim expires after settlementClaimTTL.
func (p *SettlementProcessor) release(ctx context.Context, claim db.Settlement) {
	if err := p.store.ReleaseSettlementClaim(context.WithoutCancel(ctx), claim.ID); err != nil {
		p.logger.Error("Failed to release settlement claim",
			logger.ReceiptID(claim.ReceiptID),
			zap.Error(err))
	}
}

func (p *SettlementProcessor) alert(ctx context.Context, wallet db.Wallet, receipt db.WebhookReceipt, err *TransferFailedError) {
	subject := fmt.Sprintf("Partial settlement on %s: wallet %s needs a manual sweep", receipt.Network, wallet.Address)
	body := fmt.Sprintf("wallet_id: %s\nreceipt_id: %s\nasset: %s\nraw_value: %s\nfailed_leg: %s\ntop_up_tx_hash: %s\nfee_tx_hash: %s\nerror: %v\n",
		wallet.ID, receipt.ID, receipt.Asset, receipt.RawValue, err.Leg, err.TopUpTxHash, err.FeeTxHash, err.Err)
	if alertErr := p.alerts.SendAlert(ctx, subject, body); alertErr != nil {
		p.logger.Error("Failed to send partial settlement alert", zap.Error(alertErr))
	}
}

// record stores the outcome on the claimed row. Failing to store it is logged,
// not returned, because the chain state it describes is already final.
func (p *SettlementProcessor) record(ctx context.Context, claim db.Settlement, receipt db.WebhookReceipt, wallet db.Wallet, status string, result *SettlementResult, cause error) error {
	params := db.UpdateSettlementOutcomeParams{
		ID:              claim.ID,
		Status:          status,
		FeeAmount:       "0",
		RecipientAmount: "0",
		TopUpAmount:     "0",
	}
	if fee, toRecipient, err := p.calculator.SplitFee(receipt.RawValue, wallet.DaoFeeBasisPoints); err == nil {
		params.FeeAmount = fee.String()
		params.RecipientAmount = toRecipient.String()
	}
	if result != nil {
		if result.Fee != nil {
			params.FeeAmount = result.Fee.String()
		}
		if result.ToRecipient != nil {
			params.RecipientAmount = result.ToRecipient.String()
		}
		if result.TopUp != nil {
			params.TopUpAmount = result.TopUp.String()
		}
		params.TopUpTxHash = optionalText(result.TopUpTxHash)
		params.FeeTxHash = optionalText(result.FeeTxHash)
		params.RecipientTxHash = optionalText(result.RecipientTxHash)
	}
	if cause != nil {
		params.ErrorMessage = optionalText(cause.Error())
	}

	if _, err := p.store.UpdateSettlementOutcome(context.WithoutCancel(ctx), params); err != nil {
		p.logger.Error("Failed to record settlement",
			logger.ReceiptID(receipt.ID),
			zap.String("status", status),
			zap.Error(err))
	}
	return nil
}

func optionalText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}
