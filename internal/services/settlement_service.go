package services

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/client/chain"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

const (
	legFee       = "fee"
	legRecipient = "recipient"
	legDecrypt   = "decrypt"
)

// SettlementConfig configures the settlement engine
type SettlementConfig struct {
	// FundingAccount pays for the gas of every settlement.
	FundingAccount        *chain.FundingAccount
	TokenTransferGasLimit uint64
	ConfirmTimeout        time.Duration
	KeyCustodyTimeout     time.Duration
}

// SettlementResult holds the transactions of a settlement
type SettlementResult = interfaces.SettlementResult

// SettlementService moves a received token deposit out of a custodial wallet.
//
// Chain operations cannot be rolled back, so nothing here compensates: each
// transaction is sent once and awaited before the next one. A failure after
// the top-up leaves the gas in the wallet.
type SettlementService struct {
	chains         interfaces.ChainRegistry
	custody        interfaces.KeyCustody
	calculator     *SettlementCalculator
	funding        *chain.FundingAccount
	gasLimit       uint64
	confirmTimeout time.Duration
	custodyTimeout time.Duration
	logger         *zap.Logger
}

// NewSettlementService creates a new settlement service
func NewSettlementService(chains interfaces.ChainRegistry, custody interfaces.KeyCustody, cfg SettlementConfig) *SettlementService {
	return &SettlementService{
		chains:         chains,
		custody:        custody,
		calculator:     NewSettlementCalculator(),
		funding:        cfg.FundingAccount,
		gasLimit:       cfg.TokenTransferGasLimit,
		confirmTimeout: cfg.ConfirmTimeout,
		custodyTimeout: cfg.KeyCustodyTimeout,
		logger:         logger.Log,
	}
}

// Settle tops up the wallet with gas, then transfers the protocol fee and the
// remainder of receipt's amount out of it.
func (s *SettlementService) Settle(ctx context.Context, wallet db.Wallet, receipt db.WebhookReceipt) (*SettlementResult, error) {
	if s.funding == nil {
		return nil, errors.New("settlement funding account is not configured")
	}

	client, err := s.chains.ClientFor(receipt.Network)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve chain client: %w", err)
	}
	if client.ChainID() != wallet.ChainID {
		return nil, newValidationError("chain_id", "wallet is on chain %d, receipt network %s is chain %d",
			wallet.ChainID, receipt.Network, client.ChainID())
	}

	fee, toRecipient, err := s.calculator.SplitFee(receipt.RawValue, wallet.DaoFeeBasisPoints)
	if err != nil {
		return nil, err
	}

	result := &SettlementResult{Fee: fee, ToRecipient: toRecipient, TopUp: new(big.Int)}
	log := s.logger.With(
		logger.WalletID(wallet.ID),
		logger.ReceiptID(receipt.ID),
		logger.Network(receipt.Network),
		zap.String("fee", fee.String()),
		zap.String("to_recipient", toRecipient.String()))

	if fee.Sign() == 0 && toRecipient.Sign() == 0 {
		log.Info("Nothing to settle")
		return result, nil
	}

	feeGas, err := s.estimateLeg(ctx, client, receipt.ContractAddress, wallet.Address, wallet.DaoFeeRecipient, fee)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate fee transfer: %w", err)
	}
	recipientGas, err := s.estimateLeg(ctx, client, receipt.ContractAddress, wallet.Address, wallet.RecipientAddress, toRecipient)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate recipient transfer: %w", err)
	}

	gasPrice, err := client.GasPrice(ctx)
	if err != nil {
		return nil, err
	}
	result.TopUp = s.calculator.TopUpAmount(feeGas, recipientGas, gasPrice)

	log.Info("Topping up wallet gas",
		zap.Uint64("fee_gas", feeGas),
		zap.Uint64("recipient_gas", recipientGas),
		zap.String("gas_price", gasPrice.String()),
		zap.String("top_up", result.TopUp.String()))

	result.TopUpTxHash, err = client.SendNativeTransfer(ctx, s.funding.Key, wallet.Address, result.TopUp, gasPrice)
	if err != nil {
		return nil, &TopUpFailedError{Err: err}
	}
	if err := s.awaitSuccess(ctx, client, result.TopUpTxHash); err != nil {
		return nil, &TopUpFailedError{TxHash: result.TopUpTxHash, Err: err}
	}

	custodyCtx, cancel := context.WithTimeout(ctx, s.custodyTimeout)
	privateKeyHex, err := s.custody.Decrypt(custodyCtx, wallet.EncryptedPrivateKey)
	cancel()
	if err != nil {
		return nil, s.transferFailed(result, legDecrypt, fmt.Errorf("failed to decrypt wallet key: %w", err))
	}
	walletKey, err := chain.ParsePrivateKey(privateKeyHex)
	if err != nil {
		return nil, s.transferFailed(result, legDecrypt, err)
	}

	result.FeeTxHash, err = s.transferLeg(ctx, client, walletKey, receipt.ContractAddress, wallet.DaoFeeRecipient, fee, gasPrice)
	if err != nil {
		return nil, s.transferFailed(result, legFee, err)
	}

	result.RecipientTxHash, err = s.transferLeg(ctx, client, walletKey, receipt.ContractAddress, wallet.RecipientAddress, toRecipient, gasPrice)
	if err != nil {
		return nil, s.transferFailed(result, legRecipient, err)
	}

	log.Info("Settlement completed",
		zap.String("top_up_tx_hash", result.TopUpTxHash),
		zap.String("fee_tx_hash", result.FeeTxHash),
		zap.String("recipient_tx_hash", result.RecipientTxHash))
	return result, nil
}

func (s *SettlementService) estimateLeg(ctx context.Context, client interfaces.ChainClient, token, from, to string, amount *big.Int) (uint64, error) {
	if amount.Sign() == 0 {
		return 0, nil
	}
	return client.EstimateTokenTransferGas(ctx, token, from, to, amount)
}

// transferLeg sends and awaits one token transfer. A zero amount sends nothing.
func (s *SettlementService) transferLeg(ctx context.Context, client interfaces.ChainClient, key *ecdsa.PrivateKey, token, to string, amount, gasPrice *big.Int) (string, error) {
	if amount.Sign() == 0 {
		return "", nil
	}
	txHash, err := client.SendTokenTransfer(ctx, key, token, to, amount, s.gasLimit, gasPrice)
	if err != nil {
		return "", err
	}
	if err := s.awaitSuccess(ctx, client, txHash); err != nil {
		return "", fmt.Errorf("transaction %s: %w", txHash, err)
	}
	return txHash, nil
}

func (s *SettlementService) awaitSuccess(ctx context.Context, client interfaces.ChainClient, txHash string) error {
	waitCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	ok, err := client.WaitForInclusion(waitCtx, txHash)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("transaction reverted")
	}
	return nil
}

func (s *SettlementService) transferFailed(result *SettlementResult, leg string, err error) error {
	s.logger.Error("Settlement transfer failed after top-up, wallet holds unswept funds",
		zap.String("leg", leg),
		zap.String("top_up_tx_hash", result.TopUpTxHash),
		zap.String("fee_tx_hash", result.FeeTxHash),
		zap.Error(err))
	return &TransferFailedError{
		Leg:             leg,
		TopUpTxHash:     result.TopUpTxHash,
		FeeTxHash:       result.FeeTxHash,
		RecipientTxHash: result.RecipientTxHash,
		Err:             err,
	}
}
