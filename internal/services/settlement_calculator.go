package services

import (
	"math/big"

	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/helpers"
)

var (
	basisPointsDenominator = big.NewInt(constants.BasisPointsDenominator)
	topUpMarginNumerator   = big.NewInt(3)
	topUpMarginDenominator = big.NewInt(2)
)

// SettlementCalculator holds the integer arithmetic behind a settlement.
// All amounts are in the token's or chain's smallest unit.
type SettlementCalculator struct{}

// NewSettlementCalculator creates a new settlement calculator
func NewSettlementCalculator() *SettlementCalculator {
	return &SettlementCalculator{}
}

// SplitFee splits rawValue into the protocol fee and the remainder for the recipient.
// fee = floor(rawValue * basisPoints / 10000); fee + toRecipient == rawValue.
func (c *SettlementCalculator) SplitFee(rawValue string, basisPoints int32) (fee *big.Int, toRecipient *big.Int, err error) {
	if basisPoints < 0 || basisPoints > constants.BasisPointsDenominator {
		return nil, nil, newValidationError("dao_fee_basis_points", "must be between 0 and %d, got %d", constants.BasisPointsDenominator, basisPoints)
	}

	raw, err := helpers.ParseRawAmount(rawValue)
	if err != nil {
		return nil, nil, &ValidationError{Field: "raw_value", Message: err.Error()}
	}

	fee = new(big.Int).Mul(raw, big.NewInt(int64(basisPoints)))
	fee.Quo(fee, basisPointsDenominator)
	toRecipient = new(big.Int).Sub(raw, fee)
	return fee, toRecipient, nil
}

// TopUpAmount returns ceil((feeGas + recipientGas) * gasPrice * 3 / 2).
func (c *SettlementCalculator) TopUpAmount(feeGas, recipientGas uint64, gasPrice *big.Int) *big.Int {
	totalGas := new(big.Int).SetUint64(feeGas)
	totalGas.Add(totalGas, new(big.Int).SetUint64(recipientGas))

	scaled := new(big.Int).Mul(totalGas, gasPrice)
	scaled.Mul(scaled, topUpMarginNumerator)

	// ceil(a/b) == (a + b - 1) / b for non-negative a
	scaled.Add(scaled, new(big.Int).Sub(topUpMarginDenominator, big.NewInt(1)))
	return scaled.Quo(scaled, topUpMarginDenominator)
}
