package helpers

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRawAmount parses an integer token amount in the smallest unit.
// The provider reports hex ("0x..."), API callers may send base 10.
func ParseRawAmount(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("raw amount is empty")
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
		if s == "" {
			return big.NewInt(0), nil
		}
	}

	value, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid raw amount: %q", raw)
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("raw amount must not be negative: %q", raw)
	}
	return value, nil
}

// RawToDecimal converts a smallest-unit amount into its human value
func RawToDecimal(raw *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(raw, -decimals)
}

// FormatRawAmount renders a raw amount with the token decimals applied
func FormatRawAmount(raw string, decimals int32) (string, error) {
	value, err := ParseRawAmount(raw)
	if err != nil {
		return "", err
	}
	return RawToDecimal(value, decimals).String(), nil
}
