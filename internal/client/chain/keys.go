package chain

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const fundingAccountSeparator = "::"

// FundingAccount pays the native gas needed to move deposited tokens.
type FundingAccount struct {
	Address common.Address
	Key     *ecdsa.PrivateKey
}

// GenerateKeyPair creates a new secp256k1 key. The private key is returned as 0x-prefixed hex.
func GenerateKeyPair() (address string, privateKeyHex string, err error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate key: %w", err)
	}
	address = strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
	return address, hexutil.Encode(crypto.FromECDSA(key)), nil
}

// ParsePrivateKey parses a hex private key with or without the 0x prefix.
func ParsePrivateKey(privateKeyHex string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKeyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return key, nil
}

// ParseFundingAccount parses "address::privateKey" and checks the key controls the address.
func ParseFundingAccount(encoded string) (*FundingAccount, error) {
	addressHex, keyHex, found := strings.Cut(encoded, fundingAccountSeparator)
	if !found {
		return nil, fmt.Errorf("funding account must be formatted as address%sprivateKey", fundingAccountSeparator)
	}
	if !common.IsHexAddress(addressHex) {
		return nil, fmt.Errorf("invalid funding account address: %s", addressHex)
	}

	key, err := ParsePrivateKey(keyHex)
	if err != nil {
		return nil, err
	}

	address := common.HexToAddress(addressHex)
	if derived := crypto.PubkeyToAddress(key.PublicKey); derived != address {
		return nil, fmt.Errorf("funding account key does not match address %s", address.Hex())
	}
	return &FundingAccount{Address: address, Key: key}, nil
}
