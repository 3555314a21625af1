package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/logger"
)

const erc20TransferABI = `[{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"type":"function"}]`

const defaultReceiptPollInterval = 2 * time.Second

var erc20ABI = mustParseABI(erc20TransferABI)

// Backend is the subset of an Ethereum RPC client used for settlement.
// *ethclient.Client and the simulated backend client both satisfy it.
type Backend interface {
	ethereum.GasEstimator
	ethereum.GasPricer
	ethereum.TransactionSender
	ethereum.TransactionReader
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
}

// Locker serialises sends from one account across processes. The returned
// func releases the lock.
type Locker interface {
	Lock(ctx context.Context, name string) (func(), error)
}

// Client sends settlement transactions on one network. Sends from the same
// account are serialised and nonces are assigned locally, so concurrent
// top-ups from the shared funding account never reuse a nonce.
type Client struct {
	backend      Backend
	chainID      *big.Int
	pollInterval time.Duration
	locker       Locker
	logger       *zap.Logger

	mu         sync.Mutex
	senders    map[common.Address]*sync.Mutex
	nextNonces map[common.Address]uint64
}

// NewClient wraps backend for the chain identified by chainID.
func NewClient(backend Backend, chainID int64) *Client {
	return &Client{
		backend:      backend,
		chainID:      big.NewInt(chainID),
		pollInterval: defaultReceiptPollInterval,
		logger:       logger.Log,
		senders:      make(map[common.Address]*sync.Mutex),
		nextNonces:   make(map[common.Address]uint64),
	}
}

// WithLocker adds a lock shared with other processes around every send.
func (c *Client) WithLocker(locker Locker) *Client {
	c.locker = locker
	return c
}

// WithPollInterval sets how often WaitForInclusion asks for the receipt.
func (c *Client) WithPollInterval(interval time.Duration) *Client {
	c.pollInterval = interval
	return c
}

func (c *Client) ChainID() int64 {
	return c.chainID.Int64()
}

// PackTokenTransfer returns the calldata of an ERC-20 transfer(to, amount).
func PackTokenTransfer(to string, amount *big.Int) ([]byte, error) {
	if !common.IsHexAddress(to) {
		return nil, fmt.Errorf("invalid recipient address: %s", to)
	}
	data, err := erc20ABI.Pack("transfer", common.HexToAddress(to), amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack transfer: %w", err)
	}
	return data, nil
}

// EstimateTokenTransferGas estimates a transfer of amount token units from `from` to `to`.
func (c *Client) EstimateTokenTransferGas(ctx context.Context, token, from, to string, amount *big.Int) (uint64, error) {
	data, err := PackTokenTransfer(to, amount)
	if err != nil {
		return 0, err
	}

	tokenAddress := common.HexToAddress(token)
	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: common.HexToAddress(from),
		To:   &tokenAddress,
		Data: data,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to estimate gas: %w", err)
	}
	return gas, nil
}

func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get gas price: %w", err)
	}
	return price, nil
}

// SendNativeTransfer sends amount wei from key's account to `to`.
func (c *Client) SendNativeTransfer(ctx context.Context, key *ecdsa.PrivateKey, to string, amount, gasPrice *big.Int) (string, error) {
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("invalid recipient address: %s", to)
	}
	recipient := common.HexToAddress(to)
	return c.send(ctx, key, &recipient, amount, params.TxGas, gasPrice, nil)
}

// SendTokenTransfer sends an ERC-20 transfer signed by key with a fixed gas limit.
func (c *Client) SendTokenTransfer(ctx context.Context, key *ecdsa.PrivateKey, token, to string, amount *big.Int, gasLimit uint64, gasPrice *big.Int) (string, error) {
	data, err := PackTokenTransfer(to, amount)
	if err != nil {
		return "", err
	}
	if !common.IsHexAddress(token) {
		return "", fmt.Errorf("invalid token address: %s", token)
	}
	tokenAddress := common.HexToAddress(token)
	return c.send(ctx, key, &tokenAddress, big.NewInt(0), gasLimit, gasPrice, data)
}

func (c *Client) senderLock(from common.Address) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	lock, ok := c.senders[from]
	if !ok {
		lock = &sync.Mutex{}
		c.senders[from] = lock
	}
	return lock
}

// nextNonce is called with the sender lock held. A lagging RPC node can
// report a pending nonce we have already used, so the higher of the two wins.
func (c *Client) nextNonce(ctx context.Context, from common.Address) (uint64, error) {
	pending, err := c.backend.PendingNonceAt(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("failed to get nonce for %s: %w", from.Hex(), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if local, ok := c.nextNonces[from]; ok && local > pending {
		return local, nil
	}
	return pending, nil
}

func (c *Client) setNextNonce(from common.Address, nonce uint64, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !ok {
		// The node's view decides after a failed send.
		delete(c.nextNonces, from)
		return
	}
	c.nextNonces[from] = nonce
}

func (c *Client) send(ctx context.Context, key *ecdsa.PrivateKey, to *common.Address, value *big.Int, gasLimit uint64, gasPrice *big.Int, data []byte) (string, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)

	lock := c.senderLock(from)
	lock.Lock()
	defer lock.Unlock()

	if c.locker != nil {
		unlock, err := c.locker.Lock(ctx, fmt.Sprintf("sender:%d:%s", c.chainID.Int64(), from.Hex()))
		if err != nil {
			return "", fmt.Errorf("failed to lock sender %s: %w", from.Hex(), err)
		}
		defer unlock()
	}

	nonce, err := c.nextNonce(ctx, from)
	if err != nil {
		return "", err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		c.setNextNonce(from, 0, false)
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}
	c.setNextNonce(from, nonce+1, true)

	c.logger.Info("Transaction submitted",
		logger.TxHash(signed.Hash().Hex()),
		zap.String("from", from.Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("nonce", nonce))

	return signed.Hash().Hex(), nil
}

// WaitForInclusion polls for the receipt until it exists or ctx is done.
func (c *Client) WaitForInclusion(ctx context.Context, txHash string) (bool, error) {
	hash := common.HexToHash(txHash)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt.Status == types.ReceiptStatusSuccessful, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			c.logger.Warn("Failed to fetch transaction receipt", logger.TxHash(txHash), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return false, fmt.Errorf("transaction %s not mined: %w", txHash, ctx.Err())
		case <-ticker.C:
		}
	}
}

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI: %v", err))
	}
	return parsed
}
