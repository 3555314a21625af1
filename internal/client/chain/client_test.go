package chain_test

import (
	"context"
	"math/big"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/cyphera/cyphera-wallets/internal/client/chain"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

const simulatedChainID = 1337

func TestClient_NativeTransferIsMined(t *testing.T) {
	funder, err := crypto.GenerateKey()
	require.NoError(t, err)
	funderAddress := crypto.PubkeyToAddress(funder.PublicKey)

	backend := simulated.NewBackend(types.GenesisAlloc{
		funderAddress: {Balance: big.NewInt(1e18)},
	})
	defer backend.Close()

	client := chain.NewClient(backend.Client(), simulatedChainID).WithPollInterval(10 * time.Millisecond)
	ctx := context.Background()

	gasPrice, err := client.GasPrice(ctx)
	require.NoError(t, err)

	recipient, _, err := chain.GenerateKeyPair()
	require.NoError(t, err)

	txHash, err := client.SendNativeTransfer(ctx, funder, recipient, big.NewInt(1e15), gasPrice)
	require.NoError(t, err)
	backend.Commit()

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ok, err := client.WaitForInclusion(waitCtx, txHash)
	require.NoError(t, err)
	assert.True(t, ok)

	balance, err := backend.Client().BalanceAt(ctx, common.HexToAddress(recipient), nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1e15), balance)
}

func TestClient_ConcurrentTransfersFromOneAccount(t *testing.T) {
	funder, err := crypto.GenerateKey()
	require.NoError(t, err)
	funderAddress := crypto.PubkeyToAddress(funder.PublicKey)

	backend := simulated.NewBackend(types.GenesisAlloc{
		funderAddress: {Balance: big.NewInt(1e18)},
	})
	defer backend.Close()

	client := chain.NewClient(backend.Client(), simulatedChainID).WithPollInterval(10 * time.Millisecond)
	ctx := context.Background()

	gasPrice, err := client.GasPrice(ctx)
	require.NoError(t, err)

	recipients := make([]string, 4)
	for i := range recipients {
		recipients[i], _, err = chain.GenerateKeyPair()
		require.NoError(t, err)
	}

	hashes := make([]string, len(recipients))
	var g errgroup.Group
	for i, recipient := range recipients {
		i, recipient := i, recipient
		g.Go(func() error {
			hash, err := client.SendNativeTransfer(ctx, funder, recipient, big.NewInt(1e15), gasPrice)
			hashes[i] = hash
			return err
		})
	}
	require.NoError(t, g.Wait())
	backend.Commit()

	for i, recipient := range recipients {
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		ok, err := client.WaitForInclusion(waitCtx, hashes[i])
		cancel()
		require.NoError(t, err)
		assert.True(t, ok)

		balance, err := backend.Client().BalanceAt(ctx, common.HexToAddress(recipient), nil)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(1e15), balance)
	}
}

// laggingBackend reports a fixed pending nonce regardless of what was sent,
// like an RPC node behind a load balancer that has not seen our transactions.
type laggingBackend struct {
	chain.Backend
	mu       sync.Mutex
	pending  uint64
	sendErr  error
	sent     []uint64
	inflight int
	overlap  bool
}

func (b *laggingBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inflight++
	if b.inflight > 1 {
		b.overlap = true
	}
	return b.pending, nil
}

func (b *laggingBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.inflight--
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, tx.Nonce())
	return nil
}

func TestClient_AssignsNoncesLocally(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	recipient := "0x000000000000000000000000000000000000dEaD"
	ctx := context.Background()

	t.Run("concurrent sends get distinct nonces", func(t *testing.T) {
		backend := &laggingBackend{pending: 7}
		client := chain.NewClient(backend, simulatedChainID)

		var g errgroup.Group
		for i := 0; i < 5; i++ {
			g.Go(func() error {
				_, err := client.SendNativeTransfer(ctx, key, recipient, big.NewInt(1), big.NewInt(1))
				return err
			})
		}
		require.NoError(t, g.Wait())

		assert.ElementsMatch(t, []uint64{7, 8, 9, 10, 11}, backend.sent)
		assert.False(t, backend.overlap, "sends from one account must not interleave")
	})

	t.Run("failed send falls back to the node nonce", func(t *testing.T) {
		backend := &laggingBackend{pending: 3}
		client := chain.NewClient(backend, simulatedChainID)

		_, err := client.SendNativeTransfer(ctx, key, recipient, big.NewInt(1), big.NewInt(1))
		require.NoError(t, err)

		backend.sendErr = errors.New("nonce too low")
		_, err = client.SendNativeTransfer(ctx, key, recipient, big.NewInt(1), big.NewInt(1))
		require.Error(t, err)

		backend.sendErr = nil
		_, err = client.SendNativeTransfer(ctx, key, recipient, big.NewInt(1), big.NewInt(1))
		require.NoError(t, err)

		assert.Equal(t, []uint64{3, 3}, backend.sent)
	})

	t.Run("node ahead of local nonce wins", func(t *testing.T) {
		backend := &laggingBackend{pending: 1}
		client := chain.NewClient(backend, simulatedChainID)

		_, err := client.SendNativeTransfer(ctx, key, recipient, big.NewInt(1), big.NewInt(1))
		require.NoError(t, err)

		backend.pending = 10
		_, err = client.SendNativeTransfer(ctx, key, recipient, big.NewInt(1), big.NewInt(1))
		require.NoError(t, err)

		assert.Equal(t, []uint64{1, 10}, backend.sent)
	})
}

type recordingLocker struct {
	mu       sync.Mutex
	names    []string
	released int
	err      error
}

func (l *recordingLocker) Lock(ctx context.Context, name string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	l.names = append(l.names, name)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.released++
	}, nil
}

func TestClient_WithLocker(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)
	ctx := context.Background()

	t.Run("lock held around each send", func(t *testing.T) {
		locker := &recordingLocker{}
		backend := &laggingBackend{}
		client := chain.NewClient(backend, simulatedChainID).WithLocker(locker)

		_, err := client.SendNativeTransfer(ctx, key, "0x000000000000000000000000000000000000dEaD", big.NewInt(1), big.NewInt(1))
		require.NoError(t, err)

		assert.Equal(t, []string{fmt.Sprintf("sender:%d:%s", simulatedChainID, from.Hex())}, locker.names)
		assert.Equal(t, 1, locker.released)
	})

	t.Run("lock failure sends nothing", func(t *testing.T) {
		locker := &recordingLocker{err: errors.New("connection refused")}
		backend := &laggingBackend{}
		client := chain.NewClient(backend, simulatedChainID).WithLocker(locker)

		_, err := client.SendNativeTransfer(ctx, key, "0x000000000000000000000000000000000000dEaD", big.NewInt(1), big.NewInt(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to lock sender")
		assert.Empty(t, backend.sent)
	})
}

type receiptBackend struct {
	chain.Backend
	receipt *types.Receipt
}

func (b *receiptBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	if b.receipt == nil {
		return nil, ethereum.NotFound
	}
	return b.receipt, nil
}

func TestClient_WaitForInclusion(t *testing.T) {
	t.Run("reverted transaction", func(t *testing.T) {
		client := chain.NewClient(&receiptBackend{receipt: &types.Receipt{Status: types.ReceiptStatusFailed}}, simulatedChainID)
		ok, err := client.WaitForInclusion(context.Background(), "0x01")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("never mined", func(t *testing.T) {
		client := chain.NewClient(&receiptBackend{}, simulatedChainID).WithPollInterval(5 * time.Millisecond)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		ok, err := client.WaitForInclusion(ctx, "0x01")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, ok)
	})
}

func TestPackTokenTransfer(t *testing.T) {
	data, err := chain.PackTokenTransfer("0x000000000000000000000000000000000000dEaD", big.NewInt(25000))
	require.NoError(t, err)
	require.Len(t, data, 4+32+32)
	// transfer(address,uint256)
	assert.Equal(t, "a9059cbb", common.Bytes2Hex(data[:4]))
	assert.True(t, strings.HasSuffix(common.Bytes2Hex(data[4:36]), "dead"))
	assert.Equal(t, big.NewInt(25000), new(big.Int).SetBytes(data[36:]))

	_, err = chain.PackTokenTransfer("not-an-address", big.NewInt(1))
	assert.Error(t, err)
}

func TestRegistry_ClientFor(t *testing.T) {
	sepolia := chain.NewClient(&receiptBackend{}, 84532)
	registry := chain.NewRegistryFromClients(map[constants.Network]interfaces.ChainClient{
		constants.NetworkBaseSepolia: sepolia,
	})

	client, err := registry.ClientFor("base_sepolia")
	require.NoError(t, err)
	assert.Equal(t, int64(84532), client.ChainID())

	_, err = registry.ClientFor("BASE_MAINNET")
	assert.Error(t, err)

	_, err = registry.ClientFor("POLYGON")
	assert.Error(t, err)
}
