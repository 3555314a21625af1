package chain

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

// Registry maps each supported network to its client. It is built once at
// startup and only read afterwards.
type Registry struct {
	clients map[constants.Network]interfaces.ChainClient
}

// NewRegistry dials every RPC URL and checks the remote chain id matches the
// network. A non-nil locker is shared by every client to serialise sends.
func NewRegistry(ctx context.Context, rpcURLs map[constants.Network]string, locker Locker) (*Registry, error) {
	clients := make(map[constants.Network]interfaces.ChainClient, len(rpcURLs))

	for network, rpcURL := range rpcURLs {
		chain, ok := constants.ChainForNetwork(network)
		if !ok {
			return nil, fmt.Errorf("unsupported network: %s", network)
		}

		eth, err := ethclient.DialContext(ctx, rpcURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to %s RPC: %w", network, err)
		}

		remoteChainID, err := eth.ChainID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get chain id for %s: %w", network, err)
		}
		if remoteChainID.Int64() != chain.ChainID {
			return nil, fmt.Errorf("RPC for %s reports chain id %d, expected %d", network, remoteChainID.Int64(), chain.ChainID)
		}

		client := NewClient(eth, chain.ChainID)
		if locker != nil {
			client.WithLocker(locker)
		}
		clients[network] = client
		logger.Info("Connected to network RPC",
			logger.Network(string(network)),
			zap.Int64("chain_id", chain.ChainID))
	}

	if len(clients) == 0 {
		return nil, fmt.Errorf("no RPC connections established")
	}
	return &Registry{clients: clients}, nil
}

// NewRegistryFromClients builds a registry from ready clients.
func NewRegistryFromClients(clients map[constants.Network]interfaces.ChainClient) *Registry {
	return &Registry{clients: clients}
}

func (r *Registry) ClientFor(network string) (interfaces.ChainClient, error) {
	parsed, ok := constants.ParseNetwork(network)
	if !ok {
		return nil, fmt.Errorf("unsupported network: %s", network)
	}
	client, ok := r.clients[parsed]
	if !ok {
		return nil, fmt.Errorf("no RPC client for network %s", parsed)
	}
	return client, nil
}
