package constants

import "strings"

// Network identifies a supported chain. Values match the provider's network enum.
type Network string

const (
	NetworkBaseMainnet Network = "BASE_MAINNET"
	NetworkBaseSepolia Network = "BASE_SEPOLIA"
)

// Chain describes a supported EVM chain
type Chain struct {
	Name             string
	ChainID          int64
	Network          Network
	IsTestnet        bool
	DefaultRPCURL    string
	BlockExplorerURL string
	NativeSymbol     string
}

// SupportedChains lists every chain a wallet can be issued on
var SupportedChains = []Chain{
	{
		Name:             "Base Mainnet",
		ChainID:          8453,
		Network:          NetworkBaseMainnet,
		IsTestnet:        false,
		DefaultRPCURL:    "https://mainnet.base.org",
		BlockExplorerURL: "https://base.blockscout.com/",
		NativeSymbol:     "ETH",
	},
	{
		Name:             "Base Sepolia",
		ChainID:          84532,
		Network:          NetworkBaseSepolia,
		IsTestnet:        true,
		DefaultRPCURL:    "https://sepolia.base.org",
		BlockExplorerURL: "https://sepolia-explorer.base.org",
		NativeSymbol:     "ETH",
	},
}

// ParseNetwork converts a provider or request network string into a Network
func ParseNetwork(value string) (Network, bool) {
	normalized := Network(strings.ToUpper(strings.TrimSpace(value)))
	for _, chain := range SupportedChains {
		if chain.Network == normalized {
			return chain.Network, true
		}
	}
	return "", false
}

// ChainForNetwork returns the chain definition for a network
func ChainForNetwork(network Network) (Chain, bool) {
	for _, chain := range SupportedChains {
		if chain.Network == network {
			return chain, true
		}
	}
	return Chain{}, false
}

// ChainsForStage returns the chains enabled for a stage. Production only
// serves mainnets, every other stage only serves testnets.
func ChainsForStage(stage string) []Chain {
	chains := make([]Chain, 0, len(SupportedChains))
	for _, chain := range SupportedChains {
		if (stage == ProdEnvironment) != chain.IsTestnet {
			chains = append(chains, chain)
		}
	}
	return chains
}
