package networkdefinition

import (
	"sort"
	"strconv"
	"strings"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
)

// NetworkDefinitionProvider provides network definitions.
type NetworkDefinitionProvider struct {
	logger         port.Logger
	allNetworkDefs map[uint64]entity.NetworkDefinition
	active         entity.NetworkDefinition
}

// Predefined network definitions
var ( //nolint:gochecknoglobals // Global for definitions
	Hardhat = entity.NetworkDefinition{
		ChainID:       1337,
		Name:          "Localhost (Hardhat)",
		Identifier:    "hardhat",
		NativeSymbol:  "ETH",
		PrimaryRPCURL: "http://127.0.0.1:8545",
	}
	Ethereum = entity.NetworkDefinition{
		ChainID:          1,
		Name:             "Ethereum Mainnet",
		Identifier:       "ethereum",
		NativeSymbol:     "ETH",
		PrimaryRPCURL:    "https://ethereum-rpc.publicnode.com",
		FallbackRPCURLs:  []string{"https://rpc.ankr.com/eth", "https://ethereum.publicnode.com"},
		BlockExplorerURL: "https://etherscan.io",
	}
	Sepolia = entity.NetworkDefinition{
		ChainID:          11155111,
		Name:             "Sepolia",
		Identifier:       "sepolia",
		NativeSymbol:     "ETH",
		PrimaryRPCURL:    "https://ethereum-sepolia-rpc.publicnode.com",
		FallbackRPCURLs:  []string{"https://rpc.sepolia.org"},
		BlockExplorerURL: "https://sepolia.etherscan.io",
	}
	Polygon = entity.NetworkDefinition{
		ChainID:          137,
		Name:             "Polygon PoS",
		Identifier:       "polygon",
		NativeSymbol:     "MATIC",
		PrimaryRPCURL:    "https://polygon-rpc.com/",
		FallbackRPCURLs:  []string{"https://rpc.ankr.com/polygon", "https://polygon.publicnode.com"},
		BlockExplorerURL: "https://polygonscan.com",
	}
	Mumbai = entity.NetworkDefinition{
		ChainID:          80001,
		Name:             "Polygon Mumbai",
		Identifier:       "mumbai",
		NativeSymbol:     "MATIC",
		PrimaryRPCURL:    "https://rpc-mumbai.maticvigil.com",
		BlockExplorerURL: "https://mumbai.polygonscan.com",
	}
	Amoy = entity.NetworkDefinition{
		ChainID:          80002,
		Name:             "Polygon Amoy",
		Identifier:       "amoy",
		NativeSymbol:     "POL",
		PrimaryRPCURL:    "https://rpc-amoy.polygon.technology",
		BlockExplorerURL: "https://amoy.polygonscan.com",
	}
	Optimism = entity.NetworkDefinition{
		ChainID:          10,
		Name:             "OP Mainnet",
		Identifier:       "optimism",
		NativeSymbol:     "ETH",
		PrimaryRPCURL:    "https://mainnet.optimism.io",
		FallbackRPCURLs:  []string{"https://optimism.publicnode.com"},
		BlockExplorerURL: "https://optimistic.etherscan.io",
	}
	Arbitrum = entity.NetworkDefinition{
		ChainID:          42161,
		Name:             "Arbitrum One",
		Identifier:       "arbitrum",
		NativeSymbol:     "ETH",
		PrimaryRPCURL:    "https://arb1.arbitrum.io/rpc",
		FallbackRPCURLs:  []string{"https://arbitrum.llamarpc.com", "https://arbitrum.publicnode.com"},
		BlockExplorerURL: "https://arbiscan.io",
	}
	Base = entity.NetworkDefinition{
		ChainID:          8453,
		Name:             "Base Mainnet",
		Identifier:       "base",
		NativeSymbol:     "ETH",
		PrimaryRPCURL:    "https://1rpc.io/base",
		FallbackRPCURLs:  []string{"https://base.publicnode.com", "https://base.llamarpc.com"},
		BlockExplorerURL: "https://basescan.org",
	}
	Gnosis = entity.NetworkDefinition{
		ChainID:          100,
		Name:             "Gnosis Chain",
		Identifier:       "gnosis",
		NativeSymbol:     "XDAI",
		PrimaryRPCURL:    "https://rpc.gnosischain.com",
		BlockExplorerURL: "https://gnosisscan.io",
	}
)

var allKnownDefinitions = []entity.NetworkDefinition{
	Hardhat, Ethereum, Sepolia, Polygon, Mumbai, Amoy, Optimism, Arbitrum, Base, Gnosis,
}

// NewNetworkDefinitionProvider creates a provider over the known networks plus the configured one.
// The configured network replaces a known definition with the same chain id, so its RPC URLs
// and name win.
func NewNetworkDefinitionProvider(log port.Logger, configured entity.NetworkDefinition) *NetworkDefinitionProvider {
	p := &NetworkDefinitionProvider{
		logger:         log,
		allNetworkDefs: make(map[uint64]entity.NetworkDefinition, len(allKnownDefinitions)+1),
	}
	for _, def := range allKnownDefinitions {
		p.allNetworkDefs[def.ChainID] = def
	}

	if known, ok := p.allNetworkDefs[configured.ChainID]; ok {
		configured = mergeDefinitions(known, configured)
	} else {
		log.Warn("Configured network is not among the known definitions", "chain_id", configured.ChainID, "name", configured.Name)
		if configured.Identifier == "" {
			configured.Identifier = "chain-" + configured.ChainIDString()
		}
		if configured.Name == "" {
			configured.Name = "Chain " + configured.ChainIDString()
		}
	}
	p.allNetworkDefs[configured.ChainID] = configured
	p.active = configured

	log.Info("NetworkDefinitionProvider initialized", "active_network", configured.Name, "chain_id", configured.ChainID)
	return p
}

func mergeDefinitions(known, configured entity.NetworkDefinition) entity.NetworkDefinition {
	merged := known
	if configured.Name != "" {
		merged.Name = configured.Name
	}
	if configured.PrimaryRPCURL != "" {
		merged.PrimaryRPCURL = configured.PrimaryRPCURL
		merged.FallbackRPCURLs = configured.FallbackRPCURLs
	}
	if configured.BlockExplorerURL != "" {
		merged.BlockExplorerURL = configured.BlockExplorerURL
	}
	return merged
}

// Active returns the network the gateway is configured for.
func (p *NetworkDefinitionProvider) Active() entity.NetworkDefinition {
	return p.active
}

// GetAllNetworkDefinitions returns every known network ordered by chain id.
func (p *NetworkDefinitionProvider) GetAllNetworkDefinitions() []entity.NetworkDefinition {
	if p == nil {
		return []entity.NetworkDefinition{}
	}
	defs := make([]entity.NetworkDefinition, 0, len(p.allNetworkDefs))
	for _, def := range p.allNetworkDefs {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].ChainID < defs[j].ChainID })
	return defs
}

// GetNetworkDefinitionByName returns a network by its identifier or display name.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByName(nameOrIdentifier string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	for _, def := range p.allNetworkDefs {
		if strings.EqualFold(def.Identifier, nameOrIdentifier) || strings.EqualFold(def.Name, nameOrIdentifier) {
			return def, true
		}
	}
	return entity.NetworkDefinition{}, false
}

// GetNetworkDefinitionByChainID returns the network with the given decimal chain id.
func (p *NetworkDefinitionProvider) GetNetworkDefinitionByChainID(chainID string) (entity.NetworkDefinition, bool) {
	if p == nil {
		return entity.NetworkDefinition{}, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(chainID), 10, 64)
	if err != nil {
		return entity.NetworkDefinition{}, false
	}
	def, ok := p.allNetworkDefs[id]
	return def, ok
}
