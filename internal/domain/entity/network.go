package entity

import "strconv"

// NetworkDefinition holds the configuration for a specific blockchain network.
// This structure is defined at the domain level to be used across application and infrastructure layers.
type NetworkDefinition struct {
	ChainID          uint64   `json:"chainId" yaml:"chainId"`
	Name             string   `json:"name" yaml:"name"`
	Identifier       string   `json:"identifier" yaml:"identifier"` // short id, e.g. "hardhat", "polygon"
	NativeSymbol     string   `json:"nativeSymbol" yaml:"nativeSymbol"`
	PrimaryRPCURL    string   `json:"primaryRpcUrl,omitempty" yaml:"primaryRpcUrl"`
	FallbackRPCURLs  []string `json:"fallbackRpcUrls,omitempty" yaml:"fallbackRpcUrls"`
	BlockExplorerURL string   `json:"blockExplorerUrl,omitempty" yaml:"blockExplorerUrl,omitempty"`
}

// ChainIDString returns the chain id in the form nodes report it over eth_chainId after decoding.
func (d NetworkDefinition) ChainIDString() string {
	return strconv.FormatUint(d.ChainID, 10)
}

// NetworkStatus describes how the connected node relates to the expected network.
type NetworkStatus struct {
	ExpectedChainID string `json:"expectedChainId"`
	CurrentChainID  string `json:"currentChainId"`
	Match           bool   `json:"match"`
	NetworkName     string `json:"networkName,omitempty"`
	SignerAddress   string `json:"signerAddress,omitempty"`
}
