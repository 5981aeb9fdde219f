// Package bootstrap wires configuration into the gateway's collaborators. Both binaries
// build on it.
package bootstrap

import (
	"fmt"
	"strconv"
	"time"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/app/provider"
	"jurisdiction_gateway/internal/app/service"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/infrastructure/configloader"
	"jurisdiction_gateway/internal/infrastructure/network/client"
	networkdefinition "jurisdiction_gateway/internal/infrastructure/network/definition"
)

// Runtime holds everything needed to invoke contracts on the configured network.
type Runtime struct {
	Config      *configloader.Config
	Network     entity.NetworkDefinition
	Definitions *networkdefinition.NetworkDefinitionProvider
	Client      *client.EVMClient
	Signer      port.SigningProvider
	Networks    *client.NetworkContextProvider
	Descriptors port.DescriptorProvider
	Gateway     port.ContractGateway
}

// NetworkDefinitionFromConfig builds the definition of the configured network.
func NetworkDefinitionFromConfig(cfg *configloader.Config) (entity.NetworkDefinition, error) {
	chainID, err := strconv.ParseUint(cfg.Network.ExpectedChainID, 10, 64)
	if err != nil {
		return entity.NetworkDefinition{}, fmt.Errorf("network.expectedChainId must be a decimal chain id: %w", err)
	}
	return entity.NetworkDefinition{
		ChainID:         chainID,
		Name:            cfg.Network.Name,
		PrimaryRPCURL:   cfg.Network.PrimaryRPCURL,
		FallbackRPCURLs: cfg.Network.FallbackRPCURLs,
	}, nil
}

// NewRuntime dials the node, loads the signer key and contract interfaces and builds the
// instrumented gateway.
func NewRuntime(cfg *configloader.Config, log port.Logger) (*Runtime, error) {
	configured, err := NetworkDefinitionFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	definitions := networkdefinition.NewNetworkDefinitionProvider(log, configured)
	network := definitions.Active()

	evmClient, err := client.NewEVMClient(network,
		time.Duration(cfg.Network.ConnectionTimeoutSeconds)*time.Second,
		time.Duration(cfg.Network.RPCCallTimeoutSeconds)*time.Second)
	if err != nil {
		return nil, err
	}
	log.Info("Connected to RPC node", "network", network.Name, "chain_id", network.ChainID)

	signer, err := provider.NewSignerProvider(cfg.Signer.PrivateKeyFile, cfg.Signer.PrivateKeyEnv, log).
		GetSigner(evmClient, cfg.Network.ExpectedChainID)
	if err != nil {
		evmClient.Close()
		return nil, err
	}

	descriptors, err := provider.NewDescriptorProvider(cfg.Contracts.ABIDir, log)
	if err != nil {
		evmClient.Close()
		return nil, err
	}

	networks := client.NewNetworkContextProvider(evmClient, signer, cfg.Network.ExpectedChainID,
		time.Duration(cfg.Network.ChainIDCacheTTLSeconds)*time.Second, log)

	gateway := service.NewInstrumentedGateway(
		service.NewContractGateway(cfg.Network.ExpectedChainID, client.NewBinder(time.Duration(cfg.Network.RPCCallTimeoutSeconds)*time.Second)), log)

	return &Runtime{
		Config:      cfg,
		Network:     network,
		Definitions: definitions,
		Client:      evmClient,
		Signer:      signer,
		Networks:    networks,
		Descriptors: descriptors,
		Gateway:     gateway,
	}, nil
}

// Close releases the RPC connection.
func (r *Runtime) Close() {
	if r.Client != nil {
		r.Client.Close()
	}
}
