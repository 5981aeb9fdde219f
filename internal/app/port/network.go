package port

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"jurisdiction_gateway/internal/domain/entity"
)

// ReadProvider is a read-only handle onto a chain.
type ReadProvider interface {
	bind.ContractCaller
}

// SigningProvider can sign and submit transactions on behalf of one account.
type SigningProvider interface {
	bind.ContractBackend
	// TransactOpts returns fresh signing options bound to ctx.
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
	Address() common.Address
}

// NetworkContext is what the wallet/provider collaborator knows about the active network.
// It is passed explicitly into every gateway call.
type NetworkContext struct {
	ChainID string
	Reader  ReadProvider
	Signer  SigningProvider
}

// NetworkContextProvider supplies the current NetworkContext. It never dispatches contract calls.
type NetworkContextProvider interface {
	Current(ctx context.Context) (NetworkContext, error)
	ExpectedChainID() string
}

// NetworkDefinitionProvider resolves known networks.
type NetworkDefinitionProvider interface {
	// GetAllNetworkDefinitions returns all available network definitions as a slice.
	GetAllNetworkDefinitions() []entity.NetworkDefinition

	// GetNetworkDefinitionByChainID returns the network with the given decimal chain id.
	GetNetworkDefinitionByChainID(chainID string) (entity.NetworkDefinition, bool)

	// GetNetworkDefinitionByName returns a specific network definition by its name (or identifier).
	GetNetworkDefinitionByName(nameOrIdentifier string) (entity.NetworkDefinition, bool)
}
