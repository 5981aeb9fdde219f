package port

import (
	"context"

	"github.com/ethereum/go-ethereum/core/types"

	"jurisdiction_gateway/internal/domain/entity"
)

// ContractBinding is a callable handle onto one deployed contract.
type ContractBinding interface {
	// Call performs a read and returns the decoded outputs.
	Call(ctx context.Context, method string, args ...any) ([]any, error)
	// Transact signs and submits a state-changing call; it does not wait for mining.
	Transact(ctx context.Context, method string, args ...any) (*types.Transaction, error)
}

// ContractBinder constructs bindings. Each call returns a new, independent binding.
type ContractBinder interface {
	BindReader(descriptor entity.ContractDescriptor, reader ReadProvider) (ContractBinding, error)
	BindSigner(descriptor entity.ContractDescriptor, signer SigningProvider) (ContractBinding, error)
}

// ContractGateway is the single choke point through which callers reach on-chain state.
type ContractGateway interface {
	Invoke(ctx context.Context, descriptor entity.ContractDescriptor, request entity.CallRequest, netCtx NetworkContext) (entity.CallResult, error)
}

// DescriptorProvider hands out descriptors for the contracts the service knows an ABI for.
type DescriptorProvider interface {
	Descriptor(contractName, address string) (entity.ContractDescriptor, error)
	ContractNames() []string
}
