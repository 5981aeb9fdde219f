package service

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
)

// ContractGatewayImpl implements port.ContractGateway. It holds only immutable configuration,
// so one instance can serve concurrent invocations.
type ContractGatewayImpl struct {
	expectedChainID string
	binder          port.ContractBinder
}

// NewContractGateway creates a gateway that allows mutating calls only on expectedChainID.
func NewContractGateway(expectedChainID string, binder port.ContractBinder) *ContractGatewayImpl {
	return &ContractGatewayImpl{
		expectedChainID: expectedChainID,
		binder:          binder,
	}
}

// ExpectedChainID returns the chain id mutating calls are allowed on.
func (g *ContractGatewayImpl) ExpectedChainID() string {
	return g.expectedChainID
}

// Invoke performs one contract operation. Mutating calls return the submitted, unconfirmed
// transaction; reads return the decoded values. Nothing is retried or cached.
func (g *ContractGatewayImpl) Invoke(
	ctx context.Context,
	descriptor entity.ContractDescriptor,
	request entity.CallRequest,
	netCtx port.NetworkContext,
) (entity.CallResult, error) {
	// Chain ids are compared verbatim; an unknown current chain id never matches.
	if request.Mutating && netCtx.ChainID != g.expectedChainID {
		return entity.CallResult{}, &entity.WrongNetworkError{Expected: g.expectedChainID, Actual: netCtx.ChainID}
	}

	if err := validateDescriptor(descriptor); err != nil {
		return entity.CallResult{}, err
	}
	if !descriptor.HasOperation(request.Operation) {
		return entity.CallResult{}, fmt.Errorf("%w: %s has no operation %q", entity.ErrUnknownOperation, descriptor.Label(), request.Operation)
	}

	if request.Mutating {
		if netCtx.Signer == nil {
			return entity.CallResult{}, fmt.Errorf("%w: cannot send %s.%s", entity.ErrSignerUnavailable, descriptor.Label(), request.Operation)
		}
		binding, err := g.binder.BindSigner(descriptor, netCtx.Signer)
		if err != nil {
			return entity.CallResult{}, fmt.Errorf("%w: %v", entity.ErrInvalidDescriptor, err)
		}
		tx, err := binding.Transact(ctx, request.Operation, request.Args...)
		if err != nil {
			return entity.CallResult{}, &entity.RPCError{Operation: request.Operation, Err: err}
		}
		return entity.CallResult{Tx: tx}, nil
	}

	binding, err := g.binder.BindReader(descriptor, netCtx.Reader)
	if err != nil {
		return entity.CallResult{}, fmt.Errorf("%w: %v", entity.ErrInvalidDescriptor, err)
	}
	values, err := binding.Call(ctx, request.Operation, request.Args...)
	if err != nil {
		return entity.CallResult{}, &entity.RPCError{Operation: request.Operation, Err: err}
	}
	return entity.CallResult{Values: values}, nil
}

func validateDescriptor(descriptor entity.ContractDescriptor) error {
	switch {
	case descriptor.Address == "":
		return fmt.Errorf("%w: %s has no address", entity.ErrInvalidDescriptor, descriptor.Label())
	case !common.IsHexAddress(descriptor.Address):
		return fmt.Errorf("%w: %q is not an address", entity.ErrInvalidDescriptor, descriptor.Address)
	case descriptor.ABI == nil || len(descriptor.ABI.Methods) == 0:
		return fmt.Errorf("%w: %s has no interface", entity.ErrInvalidDescriptor, descriptor.Label())
	}
	return nil
}
