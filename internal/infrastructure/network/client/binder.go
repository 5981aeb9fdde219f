package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
)

var errReadOnlyBinding = errors.New("binding has no signer")

// Binder creates go-ethereum bound contracts. Every call and transaction made through its
// bindings is bounded by callTimeout when it is positive.
type Binder struct {
	callTimeout time.Duration
}

// NewBinder creates a Binder.
func NewBinder(callTimeout time.Duration) *Binder {
	return &Binder{callTimeout: callTimeout}
}

// BindReader binds a read-only handle.
func (b *Binder) BindReader(descriptor entity.ContractDescriptor, reader port.ReadProvider) (port.ContractBinding, error) {
	if reader == nil {
		return nil, fmt.Errorf("no read provider for %s", descriptor.Label())
	}
	address, err := resolve(descriptor)
	if err != nil {
		return nil, err
	}
	return &boundBinding{
		contract: bind.NewBoundContract(address, *descriptor.ABI, reader, nil, nil),
		timeout:  b.callTimeout,
	}, nil
}

// BindSigner binds a handle that can both read and submit transactions.
func (b *Binder) BindSigner(descriptor entity.ContractDescriptor, signer port.SigningProvider) (port.ContractBinding, error) {
	if signer == nil {
		return nil, fmt.Errorf("no signing provider for %s", descriptor.Label())
	}
	address, err := resolve(descriptor)
	if err != nil {
		return nil, err
	}
	return &boundBinding{
		contract: bind.NewBoundContract(address, *descriptor.ABI, signer, signer, signer),
		signer:   signer,
		timeout:  b.callTimeout,
	}, nil
}

func resolve(descriptor entity.ContractDescriptor) (common.Address, error) {
	if descriptor.ABI == nil {
		return common.Address{}, fmt.Errorf("contract %s has no abi", descriptor.Label())
	}
	if !common.IsHexAddress(descriptor.Address) {
		return common.Address{}, fmt.Errorf("contract %s has invalid address %q", descriptor.Label(), descriptor.Address)
	}
	return common.HexToAddress(descriptor.Address), nil
}

type boundBinding struct {
	contract *bind.BoundContract
	signer   port.SigningProvider
	timeout  time.Duration
}

func (b *boundBinding) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, b.timeout)
}

func (b *boundBinding) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	var out []any
	if err := b.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *boundBinding) Transact(ctx context.Context, method string, args ...any) (*types.Transaction, error) {
	if b.signer == nil {
		return nil, errReadOnlyBinding
	}
	ctx, cancel := b.withTimeout(ctx)
	defer cancel()

	opts, err := b.signer.TransactOpts(ctx)
	if err != nil {
		return nil, err
	}
	return b.contract.Transact(opts, method, args...)
}
