package service

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/infrastructure/abiloader"
)

const (
	caseAddress         = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	jurisdictionAddress = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	avatarAddress       = "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"
)

type recordedCall struct {
	Method   string
	Args     []any
	Mutating bool
}

// fakeBinder records every dispatched call. Bindings share the recorder so tests can
// count calls across invocations.
type fakeBinder struct {
	mu          sync.Mutex
	calls       []recordedCall
	readerBinds int
	signerBinds int
	values      map[string][]any
	callErr     error
	bindErr     error
}

func newFakeBinder() *fakeBinder {
	return &fakeBinder{values: map[string][]any{}}
}

func (b *fakeBinder) BindReader(entity.ContractDescriptor, port.ReadProvider) (port.ContractBinding, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bindErr != nil {
		return nil, b.bindErr
	}
	b.readerBinds++
	return &fakeBinding{binder: b}, nil
}

func (b *fakeBinder) BindSigner(entity.ContractDescriptor, port.SigningProvider) (port.ContractBinding, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bindErr != nil {
		return nil, b.bindErr
	}
	b.signerBinds++
	return &fakeBinding{binder: b}, nil
}

func (b *fakeBinder) recorded() []recordedCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]recordedCall(nil), b.calls...)
}

type fakeBinding struct {
	binder *fakeBinder
}

func (f *fakeBinding) Call(_ context.Context, method string, args ...any) ([]any, error) {
	f.binder.mu.Lock()
	defer f.binder.mu.Unlock()
	f.binder.calls = append(f.binder.calls, recordedCall{Method: method, Args: args})
	if f.binder.callErr != nil {
		return nil, f.binder.callErr
	}
	return f.binder.values[method], nil
}

func (f *fakeBinding) Transact(_ context.Context, method string, args ...any) (*types.Transaction, error) {
	f.binder.mu.Lock()
	defer f.binder.mu.Unlock()
	f.binder.calls = append(f.binder.calls, recordedCall{Method: method, Args: args, Mutating: true})
	if f.binder.callErr != nil {
		return nil, f.binder.callErr
	}
	return types.NewTx(&types.LegacyTx{Nonce: uint64(len(f.binder.calls)), GasPrice: big.NewInt(1), Gas: 21000}), nil
}

// fakeSigner only needs to be non-nil; the fake binder never uses it.
type fakeSigner struct {
	bind.ContractBackend
}

func (fakeSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{Context: ctx}, nil
}

func (fakeSigner) Address() common.Address {
	return common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
}

type fakeReader struct {
	bind.ContractCaller
}

func netCtx(chainID string) port.NetworkContext {
	return port.NetworkContext{ChainID: chainID, Reader: fakeReader{}, Signer: fakeSigner{}}
}

func descriptorFor(name, address string) entity.ContractDescriptor {
	return entity.ContractDescriptor{Name: name, Address: address, ABI: abiloader.MustEmbedded(name)}
}

type staticDescriptors struct{}

func (staticDescriptors) Descriptor(contractName, address string) (entity.ContractDescriptor, error) {
	switch contractName {
	case entity.CaseContractName, entity.JurisdictionContractName, entity.AvatarNFTContractName:
		return descriptorFor(contractName, address), nil
	}
	return entity.ContractDescriptor{}, entity.ErrUnknownContract
}

func (staticDescriptors) ContractNames() []string {
	return []string{entity.AvatarNFTContractName, entity.CaseContractName, entity.JurisdictionContractName}
}
