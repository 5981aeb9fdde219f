package client

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyedSigner signs transactions with a single private key for a fixed chain id.
type KeyedSigner struct {
	bind.ContractBackend
	key     *ecdsa.PrivateKey
	chainID *big.Int
	address common.Address
}

// NewKeyedSigner creates a signer that submits through backend. chainID is the decimal chain
// id transactions are signed for (EIP-155).
func NewKeyedSigner(backend bind.ContractBackend, key *ecdsa.PrivateKey, chainID string) (*KeyedSigner, error) {
	if key == nil {
		return nil, fmt.Errorf("signer key is nil")
	}
	id, ok := new(big.Int).SetString(chainID, 10)
	if !ok || id.Sign() <= 0 {
		return nil, fmt.Errorf("invalid signer chain id %q", chainID)
	}
	return &KeyedSigner{
		ContractBackend: backend,
		key:             key,
		chainID:         id,
		address:         crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// TransactOpts returns fresh signing options bound to ctx.
func (s *KeyedSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// Address returns the account transactions are sent from.
func (s *KeyedSigner) Address() common.Address {
	return s.address
}
