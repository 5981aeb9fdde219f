package provider

import (
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/infrastructure/keyloader"
	"jurisdiction_gateway/internal/infrastructure/network/client"
)

// SignerProviderImpl turns the configured relayer key into a signing provider.
type SignerProviderImpl struct {
	keyFilePath string
	keyEnv      string
	logger      port.Logger
}

// NewSignerProvider creates a provider reading the relayer key from keyFilePath or keyEnv.
func NewSignerProvider(keyFilePath, keyEnv string, logger port.Logger) *SignerProviderImpl {
	return &SignerProviderImpl{keyFilePath: keyFilePath, keyEnv: keyEnv, logger: logger}
}

// GetSigner returns a signing provider submitting through backend for chainID, or nil
// when no key is configured.
func (p *SignerProviderImpl) GetSigner(backend bind.ContractBackend, chainID string) (port.SigningProvider, error) {
	key, err := keyloader.NewKeyLoader(p.keyFilePath, p.keyEnv, p.logger.Debug).Load()
	if errors.Is(err, keyloader.ErrNoKey) {
		p.logger.Warn("No signer key configured, mutating calls will be refused")
		return nil, nil
	}
	if err != nil {
		p.logger.Error("Failed to load signer key", "error", err)
		return nil, err
	}

	signer, err := client.NewKeyedSigner(backend, key, chainID)
	if err != nil {
		return nil, err
	}
	p.logger.Info("Signer loaded", "address", signer.Address().Hex(), "chain_id", chainID)
	return signer, nil
}
