package provider

import (
	"fmt"
	"sort"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/infrastructure/abiloader"
)

type descriptorProviderImpl struct {
	abis   map[string]abiloader.NamedABI
	logger port.Logger
}

// NewDescriptorProvider loads the embedded ABIs plus those found in abiDir (may be empty).
func NewDescriptorProvider(abiDir string, logger port.Logger) (port.DescriptorProvider, error) {
	logger.Debug("Loading contract interfaces", "directory", abiDir)
	abis, err := abiloader.NewABILoader(abiDir, logger.Info, logger.Warn).LoadAll()
	if err != nil {
		logger.Error("Failed to load contract interfaces", "directory", abiDir, "error", err)
		return nil, err
	}
	p := NewDescriptorProviderFromABIs(abis, logger)
	logger.Info("Contract interfaces loaded", "contracts", p.ContractNames())
	return p, nil
}

// NewDescriptorProviderFromABIs builds a provider over an already loaded set.
func NewDescriptorProviderFromABIs(abis map[string]abiloader.NamedABI, logger port.Logger) port.DescriptorProvider {
	return &descriptorProviderImpl{abis: abis, logger: logger}
}

// Descriptor returns the descriptor of the named contract deployed at address. The address is
// not checked here; the gateway rejects malformed ones.
func (p *descriptorProviderImpl) Descriptor(contractName, address string) (entity.ContractDescriptor, error) {
	named, ok := p.abis[abiloader.Key(contractName)]
	if !ok {
		return entity.ContractDescriptor{}, fmt.Errorf("%w: %q", entity.ErrUnknownContract, contractName)
	}
	return entity.ContractDescriptor{Name: named.Name, Address: address, ABI: named.ABI}, nil
}

// ContractNames lists the known contracts in alphabetical order.
func (p *descriptorProviderImpl) ContractNames() []string {
	names := make([]string, 0, len(p.abis))
	for _, named := range p.abis {
		names = append(names, named.Name)
	}
	sort.Strings(names)
	return names
}
