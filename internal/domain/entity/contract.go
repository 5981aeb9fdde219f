package entity

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ContractDescriptor identifies one deployed contract instance: where it lives and
// which interface it exposes.
type ContractDescriptor struct {
	Name    string
	Address string
	ABI     *abi.ABI
}

// HasOperation reports whether the descriptor's interface declares the named method.
func (d ContractDescriptor) HasOperation(name string) bool {
	if d.ABI == nil {
		return false
	}
	_, ok := d.ABI.Methods[name]
	return ok
}

// Label is used in logs and metrics; it falls back to the address when the contract is unnamed.
func (d ContractDescriptor) Label() string {
	if d.Name != "" {
		return d.Name
	}
	return d.Address
}

// Names of the contracts the service ships interfaces for.
const (
	CaseContractName         = "Case"
	JurisdictionContractName = "Jurisdiction"
	AvatarNFTContractName    = "AvatarNFT"
)
