package service

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/utils"
)

// JurisdictionContract manages the rules of a jurisdiction.
type JurisdictionContract struct {
	gateway     port.ContractGateway
	descriptors port.DescriptorProvider
}

// NewJurisdictionContract creates a JurisdictionContract.
func NewJurisdictionContract(gateway port.ContractGateway, descriptors port.DescriptorProvider) *JurisdictionContract {
	return &JurisdictionContract{gateway: gateway, descriptors: descriptors}
}

// AddRule submits a new rule with its confirmation requirements.
func (c *JurisdictionContract) AddRule(ctx context.Context, netCtx port.NetworkContext, address string, rule entity.Rule, confirmation entity.Confirmation) (entity.CallResult, error) {
	return c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "ruleAdd", Args: []any{rule, confirmation}, Mutating: true})
}

// UpdateRule replaces the rule stored under id.
func (c *JurisdictionContract) UpdateRule(ctx context.Context, netCtx port.NetworkContext, address, id string, rule entity.Rule) (entity.CallResult, error) {
	ruleID, err := parseRuleID(id)
	if err != nil {
		return entity.CallResult{}, err
	}
	return c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "ruleUpdate", Args: []any{ruleID, rule}, Mutating: true})
}

// GetRule reads the rule stored under id.
func (c *JurisdictionContract) GetRule(ctx context.Context, netCtx port.NetworkContext, address, id string) (entity.Rule, error) {
	ruleID, err := parseRuleID(id)
	if err != nil {
		return entity.Rule{}, err
	}
	result, err := c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "ruleGet", Args: []any{ruleID}})
	if err != nil {
		return entity.Rule{}, err
	}
	if len(result.Values) != 1 {
		return entity.Rule{}, fmt.Errorf("ruleGet returned %d values", len(result.Values))
	}
	rule, ok := abi.ConvertType(result.Values[0], new(entity.Rule)).(*entity.Rule)
	if !ok {
		return entity.Rule{}, fmt.Errorf("ruleGet returned %T, expected a rule tuple", result.Values[0])
	}
	return *rule, nil
}

func (c *JurisdictionContract) invoke(ctx context.Context, netCtx port.NetworkContext, address string, request entity.CallRequest) (entity.CallResult, error) {
	descriptor, err := c.descriptors.Descriptor(entity.JurisdictionContractName, address)
	if err != nil {
		return entity.CallResult{}, err
	}
	return c.gateway.Invoke(ctx, descriptor, request, netCtx)
}

func parseRuleID(id string) (*big.Int, error) {
	v, err := utils.ParseUint256(id)
	if err != nil {
		return nil, fmt.Errorf("%w: rule id: %v", entity.ErrInvalidArgument, err)
	}
	return v, nil
}
