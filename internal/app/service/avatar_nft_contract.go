package service

import (
	"context"
	"fmt"
	"math/big"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/utils"
)

// AvatarNFTContract scores avatar (profile) reputation. There is one deployment per network,
// so its address comes from configuration.
type AvatarNFTContract struct {
	gateway     port.ContractGateway
	descriptors port.DescriptorProvider
	address     string
}

// NewAvatarNFTContract creates an AvatarNFTContract for the contract at address.
func NewAvatarNFTContract(gateway port.ContractGateway, descriptors port.DescriptorProvider, address string) *AvatarNFTContract {
	return &AvatarNFTContract{gateway: gateway, descriptors: descriptors, address: address}
}

// Address returns the configured contract address.
func (c *AvatarNFTContract) Address() string {
	return c.address
}

// AddReputation adds amount to the token's score in domain. A zero amount means the default of one.
func (c *AvatarNFTContract) AddReputation(
	ctx context.Context,
	netCtx port.NetworkContext,
	tokenID, domain string,
	rating entity.ReputationRating,
	amount uint8,
) (entity.CallResult, error) {
	id, repDomain, err := reputationArgs(tokenID, domain, rating)
	if err != nil {
		return entity.CallResult{}, err
	}
	if amount == 0 {
		amount = entity.DefaultReputationAmount
	}
	return c.invoke(ctx, netCtx, entity.CallRequest{
		Operation: "repAdd",
		Args:      []any{id, string(repDomain), uint8(rating), amount},
		Mutating:  true,
	})
}

// Reputation reads the token's score in domain for the given rating.
func (c *AvatarNFTContract) Reputation(
	ctx context.Context,
	netCtx port.NetworkContext,
	tokenID, domain string,
	rating entity.ReputationRating,
) (*big.Int, error) {
	id, repDomain, err := reputationArgs(tokenID, domain, rating)
	if err != nil {
		return nil, err
	}
	result, err := c.invoke(ctx, netCtx, entity.CallRequest{
		Operation: "getRepForDomain",
		Args:      []any{id, string(repDomain), uint8(rating)},
	})
	if err != nil {
		return nil, err
	}
	if len(result.Values) != 1 {
		return nil, fmt.Errorf("getRepForDomain returned %d values", len(result.Values))
	}
	score, ok := result.Values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("getRepForDomain returned %T, expected *big.Int", result.Values[0])
	}
	return score, nil
}

func (c *AvatarNFTContract) invoke(ctx context.Context, netCtx port.NetworkContext, request entity.CallRequest) (entity.CallResult, error) {
	descriptor, err := c.descriptors.Descriptor(entity.AvatarNFTContractName, c.address)
	if err != nil {
		return entity.CallResult{}, err
	}
	return c.gateway.Invoke(ctx, descriptor, request, netCtx)
}

func reputationArgs(tokenID, domain string, rating entity.ReputationRating) (*big.Int, entity.ReputationDomain, error) {
	id, err := utils.ParseUint256(tokenID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: token id: %v", entity.ErrInvalidArgument, err)
	}
	repDomain, ok := entity.ParseReputationDomain(domain)
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown reputation domain %q", entity.ErrInvalidArgument, domain)
	}
	if !rating.Valid() {
		return nil, "", fmt.Errorf("%w: rating must be 0 (negative) or 1 (positive), got %d", entity.ErrInvalidArgument, rating)
	}
	return id, repDomain, nil
}
