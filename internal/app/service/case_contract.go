package service

import (
	"context"
	"fmt"
	"strings"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
)

// CaseContract covers the operations of a case: posting, stage transitions, stage lookup.
type CaseContract struct {
	gateway     port.ContractGateway
	descriptors port.DescriptorProvider
}

// NewCaseContract creates a CaseContract.
func NewCaseContract(gateway port.ContractGateway, descriptors port.DescriptorProvider) *CaseContract {
	return &CaseContract{gateway: gateway, descriptors: descriptors}
}

// AddPost publishes a post under entityRole; uri points at the post metadata.
func (c *CaseContract) AddPost(ctx context.Context, netCtx port.NetworkContext, address, entityRole, uri string) (entity.CallResult, error) {
	if strings.TrimSpace(entityRole) == "" {
		return entity.CallResult{}, fmt.Errorf("%w: entity role is required", entity.ErrInvalidArgument)
	}
	if strings.TrimSpace(uri) == "" {
		return entity.CallResult{}, fmt.Errorf("%w: post uri is required", entity.ErrInvalidArgument)
	}
	return c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "post", Args: []any{entityRole, uri}, Mutating: true})
}

// SetStageOpen files the case.
func (c *CaseContract) SetStageOpen(ctx context.Context, netCtx port.NetworkContext, address string) (entity.CallResult, error) {
	return c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "stageFile", Mutating: true})
}

// SetStageVerdict moves the case to waiting for a verdict.
func (c *CaseContract) SetStageVerdict(ctx context.Context, netCtx port.NetworkContext, address string) (entity.CallResult, error) {
	return c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "stageWaitForVerdict", Mutating: true})
}

// SetStageClosed records the verdict and closes the case.
func (c *CaseContract) SetStageClosed(ctx context.Context, netCtx port.NetworkContext, address, verdictURI string) (entity.CallResult, error) {
	if strings.TrimSpace(verdictURI) == "" {
		return entity.CallResult{}, fmt.Errorf("%w: verdict uri is required", entity.ErrInvalidArgument)
	}
	return c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "stageVerdict", Args: []any{verdictURI}, Mutating: true})
}

// Stage reads the current stage of the case.
func (c *CaseContract) Stage(ctx context.Context, netCtx port.NetworkContext, address string) (entity.CaseStage, error) {
	result, err := c.invoke(ctx, netCtx, address, entity.CallRequest{Operation: "stage"})
	if err != nil {
		return 0, err
	}
	if len(result.Values) != 1 {
		return 0, fmt.Errorf("stage returned %d values", len(result.Values))
	}
	raw, ok := result.Values[0].(uint8)
	if !ok {
		return 0, fmt.Errorf("stage returned %T, expected uint8", result.Values[0])
	}
	return entity.CaseStage(raw), nil
}

func (c *CaseContract) invoke(ctx context.Context, netCtx port.NetworkContext, address string, request entity.CallRequest) (entity.CallResult, error) {
	descriptor, err := c.descriptors.Descriptor(entity.CaseContractName, address)
	if err != nil {
		return entity.CallResult{}, err
	}
	return c.gateway.Invoke(ctx, descriptor, request, netCtx)
}
