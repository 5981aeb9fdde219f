package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
)

// BatchReader runs several independent reads against one contract concurrently.
type BatchReader struct {
	gateway               port.ContractGateway
	maxConcurrentRoutines int
	maxCalls              int
	logger                port.Logger
}

// NewBatchReader creates a BatchReader. maxCalls <= 0 means no limit on batch size.
func NewBatchReader(gateway port.ContractGateway, maxConcurrentRoutines, maxCalls int, logger port.Logger) *BatchReader {
	if maxConcurrentRoutines <= 0 {
		maxConcurrentRoutines = 1
	}
	return &BatchReader{
		gateway:               gateway,
		maxConcurrentRoutines: maxConcurrentRoutines,
		maxCalls:              maxCalls,
		logger:                logger,
	}
}

// ReadAll invokes every call and returns one item per call, in request order. A failed read
// is reported in its item and does not stop the others.
func (r *BatchReader) ReadAll(
	ctx context.Context,
	descriptor entity.ContractDescriptor,
	calls []entity.CallRequest,
	netCtx port.NetworkContext,
) ([]entity.BatchItem, error) {
	if r.maxCalls > 0 && len(calls) > r.maxCalls {
		return nil, fmt.Errorf("%w: batch of %d calls exceeds the limit of %d", entity.ErrInvalidArgument, len(calls), r.maxCalls)
	}
	for i, call := range calls {
		if call.Mutating {
			return nil, fmt.Errorf("%w: entry %d (%s)", entity.ErrBatchMutating, i, call.Operation)
		}
	}

	items := make([]entity.BatchItem, len(calls))

	// Per-item errors are kept in items, so the group context is never cancelled by a failed read.
	eg := new(errgroup.Group)
	eg.SetLimit(r.maxConcurrentRoutines)

	for i, call := range calls {
		eg.Go(func() error {
			result, err := r.gateway.Invoke(ctx, descriptor, call, netCtx)
			items[i] = entity.BatchItem{Operation: call.Operation, Values: result.Values, Err: err}
			return nil
		})
	}
	_ = eg.Wait()

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			failed++
		}
	}
	r.logger.Debug("Batch read complete", "contract", descriptor.Label(), "calls", len(calls), "failed", failed)
	return items, nil
}
