package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/logger"
)

// scriptedGateway answers by operation name and tracks concurrency.
type scriptedGateway struct {
	mu        sync.Mutex
	results   map[string][]any
	failures  map[string]error
	invoked   []string
	inFlight  atomic.Int32
	maxFlight atomic.Int32
}

func (g *scriptedGateway) Invoke(_ context.Context, _ entity.ContractDescriptor, req entity.CallRequest, _ port.NetworkContext) (entity.CallResult, error) {
	n := g.inFlight.Add(1)
	defer g.inFlight.Add(-1)
	for {
		prev := g.maxFlight.Load()
		if n <= prev || g.maxFlight.CompareAndSwap(prev, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	g.mu.Lock()
	g.invoked = append(g.invoked, req.Operation)
	g.mu.Unlock()

	if err := g.failures[req.Operation]; err != nil {
		return entity.CallResult{}, err
	}
	return entity.CallResult{Values: g.results[req.Operation]}, nil
}

func TestBatchReaderPreservesOrderAndItemErrors(t *testing.T) {
	boom := &entity.RPCError{Operation: "jurisdiction", Err: errors.New("boom")}
	gw := &scriptedGateway{
		results: map[string][]any{
			"name":  {"Case #1"},
			"stage": {uint8(1)},
		},
		failures: map[string]error{"jurisdiction": boom},
	}
	reader := NewBatchReader(gw, 2, 10, logger.NewNop())

	items, err := reader.ReadAll(context.Background(), descriptorFor("Case", caseAddress), []entity.CallRequest{
		{Operation: "stage"},
		{Operation: "jurisdiction"},
		{Operation: "name"},
	}, netCtx("1337"))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "stage", items[0].Operation)
	assert.Equal(t, []any{uint8(1)}, items[0].Values)
	assert.NoError(t, items[0].Err)

	assert.Equal(t, "jurisdiction", items[1].Operation)
	assert.ErrorIs(t, items[1].Err, boom)

	assert.Equal(t, "name", items[2].Operation)
	assert.Equal(t, []any{"Case #1"}, items[2].Values)
}

func TestBatchReaderRejectsMutatingEntries(t *testing.T) {
	gw := &scriptedGateway{}
	reader := NewBatchReader(gw, 4, 0, logger.NewNop())

	_, err := reader.ReadAll(context.Background(), descriptorFor("Case", caseAddress), []entity.CallRequest{
		{Operation: "stage"},
		{Operation: "stageFile", Mutating: true},
	}, netCtx("1337"))

	assert.ErrorIs(t, err, entity.ErrBatchMutating)
	assert.Empty(t, gw.invoked)
}

func TestBatchReaderLimits(t *testing.T) {
	gw := &scriptedGateway{}
	reader := NewBatchReader(gw, 2, 3, logger.NewNop())

	calls := make([]entity.CallRequest, 3)
	for i := range calls {
		calls[i] = entity.CallRequest{Operation: "stage"}
	}
	_, err := reader.ReadAll(context.Background(), descriptorFor("Case", caseAddress), calls, netCtx("1337"))
	require.NoError(t, err)
	assert.LessOrEqual(t, gw.maxFlight.Load(), int32(2))

	_, err = reader.ReadAll(context.Background(), descriptorFor("Case", caseAddress), append(calls, calls[0]), netCtx("1337"))
	assert.ErrorIs(t, err, entity.ErrInvalidArgument)
}
