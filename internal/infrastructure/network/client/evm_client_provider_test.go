package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisdiction_gateway/internal/pkg/logger"
	"jurisdiction_gateway/internal/pkg/metrics"
)

const hardhatKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

type stubChainReader struct {
	bind.ContractCaller
	ids     []string
	err     error
	lookups int
}

func (r *stubChainReader) LiveChainID(context.Context) (string, error) {
	r.lookups++
	if r.err != nil {
		return "", r.err
	}
	id := r.ids[0]
	if len(r.ids) > 1 {
		r.ids = r.ids[1:]
	}
	return id, nil
}

func TestCurrentCachesChainID(t *testing.T) {
	reader := &stubChainReader{ids: []string{"1337", "1"}}
	p := NewNetworkContextProvider(reader, nil, "1337", time.Minute, logger.NewNop())

	hitsBefore := testutil.ToFloat64(metrics.ChainIDLookups.WithLabelValues("cache_hit"))

	first, err := p.Current(context.Background())
	require.NoError(t, err)
	second, err := p.Current(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "1337", first.ChainID)
	assert.Equal(t, "1337", second.ChainID)
	assert.Equal(t, 1, reader.lookups)
	assert.Equal(t, hitsBefore+1, testutil.ToFloat64(metrics.ChainIDLookups.WithLabelValues("cache_hit")))
	assert.Nil(t, first.Signer)
	assert.Same(t, reader, first.Reader)

	p.Invalidate()
	third, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", third.ChainID)
	assert.Equal(t, 2, reader.lookups)
}

func TestCurrentWithFailedLookupHasEmptyChainID(t *testing.T) {
	reader := &stubChainReader{err: errors.New("connection refused")}
	p := NewNetworkContextProvider(reader, nil, "1337", time.Minute, logger.NewNop())

	netCtx, err := p.Current(context.Background())
	require.NoError(t, err)
	assert.Empty(t, netCtx.ChainID)
	assert.NotNil(t, netCtx.Reader)

	_, err = p.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reader.lookups, "failures are not cached")
	assert.Equal(t, "1337", p.ExpectedChainID())
}

func TestCurrentCarriesSigner(t *testing.T) {
	key, err := crypto.HexToECDSA(hardhatKey)
	require.NoError(t, err)
	signer, err := NewKeyedSigner(nil, key, "1337")
	require.NoError(t, err)

	p := NewNetworkContextProvider(&stubChainReader{ids: []string{"1337"}}, signer, "1337", time.Minute, logger.NewNop())
	netCtx, err := p.Current(context.Background())
	require.NoError(t, err)
	require.NotNil(t, netCtx.Signer)
	assert.Equal(t, signer.Address(), netCtx.Signer.Address())
}
