package client

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"jurisdiction_gateway/internal/app/port"
	"jurisdiction_gateway/internal/pkg/metrics"
)

const chainIDCacheKey = "chain_id"

// ChainReader is a read-only provider that can also report the chain id of its node.
type ChainReader interface {
	port.ReadProvider
	LiveChainID(ctx context.Context) (string, error)
}

// NetworkContextProvider reports the live network together with the read-only and signing
// providers. The live chain id is cached for a short time; it never dispatches contract calls.
type NetworkContextProvider struct {
	reader          ChainReader
	signer          port.SigningProvider
	expectedChainID string
	chainIDCache    *cache.Cache
	logger          port.Logger
}

// NewNetworkContextProvider creates a provider. signer may be nil, in which case every
// NetworkContext it hands out is read-only.
func NewNetworkContextProvider(
	reader ChainReader,
	signer port.SigningProvider,
	expectedChainID string,
	cacheTTL time.Duration,
	logger port.Logger,
) *NetworkContextProvider {
	return &NetworkContextProvider{
		reader:          reader,
		signer:          signer,
		expectedChainID: expectedChainID,
		chainIDCache:    cache.New(cacheTTL, 2*cacheTTL),
		logger:          logger,
	}
}

// ExpectedChainID returns the configured chain id mutating calls are allowed on.
func (p *NetworkContextProvider) ExpectedChainID() string {
	return p.expectedChainID
}

// Current returns the active NetworkContext. A failed chain id lookup is not an error:
// the context carries an empty chain id, so reads still work and writes are refused.
func (p *NetworkContextProvider) Current(ctx context.Context) (port.NetworkContext, error) {
	netCtx := port.NetworkContext{
		ChainID: p.chainID(ctx),
		Reader:  p.reader,
	}
	if p.signer != nil {
		netCtx.Signer = p.signer
	}
	return netCtx, nil
}

// Invalidate drops the cached chain id, e.g. after the node was switched.
func (p *NetworkContextProvider) Invalidate() {
	p.chainIDCache.Delete(chainIDCacheKey)
}

func (p *NetworkContextProvider) chainID(ctx context.Context) string {
	if cached, found := p.chainIDCache.Get(chainIDCacheKey); found {
		metrics.ChainIDLookups.WithLabelValues("cache_hit").Inc()
		return cached.(string)
	}

	id, err := p.reader.LiveChainID(ctx)
	if err != nil {
		metrics.ChainIDLookups.WithLabelValues("error").Inc()
		p.logger.Warn("Failed to resolve current chain id", "error", err)
		return ""
	}
	metrics.ChainIDLookups.WithLabelValues("rpc").Inc()
	p.chainIDCache.SetDefault(chainIDCacheKey, id)

	if id != p.expectedChainID {
		p.logger.Warn("Connected node is on an unexpected network", "expected_chain_id", p.expectedChainID, "current_chain_id", id)
	}
	return id
}
