package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"

	"jurisdiction_gateway/internal/domain/entity"
)

// EVMClient is a connection to one EVM node. It serves as both the read-only provider and the
// backend of the signing provider.
type EVMClient struct {
	*ethclient.Client
	netDef         entity.NetworkDefinition
	rpcCallTimeout time.Duration
}

// NewEVMClient dials the primary RPC URL of netDef, then each fallback, and returns the first
// connection that succeeds.
func NewEVMClient(netDef entity.NetworkDefinition, connectionTimeout time.Duration, rpcCallTimeout time.Duration) (*EVMClient, error) {
	rpcURLs := append([]string{netDef.PrimaryRPCURL}, netDef.FallbackRPCURLs...)
	var lastErr error

	for _, rpcURL := range rpcURLs {
		if rpcURL == "" {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)

		client, err := ethclient.DialContext(ctx, rpcURL)
		cancel()

		if err == nil {
			return &EVMClient{Client: client, netDef: netDef, rpcCallTimeout: rpcCallTimeout}, nil
		}
		lastErr = fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no RPC URL configured")
	}

	return nil, fmt.Errorf("all RPC connection attempts failed for network %s: %w", netDef.Name, lastErr)
}

// LiveChainID asks the node for its chain id and returns it as a decimal string.
func (c *EVMClient) LiveChainID(ctx context.Context) (string, error) {
	if c.rpcCallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.rpcCallTimeout)
		defer cancel()
	}
	id, err := c.Client.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("eth_chainId on %s failed: %w", c.netDef.Name, err)
	}
	return id.String(), nil
}

// Definition returns the network definition for this client.
func (c *EVMClient) Definition() entity.NetworkDefinition {
	return c.netDef
}
