package networkdefinition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/logger"
)

func TestConfiguredNetworkOverridesKnown(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.NewNop(), entity.NetworkDefinition{
		ChainID:       1337,
		PrimaryRPCURL: "http://node:8545",
	})

	active := p.Active()
	assert.Equal(t, "hardhat", active.Identifier)
	assert.Equal(t, "http://node:8545", active.PrimaryRPCURL)

	def, ok := p.GetNetworkDefinitionByChainID("1337")
	require.True(t, ok)
	assert.Equal(t, "http://node:8545", def.PrimaryRPCURL)

	mumbai, ok := p.GetNetworkDefinitionByChainID("80001")
	require.True(t, ok)
	assert.Equal(t, "mumbai", mumbai.Identifier)
}

func TestUnknownConfiguredNetworkIsAdded(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.NewNop(), entity.NetworkDefinition{ChainID: 424242})

	def, ok := p.GetNetworkDefinitionByName("chain-424242")
	require.True(t, ok)
	assert.Equal(t, uint64(424242), def.ChainID)
	assert.Equal(t, "Chain 424242", def.Name)
}

func TestLookups(t *testing.T) {
	p := NewNetworkDefinitionProvider(logger.NewNop(), Hardhat)

	_, ok := p.GetNetworkDefinitionByChainID("not-a-number")
	assert.False(t, ok)
	_, ok = p.GetNetworkDefinitionByChainID("999999999")
	assert.False(t, ok)

	def, ok := p.GetNetworkDefinitionByName("Polygon PoS")
	require.True(t, ok)
	assert.Equal(t, uint64(137), def.ChainID)

	all := p.GetAllNetworkDefinitions()
	require.Len(t, all, len(allKnownDefinitions))
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ChainID, all[i].ChainID)
	}
}
