package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jurisdiction_gateway/internal/domain/entity"
	"jurisdiction_gateway/internal/pkg/logger"
)

const hardhatKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestDescriptorProvider(t *testing.T) {
	p, err := NewDescriptorProvider("", logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, []string{"AvatarNFT", "Case", "Jurisdiction"}, p.ContractNames())

	desc, err := p.Descriptor("case", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	require.NoError(t, err)
	assert.Equal(t, "Case", desc.Name)
	assert.True(t, desc.HasOperation("stageFile"))

	_, err = p.Descriptor("Escrow", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.ErrorIs(t, err, entity.ErrUnknownContract)
}

func TestDescriptorProviderMissingDirectory(t *testing.T) {
	_, err := NewDescriptorProvider(filepath.Join(t.TempDir(), "missing"), logger.NewNop())
	assert.Error(t, err)
}

func TestSignerProviderWithoutKey(t *testing.T) {
	p := NewSignerProvider("", "JURISDICTION_GATEWAY_TEST_UNSET_KEY", logger.NewNop())
	signer, err := p.GetSigner(nil, "1337")
	require.NoError(t, err)
	assert.Nil(t, signer)
}

func TestSignerProviderFromFile(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "signer.key")
	require.NoError(t, os.WriteFile(keyFile, []byte("# relayer\n"+hardhatKey+"\n"), 0o600))

	signer, err := NewSignerProvider(keyFile, "", logger.NewNop()).GetSigner(nil, "1337")
	require.NoError(t, err)
	require.NotNil(t, signer)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), signer.Address())
}

func TestSignerProviderBadChainID(t *testing.T) {
	t.Setenv("JURISDICTION_GATEWAY_TEST_KEY", hardhatKey)
	_, err := NewSignerProvider("", "JURISDICTION_GATEWAY_TEST_KEY", logger.NewNop()).GetSigner(nil, "")
	assert.Error(t, err)
}
