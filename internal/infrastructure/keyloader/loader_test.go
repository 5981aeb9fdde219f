package keyloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known development key (hardhat account #0).
const devKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
const devAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signer.key")
	require.NoError(t, os.WriteFile(path, []byte("# relayer\n\n0x"+devKey+"\n"), 0o600))

	key, err := NewKeyLoader(path, "UNUSED_KEY_ENV", nil).Load()
	require.NoError(t, err)
	assert.Equal(t, devAddress, crypto.PubkeyToAddress(key.PublicKey).Hex())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TEST_SIGNER_KEY", devKey)

	var logged bool
	key, err := NewKeyLoader("", "TEST_SIGNER_KEY", func(string, ...any) { logged = true }).Load()
	require.NoError(t, err)
	assert.Equal(t, devAddress, crypto.PubkeyToAddress(key.PublicKey).Hex())
	assert.True(t, logged)
}

func TestLoadNoKey(t *testing.T) {
	t.Setenv("TEST_SIGNER_KEY", "")
	_, err := NewKeyLoader("", "TEST_SIGNER_KEY", nil).Load()
	require.ErrorIs(t, err, ErrNoKey)
}

func TestLoadInvalidKey(t *testing.T) {
	t.Setenv("TEST_SIGNER_KEY", "not-a-key")
	_, err := NewKeyLoader("", "TEST_SIGNER_KEY", nil).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoKey)

	_, err = NewKeyLoader(filepath.Join(t.TempDir(), "missing"), "", nil).Load()
	require.Error(t, err)
}
