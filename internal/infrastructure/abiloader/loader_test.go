package abiloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedContainsContracts(t *testing.T) {
	all, err := Embedded()
	require.NoError(t, err)

	for _, name := range []string{CaseContract, JurisdictionContract, AvatarNFTContract} {
		named, ok := all[Key(name)]
		require.True(t, ok, name)
		assert.Equal(t, name, named.Name)
	}

	caseABI := MustEmbedded("case")
	for _, m := range []string{"post", "stageFile", "stageWaitForVerdict", "stageVerdict", "stage"} {
		assert.Contains(t, caseABI.Methods, m)
	}
	assert.False(t, caseABI.Methods["stageFile"].IsConstant())
	assert.True(t, caseABI.Methods["stage"].IsConstant())

	jurisdiction := MustEmbedded(JurisdictionContract)
	assert.Contains(t, jurisdiction.Methods, "ruleAdd")
	assert.Contains(t, jurisdiction.Methods, "ruleUpdate")
	assert.Contains(t, MustEmbedded(AvatarNFTContract).Methods, "repAdd")
}

func TestMustEmbeddedPanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { MustEmbedded("Escrow") })
}

func TestLoadAllMergesDirectory(t *testing.T) {
	dir := t.TempDir()
	escrow := `[{"type":"function","name":"release","stateMutability":"nonpayable","inputs":[],"outputs":[]}]`
	override := `[{"type":"function","name":"stageFile","stateMutability":"nonpayable","inputs":[],"outputs":[]}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Escrow.json"), []byte(escrow), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "case.json"), []byte(override), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.json"), []byte("[]"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	var warnings int
	loader := NewABILoader(dir, nil, func(string, ...any) { warnings++ })
	all, err := loader.LoadAll()
	require.NoError(t, err)

	require.Contains(t, all, "escrow")
	assert.Contains(t, all["escrow"].ABI.Methods, "release")

	require.Contains(t, all, "case")
	assert.Len(t, all["case"].ABI.Methods, 1)
	assert.Contains(t, all, "jurisdiction")
	assert.NotContains(t, all, "broken")
	assert.NotContains(t, all, "empty")
	assert.Equal(t, 2, warnings)

	embedded, err := Embedded()
	require.NoError(t, err)
	assert.Greater(t, len(embedded["case"].ABI.Methods), 1, "embedded set must not be mutated by overrides")
}

func TestLoadAllMissingDirectory(t *testing.T) {
	loader := NewABILoader(filepath.Join(t.TempDir(), "nope"), nil, nil)
	_, err := loader.LoadAll()
	require.Error(t, err)
}

func TestLoadAllWithoutDirectory(t *testing.T) {
	all, err := NewABILoader("", nil, nil).LoadAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
