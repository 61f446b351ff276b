package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-synth/store"
	"value-synth/warehouse"
)

func TestGenerateJSON(t *testing.T) {
	out, _, err := execute(t, "generate", "store.Person", "-n", "3", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	var people []store.Person
	require.NoError(t, json.Unmarshal([]byte(out), &people))
	require.Len(t, people, 3)

	for _, p := range people {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Address.City)
		assert.Empty(t, p.PasswordHash)
	}
	assert.NotEqual(t, people[0].ID, people[1].ID)
}

func TestGenerateIsReproducible(t *testing.T) {
	args := []string{"generate", "warehouse.Shipment", "--seed", "42", "--format", "yaml"}

	first, _, err := execute(t, args...)
	require.NoError(t, err)

	second, _, err := execute(t, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "carrier:")
}

func TestGenerateSingleValue(t *testing.T) {
	out, _, err := execute(t, "generate", "warehouse.Shipment", "--seed", "3", "--format", "json")
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Contains(t, raw, "carrier")
	assert.Contains(t, raw, "labels")
	assert.NotContains(t, raw, "Internal")

	var origin warehouse.Site
	require.NoError(t, json.Unmarshal(raw["origin"], &origin))
	require.NotNil(t, origin.Manager)
	assert.NotEmpty(t, origin.Manager.Name)
}

func TestGenerateRepeat(t *testing.T) {
	out, _, err := execute(t, "generate", "store.Address", "-n", "2", "--repeat", "--format", "json")
	require.NoError(t, err)

	var addrs []store.Address
	require.NoError(t, json.Unmarshal([]byte(out), &addrs))
	require.Len(t, addrs, 2)
	assert.Equal(t, addrs[0], addrs[1])
}

func TestGenerateWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synth.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\nalphabet: q\nstrings: {min_length: 2, max_length: 3}\n"), 0644))

	out, _, err := execute(t, "generate", "store.Address", "--config", path, "--format", "json")
	require.NoError(t, err)

	var addr store.Address
	require.NoError(t, json.Unmarshal([]byte(out), &addr))
	assert.Equal(t, "qq", addr.City)
}

func TestGenerateVerbose(t *testing.T) {
	_, errOut, err := execute(t, "generate", "store.Category", "--seed", "9", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "seed: 9")
}

func TestGenerateErrors(t *testing.T) {
	_, _, err := execute(t, "generate", "store.Nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "generate", "store.Person", "-n", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	_, _, err = execute(t, "generate", "store.Person", "--config", "/nonexistent/synth.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
