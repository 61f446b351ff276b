package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"value-synth/store"
)

func TestFixturesRoundTrip(t *testing.T) {
	db := filepath.Join(t.TempDir(), "fixtures.db")

	generated, _, err := execute(t, "generate", "store.Product", "-n", "2", "--seed", "11", "--db", db, "--format", "json")
	require.NoError(t, err)

	var products []store.Product
	require.NoError(t, json.Unmarshal([]byte(generated), &products))

	out, _, err := execute(t, "fixtures", "store.Product", "--db", db, "--format", "json")
	require.NoError(t, err)

	var views []FixtureView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 2)

	for i, v := range views {
		assert.Equal(t, uint64(11), v.Seed)
		assert.Equal(t, i, v.Seq)

		var p store.Product
		require.NoError(t, json.Unmarshal(v.Payload, &p))
		assert.Equal(t, products[i].ID, p.ID)
		assert.Equal(t, products[i].Price.String(), p.Price.String())
	}

	text, _, err := execute(t, "fixtures", "store.Product", "--db", db, "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, text, "PAYLOAD")
	assert.Contains(t, text, products[1].ID.String())
}

func TestFixturesRequiresDatabase(t *testing.T) {
	_, _, err := execute(t, "fixtures", "store.Product")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}
