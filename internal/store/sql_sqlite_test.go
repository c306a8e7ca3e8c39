package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocalDBFileIfNotExists_CreatesFileAndDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "console.db")

	require.NoError(t, createLocalDBFileIfNotExists(p))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestCreateLocalDBFileIfNotExists_KeepsExisting(t *testing.T) {
	p := filepath.Join(t.TempDir(), "console.db")
	require.NoError(t, os.WriteFile(p, []byte("data"), 0o600))

	require.NoError(t, createLocalDBFileIfNotExists(p))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}

func TestClientStorages_Close_Nil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}
