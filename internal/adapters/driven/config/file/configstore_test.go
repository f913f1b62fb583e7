package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set(KeyBackendBaseURL, "http://localhost:3001"))
	require.NoError(t, store.Set(KeyBackendTimeout, 30))
	require.NoError(t, store.Set(KeyAssistantTemperature, 0.7))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "http://localhost:3001", store.GetString(KeyBackendBaseURL))
	assert.Equal(t, 30, store.GetInt(KeyBackendTimeout))
	assert.InDelta(t, 0.7, store.GetFloat64(KeyAssistantTemperature), 1e-9)
	assert.True(t, store.GetBool("verbose"))
}

func TestConfigStore_GetMissingKey(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.Zero(t, store.GetFloat64("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", "not a number"))

	assert.Zero(t, store.GetInt("key"))
	assert.Zero(t, store.GetFloat64("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_PersistsAcrossLoads(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store.Set(KeyBackendBaseURL, "http://backend.test"))

	reopened, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "http://backend.test", reopened.GetString(KeyBackendBaseURL))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[backend]
base_url = "http://backend.test"
timeout_seconds = 45

[assistant]
model = "gpt-4o-mini"
temperature = 0.7
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "http://backend.test", store.GetString(KeyBackendBaseURL))
	assert.Equal(t, 45, store.GetInt(KeyBackendTimeout))
	assert.Equal(t, "gpt-4o-mini", store.GetString(KeyAssistantModel))
	assert.InDelta(t, 0.7, store.GetFloat64(KeyAssistantTemperature), 1e-9)
}

func TestConfigStore_LoadMissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Load())

	_, ok := store.Get("anything")
	assert.False(t, ok)
}
