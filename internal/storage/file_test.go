package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSink_RoundTrip(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	require.NoError(t, err)

	_, ok, err := sink.Get(DataKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, sink.Set(DataKey, `{"folders":[],"prompts":[]}`))
	got, ok, err := sink.Get(DataKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"folders":[],"prompts":[]}`, got)

	require.NoError(t, sink.Set(DataKey, "v2"))
	got, _, err = sink.Get(DataKey)
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestFileSink_Remove(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, sink.Set(DataKey, "x"))
	require.NoError(t, sink.Remove(DataKey))
	_, ok, err := sink.Get(DataKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is fine.
	require.NoError(t, sink.Remove(DataKey))
}

func TestFileSink_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileSink(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileSink_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewFileSink(dir)
	require.NoError(t, err)
	require.NoError(t, sink.Set(DataKey, "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DataKey+".json", entries[0].Name())
}
