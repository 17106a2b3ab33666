package sqlitesink

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSink(t *testing.T) *Sink {
	t.Helper()
	sink, err := New(filepath.Join(t.TempDir(), "promptbox.db"))
	require.NoError(t, err)
	return sink
}

func TestSink_RoundTrip(t *testing.T) {
	sink := newTestSink(t)

	_, ok, err := sink.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, sink.Set("k", "v1"))
	got, ok, err := sink.Get("k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v1", got)

	// Set on an existing key overwrites.
	require.NoError(t, sink.Set("k", "v2"))
	got, _, err = sink.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
}

func TestSink_Remove(t *testing.T) {
	sink := newTestSink(t)

	require.NoError(t, sink.Set("k", "v"))
	require.NoError(t, sink.Remove("k"))
	_, ok, err := sink.Get("k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, sink.Remove("k"))
}
