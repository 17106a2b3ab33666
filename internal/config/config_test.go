package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.NotEmpty(t, cfg.Storage.Path)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.Equal(t, "name", cfg.Sort.Type)
	assert.Equal(t, "asc", cfg.Sort.Direction)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	level := "debug"
	backend := "sqlite"
	path := "/tmp/pb"
	cfg, err := New(&RuntimeOverrides{
		LogLevel:       &level,
		StorageBackend: &backend,
		StoragePath:    &path,
	})
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/pb", cfg.Storage.Path)
}

func TestNew_RejectsInvalidBackend(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	backend := "redis"
	_, err := New(&RuntimeOverrides{StorageBackend: &backend})
	assert.Error(t, err)
}
