package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asrcpq/mytableau/internal/config"
)

func TestDefaultHasNoStepLimit(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 0, cfg.MaxSteps)
	assert.True(t, cfg.Color)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".mytableau.yml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: 500\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.MaxSteps)
	assert.True(t, cfg.Color, "unspecified fields keep their default")
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
