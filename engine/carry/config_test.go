package carry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 4, config.SubSteps)
	assert.Equal(t, 3, config.ResolveIterations)
	assert.Equal(t, float32(0.01), config.SkinFraction)
	assert.False(t, config.SnapToSurface)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig_OverridesKeepDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "carry.yaml")
	content := "sub_steps: 8\nsnap_to_surface: true\nsnap_tolerance: 0.1\n"
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	config, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, 8, config.SubSteps)
	assert.True(t, config.SnapToSurface)
	assert.Equal(t, float32(0.1), config.SnapTolerance)
	// untouched fields stay at their defaults
	assert.Equal(t, 3, config.ResolveIterations)
	assert.Equal(t, float32(0.01), config.SkinFraction)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "carry.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("sub_steps: 0\n"), 0644))

	_, err := LoadConfig(filename)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	config := DefaultConfig()
	config.SnapToSurface = true
	config.SnapTolerance = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.ResolveIterations = 0
	assert.Error(t, config.Validate())

	config = DefaultConfig()
	config.SkinFraction = -0.1
	assert.Error(t, config.Validate())
}

func TestConfig_Skin(t *testing.T) {
	config := DefaultConfig()
	assert.InDelta(t, 0.002, config.Skin(0.2), 1e-6)
	assert.Equal(t, float32(0), config.Skin(0))
}
