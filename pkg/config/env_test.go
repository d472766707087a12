package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvOverridesFrom_Unset(t *testing.T) {
	o, err := ParseEnvOverridesFrom(map[string]string{"HOME": "/root"})
	require.NoError(t, err)
	assert.Equal(t, EnvOverrides{}, o)
	assert.False(t, o.VerboseEnabled())

	cfg := DefaultPresentationConfig()
	o.Apply(cfg)
	assert.Equal(t, DefaultPresentationConfig(), cfg)
}

func TestParseEnvOverridesFrom_Apply(t *testing.T) {
	o, err := ParseEnvOverridesFrom(map[string]string{
		"RESIGN_WIDTH":        "1024",
		"RESIGN_HEIGHT":       "768",
		"RESIGN_FULLSCREEN":   "true",
		"RESIGN_VERBOSE":      "1",
		"RESIGN_NO_BACKDROP":  "true",
		"RESIGN_AUTO_ADVANCE": "1500ms",
		"RESIGN_SEED":         "7",
		"RESIGN_PARTICLES":    "250",
		"WIDTH":               "1", // 没有前缀，忽略
	})
	require.NoError(t, err)
	assert.True(t, o.VerboseEnabled())

	cfg := DefaultPresentationConfig()
	o.Apply(cfg)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 768, cfg.Window.Height)
	assert.True(t, cfg.Window.Fullscreen)
	assert.False(t, cfg.Backdrop.Enabled)
	assert.Equal(t, 1500*time.Millisecond, cfg.Stages.AutoAdvance())
	assert.Equal(t, uint64(7), cfg.Backdrop.Seed)
	assert.Equal(t, 250, cfg.Backdrop.Particles.Count)
}

func TestParseEnvOverridesFrom_Invalid(t *testing.T) {
	_, err := ParseEnvOverridesFrom(map[string]string{"RESIGN_WIDTH": "wide"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
