package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/decker502/resignation/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// initEmbeddedFromRepo 用仓库根目录初始化内置资源
func initEmbeddedFromRepo(t *testing.T) {
	t.Helper()
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
}

func TestLoadPresentationConfig_Embedded(t *testing.T) {
	initEmbeddedFromRepo(t)

	cfg, err := LoadPresentationConfig("")
	require.NoError(t, err)

	// 内置文件与默认值保持一致
	assert.Equal(t, DefaultPresentationConfig(), cfg)
	assert.Equal(t, 3*time.Second, cfg.Stages.AutoAdvance())
	assert.Equal(t, 5000, cfg.Backdrop.Particles.Count)
	assert.Equal(t, "#00ff00", cfg.Backdrop.Particles.Material.Color.String())
	assert.True(t, cfg.Backdrop.Particles.Material.Additive)
	assert.Equal(t, 1, cfg.Backdrop.Polyhedron.Detail)
	assert.Equal(t, 100, cfg.Backdrop.Torus.TubularSegments)
}

func TestLoadPresentationConfig_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presentation.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
window:
  width: 800
  height: 600
backdrop:
  seed: 42
  particles:
    count: 100
`), 0o644))

	cfg, err := LoadPresentationConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, uint64(42), cfg.Backdrop.Seed)
	assert.Equal(t, 100, cfg.Backdrop.Particles.Count)
	// 未写出的字段保持默认值
	assert.Equal(t, DefaultWindowTitle, cfg.Window.Title)
	assert.Equal(t, 3000, cfg.Stages.AutoAdvanceMs)
	assert.Equal(t, 15.0, cfg.Backdrop.Camera.Distance)
}

func TestLoadPresentationConfig_MissingFile(t *testing.T) {
	_, err := LoadPresentationConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParsePresentationConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "window: [", "failed to parse"},
		{"bad color", "backdrop:\n  torus:\n    material:\n      color: \"#zzzzzz\"\n", "invalid color"},
		{"zero width", "window:\n  width: 0\n", "window size"},
		{"zero delay", "stages:\n  autoAdvanceMs: 0\n", "autoAdvanceMs"},
		{"fov", "backdrop:\n  camera:\n    fov: 200\n", "fov"},
		{"detail", "backdrop:\n  polyhedron:\n    detail: 9\n", "detail"},
		{"segments", "backdrop:\n  torus:\n    radialSegments: 2\n", "segments"},
		{"opacity", "backdrop:\n  particles:\n    material:\n      opacity: 1.5\n", "opacity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePresentationConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestHexColor(t *testing.T) {
	c, err := ParseHexColor("#00FFff")
	require.NoError(t, err)
	assert.Equal(t, HexColor{R: 0, G: 0xff, B: 0xff, A: 0xff}, c)
	assert.Equal(t, "#00ffff", c.String())

	c, err = ParseHexColor("ff0000")
	require.NoError(t, err)
	assert.Equal(t, uint8(0xff), c.RGBA().R)

	for _, bad := range []string{"", "#fff", "#12345", "#gggggg", "#1234567"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}

	out, err := yaml.Marshal(MaterialConfig{Color: c, Opacity: 0.5})
	require.NoError(t, err)
	assert.Contains(t, string(out), "#ff0000")
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := DefaultPresentationConfig()
	cfg.Window.Width = -1
	cfg.Backdrop.Particles.Spread = 0
	cfg.Backdrop.Torus.Tube = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size")
	assert.Contains(t, err.Error(), "spread")
	assert.Contains(t, err.Error(), "torus radii")
}
