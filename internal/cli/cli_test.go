package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/embedded"
	"github.com/decker502/resignation/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initEmbedded(t *testing.T) {
	t.Helper()
	if !embedded.IsInitialized() {
		embedded.Init(os.DirFS("../.."))
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parseRoot(t *testing.T, args ...string) (*rootOptions, *settings, error) {
	t.Helper()
	opts := &rootOptions{}
	cmd := buildRootCmd(opts)
	require.NoError(t, cmd.ParseFlags(args))
	s, err := loadSettings(cmd, opts)
	return opts, s, err
}

func TestLoadSettings_Defaults(t *testing.T) {
	initEmbedded(t)

	_, s, err := parseRoot(t)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultPresentationConfig(), s.Presentation)
	assert.Len(t, s.Content.Stages, 7)
	assert.False(t, s.Verbose)
}

func TestLoadSettings_Precedence(t *testing.T) {
	initEmbedded(t)
	path := writeFile(t, "presentation.yaml", `
window:
  width: 1024
  height: 600
stages:
  autoAdvanceMs: 1000
backdrop:
  seed: 11
`)

	t.Run("file over defaults", func(t *testing.T) {
		_, s, err := parseRoot(t, "--config", path)
		require.NoError(t, err)
		assert.Equal(t, 1024, s.Presentation.Window.Width)
		assert.Equal(t, time.Second, s.Presentation.Stages.AutoAdvance())
		assert.Equal(t, uint64(11), s.Presentation.Backdrop.Seed)
		assert.Equal(t, 5000, s.Presentation.Backdrop.Particles.Count)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("RESIGN_WIDTH", "900")
		t.Setenv("RESIGN_VERBOSE", "true")
		_, s, err := parseRoot(t, "--config", path)
		require.NoError(t, err)
		assert.Equal(t, 900, s.Presentation.Window.Width)
		assert.Equal(t, 600, s.Presentation.Window.Height)
		assert.True(t, s.Verbose)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("RESIGN_WIDTH", "900")
		t.Setenv("RESIGN_SEED", "99")
		_, s, err := parseRoot(t, "--config", path, "--width", "640", "--auto-advance", "500ms", "--no-backdrop")
		require.NoError(t, err)
		assert.Equal(t, 640, s.Presentation.Window.Width)
		assert.Equal(t, 500, s.Presentation.Stages.AutoAdvanceMs)
		assert.False(t, s.Presentation.Backdrop.Enabled)
		assert.Equal(t, uint64(99), s.Presentation.Backdrop.Seed)
	})

	t.Run("unchanged flags keep lower layers", func(t *testing.T) {
		_, s, err := parseRoot(t, "--config", path, "--verbose")
		require.NoError(t, err)
		assert.Equal(t, 1024, s.Presentation.Window.Width, "flag default must not override the file")
		assert.True(t, s.Verbose)
	})
}

func TestLoadSettings_Errors(t *testing.T) {
	initEmbedded(t)

	t.Run("missing config file", func(t *testing.T) {
		_, _, err := parseRoot(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid flag value after merge", func(t *testing.T) {
		_, _, err := parseRoot(t, "--width", "0")
		assert.ErrorContains(t, err, "window size")
	})

	t.Run("invalid env value", func(t *testing.T) {
		t.Setenv("RESIGN_HEIGHT", "tall")
		_, _, err := parseRoot(t)
		assert.ErrorContains(t, err, "parse env")
	})

	t.Run("incomplete content", func(t *testing.T) {
		path := writeFile(t, "stages.yaml", "stages:\n  intro:\n    title: X\n    layout: splash\n")
		_, _, err := parseRoot(t, "--content", path)
		assert.ErrorContains(t, err, "missing content")
	})
}

func TestRunValidate(t *testing.T) {
	initEmbedded(t)

	t.Run("built-in files", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runValidate(&out, &rootOptions{}))
		assert.Contains(t, out.String(), "built-in data/presentation.yaml")
		assert.Contains(t, out.String(), "阶段数量: 7")
		assert.NotContains(t, out.String(), "❌")
	})

	t.Run("reports every broken file", func(t *testing.T) {
		badConfig := writeFile(t, "presentation.yaml", "window:\n  width: -1\n")
		badContent := writeFile(t, "stages.yaml", "stages: {}\n")

		var out bytes.Buffer
		err := runValidate(&out, &rootOptions{configPath: badConfig, contentPath: badContent})

		assert.ErrorIs(t, err, errValidationFailed)
		assert.Equal(t, 2, strings.Count(out.String(), "❌"))
	})
}

func TestPrintStages(t *testing.T) {
	initEmbedded(t)
	table, err := config.LoadContentTable("", game.StageNames())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printStages(&out, table))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Contains(t, lines[1], "intro")
	assert.Contains(t, lines[1], "initial")
	assert.Contains(t, lines[1], "3s")
	assert.Contains(t, lines[7], "final")
	assert.Contains(t, lines[7], "terminal")
}

func TestCommandTree(t *testing.T) {
	initEmbedded(t)

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"stages"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "compensation")

	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"validate", "stages"})
}
