package embedded

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFS(t *testing.T, fsys fstest.MapFS) {
	t.Helper()
	prev := dataFS
	Init(fsys)
	t.Cleanup(func() { dataFS = prev })
}

func TestNotInitialized(t *testing.T) {
	prev := dataFS
	dataFS = nil
	t.Cleanup(func() { dataFS = prev })

	assert.False(t, IsInitialized())

	_, err := ReadFile("data/presentation.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)

	_, err = Glob("data/*.yaml")
	assert.ErrorIs(t, err, ErrNotInitialized)

	assert.False(t, Exists("data/presentation.yaml"))
}

func TestReadFile(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/presentation.yaml": {Data: []byte("window: {}\n")},
	})
	require.True(t, IsInitialized())

	data, err := ReadFile("data/presentation.yaml")
	require.NoError(t, err)
	assert.Equal(t, "window: {}\n", string(data))

	// "./" 前缀被移除
	data, err = ReadFile("./data/presentation.yaml")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = ReadFile("data/missing.yaml")
	assert.Error(t, err)
}

func TestUnknownPrefix(t *testing.T) {
	withFS(t, fstest.MapFS{
		"assets/font.ttf": {Data: []byte{0}},
	})

	_, err := ReadFile("assets/font.ttf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown resource path prefix")
	assert.False(t, Exists("assets/font.ttf"))
}

func TestExistsAndGlob(t *testing.T) {
	withFS(t, fstest.MapFS{
		"data/presentation.yaml": {Data: []byte("a")},
		"data/stages.yaml":       {Data: []byte("b")},
		"data/readme.txt":        {Data: []byte("c")},
	})

	assert.True(t, Exists("data/stages.yaml"))
	assert.False(t, Exists("data/other.yaml"))

	matches, err := Glob("data/*.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"data/presentation.yaml", "data/stages.yaml"}, matches)
}
