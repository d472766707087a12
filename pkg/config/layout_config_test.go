package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentBounds(t *testing.T) {
	left, width := ContentBounds(1280)
	assert.Equal(t, ContentMaxWidth, width)
	assert.Equal(t, (1280-ContentMaxWidth)/2, left)

	left, width = ContentBounds(600)
	assert.Equal(t, 600-2*ContentMarginX, width)
	assert.Equal(t, ContentMarginX, left)

	_, width = ContentBounds(10)
	assert.Zero(t, width)
}
