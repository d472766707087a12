package scenes

import (
	"testing"

	"github.com/decker502/resignation/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestStageClock(t *testing.T) {
	var c StageClock
	assert.Zero(t, c.Elapsed())

	c.Tick(0.25)
	c.Tick(-1)
	assert.Equal(t, 0.25, c.Elapsed())

	// 延迟未到时不可见，淡入结束后完全不透明
	assert.Zero(t, c.Alpha(0.5))
	assert.Greater(t, c.Alpha(0), 0.0)
	assert.Less(t, c.Alpha(0), 1.0)
	c.Tick(config.FadeInDuration)
	assert.Equal(t, 1.0, c.Alpha(0))

	assert.InDelta(t, 0.25, c.Progress(3), 1e-9)
	assert.Equal(t, 1.0, c.Progress(0.1))
	assert.Equal(t, 1.0, c.Progress(0))

	c.Reset()
	assert.Zero(t, c.Elapsed())
}

func TestStageClock_Grow(t *testing.T) {
	var c StageClock
	assert.Zero(t, c.Grow(0.2, 1))

	c.Tick(0.7)
	assert.InDelta(t, 0.875, c.Grow(0.2, 1), 1e-9)
	assert.Equal(t, 1.0, c.Grow(0, 0.5))
	assert.Equal(t, 1.0, c.Grow(5, 0), "zero duration completes immediately")
}

func TestSeverityStyle(t *testing.T) {
	assert.Equal(t, colorRed, severityColor(config.SeverityError))
	assert.Equal(t, colorText, severityColor(config.SeverityNone))
	assert.Equal(t, "[!!]", severityPrefix(config.SeverityError))

	half := withAlpha(colorText, 0.5)
	assert.Equal(t, uint8(128), half.A)
	assert.Equal(t, uint8(0xff), half.G)
	assert.Equal(t, uint8(0), withAlpha(colorPanel, -1).A)
}
