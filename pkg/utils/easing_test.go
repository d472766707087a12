package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(7))
}

func TestEasingEndpoints(t *testing.T) {
	for name, fn := range map[string]func(float64) float64{
		"EaseOutQuad":  EaseOutQuad,
		"EaseOutCubic": EaseOutCubic,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0.0, fn(0), 1e-12)
			assert.InDelta(t, 1.0, fn(1), 1e-12)
			// 缓出：前半段已经超过一半
			assert.Greater(t, fn(0.5), 0.5)
		})
	}
}

func TestEaseOutQuad(t *testing.T) {
	assert.InDelta(t, 0.75, EaseOutQuad(0.5), 1e-12)
	assert.InDelta(t, 0.36, EaseOutQuad(0.2), 1e-12)
}

func TestEaseOutCubic(t *testing.T) {
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-12)
	// 比二次方更快接近终点
	assert.Greater(t, EaseOutCubic(0.3), EaseOutQuad(0.3))
}
