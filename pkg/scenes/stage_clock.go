package scenes

import (
	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/utils"
)

// StageClock 记录进入当前阶段以来经过的时间（秒）
// 用于条目的错开淡入和初始阶段的加载条
type StageClock struct {
	elapsed float64
}

// Reset 阶段切换时归零
func (c *StageClock) Reset() {
	c.elapsed = 0
}

// Tick 推进 dt 秒
func (c *StageClock) Tick(dt float64) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Elapsed 返回进入当前阶段以来的秒数
func (c *StageClock) Elapsed() float64 {
	return c.elapsed
}

// Alpha 返回延迟 delay 秒出现的元素当前的不透明度（0~1）
func (c *StageClock) Alpha(delay float64) float64 {
	return utils.EaseOutQuad(c.phase(delay, config.FadeInDuration))
}

// Grow 返回延迟 delay 秒开始、持续 duration 秒的增长动画进度（0~1）
func (c *StageClock) Grow(delay, duration float64) float64 {
	return utils.EaseOutCubic(c.phase(delay, duration))
}

func (c *StageClock) phase(delay, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return utils.Clamp01((c.elapsed - delay) / duration)
}

// Progress 返回 elapsed / total，限制在 [0, 1]
func (c *StageClock) Progress(total float64) float64 {
	if total <= 0 {
		return 1
	}
	return utils.Clamp01(c.elapsed / total)
}
