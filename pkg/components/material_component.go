package components

import "image/color"

// MaterialComponent 场景物体的颜色与透明度
type MaterialComponent struct {
	Color    color.RGBA // 不透明颜色（A 通道忽略）
	Opacity  float64    // 0.0 ~ 1.0
	Additive bool       // 是否使用加色混合
}

// RGBA 返回带透明度的颜色
func (m *MaterialComponent) RGBA() color.RGBA {
	opacity := m.Opacity
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c := m.Color
	c.A = uint8(opacity*0xff + 0.5)
	return c
}
