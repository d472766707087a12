package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：文字、尺寸、颜色、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含交互逻辑
//   - 文字自动居中显示
//   - 释放鼠标（或触摸）时触发点击回调
type ButtonComponent struct {
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体，为 nil 时渲染系统使用默认字体
	Font *text.GoTextFace

	// Width 按钮宽度（像素）
	Width float64
	// Height 按钮高度（像素）
	Height float64

	// Color 边框和文字颜色
	Color color.RGBA
	// HoverColor 悬停时的背景填充色
	HoverColor color.RGBA

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击、不绘制）
	Enabled bool

	// OnClick 点击回调函数
	OnClick func()
}
