package game

import (
	"errors"
	"image/color"
)

// ErrSurfaceUnavailable 表示无法获取绘制表面（例如宿主环境没有渲染能力）
var ErrSurfaceUnavailable = errors.New("drawing surface unavailable")

// Point2 屏幕坐标下的点（像素）
type Point2 struct {
	X, Y float32
}

// Segment2 屏幕坐标下的线段（像素）
type Segment2 struct {
	From, To Point2
}

// Surface 背景渲染循环使用的 2D 绘制表面
//
// 所有绘制以批为单位提交，每帧先 Clear 再绘制。
type Surface interface {
	// Size 返回表面像素尺寸
	Size() (width, height int)
	// Resize 调整表面像素尺寸，原有内容不保留
	Resize(width, height int)
	// Clear 清空为全透明
	Clear()
	// DrawPoints 以边长 size 的方块绘制一批点，additive 为 true 时使用加色混合
	DrawPoints(points []Point2, size float32, clr color.RGBA, additive bool)
	// DrawLines 以宽度 width 绘制一批线段
	DrawLines(segments []Segment2, width float32, clr color.RGBA)
	// Dispose 释放表面持有的资源，之后不能再使用
	Dispose()
}

// SurfaceFactory 按视口尺寸获取绘制表面
type SurfaceFactory func(width, height int) (Surface, error)

// UnavailableSurfaceFactory 总是返回 ErrSurfaceUnavailable（用于 --no-backdrop）
func UnavailableSurfaceFactory(width, height int) (Surface, error) {
	return nil, ErrSurfaceUnavailable
}
