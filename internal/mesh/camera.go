package mesh

import "math"

// PerspectiveCamera 位于 (0, 0, Distance)、朝向原点的透视相机
type PerspectiveCamera struct {
	FOV      float64 // 垂直视场角（度）
	Aspect   float64 // 宽高比
	Near     float64
	Far      float64
	Distance float64 // 相机到原点的距离
}

// SetViewport 根据视口尺寸更新宽高比
func (c *PerspectiveCamera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float64(width) / float64(height)
}

// Depth 返回世界坐标点到相机平面的深度（位于相机前方时为正）
func (c PerspectiveCamera) Depth(v Vec3) float64 {
	return c.Distance - v.Z
}

// Project 把世界坐标点投影到 width x height 的像素坐标
// 点位于近/远裁剪面之外时 ok 为 false
func (c PerspectiveCamera) Project(v Vec3, width, height int) (x, y float64, ok bool) {
	depth := c.Depth(v)
	if depth <= c.Near || depth >= c.Far {
		return 0, 0, false
	}
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	ndcX := v.X / (depth * tanHalf * aspect)
	ndcY := v.Y / (depth * tanHalf)

	x = (ndcX + 1) / 2 * float64(width)
	y = (1 - ndcY) / 2 * float64(height)
	return x, y, true
}

// PixelsPerUnit 返回深度 depth 处一个世界单位对应的像素数
func (c PerspectiveCamera) PixelsPerUnit(depth float64, height int) float64 {
	if depth <= 0 {
		return 0
	}
	tanHalf := math.Tan(c.FOV * math.Pi / 360)
	return float64(height) / 2 / (depth * tanHalf)
}
