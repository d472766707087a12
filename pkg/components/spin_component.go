package components

import "github.com/decker502/resignation/internal/mesh"

// SpinComponent 每帧固定的旋转增量（弧度/帧）
//
// 增量按帧而不是按时间累加：
// 点云最慢，两个线框更快。
type SpinComponent struct {
	Step mesh.Vec3
}
