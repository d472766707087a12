package components

import "github.com/decker502/resignation/internal/mesh"

// PointCloudComponent 点云几何
// 构造后不再修改，只有 TransformComponent 随帧变化
type PointCloudComponent struct {
	Points []mesh.Vec3
	// Size 点的世界尺寸，按相机到原点的深度换算为像素
	Size float64
	// MinPixelSize 换算后的最小像素尺寸，避免远处的点消失
	MinPixelSize float64
}
