package components

import "github.com/decker502/resignation/internal/mesh"

// CameraComponent 背景场景的固定视点
// 只有宽高比会随视口尺寸变化，位置和视场角在构造后不变
type CameraComponent struct {
	Camera mesh.PerspectiveCamera
}
