package components

import "github.com/decker502/resignation/internal/mesh"

// TransformComponent 场景物体的旋转与统一缩放
// 由 SpinSystem、PulseSystem 每帧原地修改，渲染系统只读取
type TransformComponent struct {
	Transform mesh.Transform
}
