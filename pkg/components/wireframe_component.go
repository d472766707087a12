package components

import "github.com/decker502/resignation/internal/mesh"

// WireframeComponent 线框几何（多面体、圆环）
type WireframeComponent struct {
	Mesh      mesh.Wireframe
	LineWidth float64 // 线宽（像素）
}
