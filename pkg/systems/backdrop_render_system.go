package systems

import (
	"math"

	"github.com/decker502/resignation/internal/mesh"
	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/decker502/resignation/pkg/game"
)

// BackdropRenderSystem 把背景场景投影并绘制到 game.Surface
//
// 绘制顺序为实体创建顺序（点云、多面体、圆环）。
// 投影缓冲在帧之间复用，避免每帧分配。
type BackdropRenderSystem struct {
	entityManager *ecs.EntityManager

	points    []game.Point2
	segments  []game.Segment2
	projected []game.Point2
	visible   []bool
}

// NewBackdropRenderSystem 创建背景渲染系统
func NewBackdropRenderSystem(em *ecs.EntityManager) *BackdropRenderSystem {
	return &BackdropRenderSystem{
		entityManager: em,
	}
}

// Camera 返回场景中的相机组件，没有相机时返回 nil
func (s *BackdropRenderSystem) Camera() *components.CameraComponent {
	cameras := ecs.GetEntitiesWith1[*components.CameraComponent](s.entityManager)
	if len(cameras) == 0 {
		return nil
	}
	cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, cameras[0])
	return cam
}

// Draw 清空表面并从固定视点绘制全部场景物体
func (s *BackdropRenderSystem) Draw(surface game.Surface) {
	if surface == nil {
		return
	}
	surface.Clear()

	cam := s.Camera()
	if cam == nil {
		return
	}
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		return
	}

	entities := ecs.GetEntitiesWith2[*components.TransformComponent, *components.MaterialComponent](s.entityManager)
	for _, id := range entities {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		material, _ := ecs.GetComponent[*components.MaterialComponent](s.entityManager, id)

		if cloud, ok := ecs.GetComponent[*components.PointCloudComponent](s.entityManager, id); ok {
			s.drawPointCloud(surface, cam.Camera, transform.Transform, material, cloud, width, height)
		}
		if wire, ok := ecs.GetComponent[*components.WireframeComponent](s.entityManager, id); ok {
			s.drawWireframe(surface, cam.Camera, transform.Transform, material, wire, width, height)
		}
	}
}

func (s *BackdropRenderSystem) drawPointCloud(
	surface game.Surface,
	cam mesh.PerspectiveCamera,
	t mesh.Transform,
	material *components.MaterialComponent,
	cloud *components.PointCloudComponent,
	width, height int,
) {
	s.points = s.points[:0]
	for _, p := range cloud.Points {
		x, y, ok := cam.Project(t.Apply(p), width, height)
		if !ok || x < 0 || y < 0 || x > float64(width) || y > float64(height) {
			continue
		}
		s.points = append(s.points, game.Point2{X: float32(x), Y: float32(y)})
	}

	// 点大小按相机到原点的深度统一换算
	size := math.Max(cloud.MinPixelSize, cloud.Size*cam.PixelsPerUnit(cam.Distance, height))
	surface.DrawPoints(s.points, float32(size), material.RGBA(), material.Additive)
}

func (s *BackdropRenderSystem) drawWireframe(
	surface game.Surface,
	cam mesh.PerspectiveCamera,
	t mesh.Transform,
	material *components.MaterialComponent,
	wire *components.WireframeComponent,
	width, height int,
) {
	n := len(wire.Mesh.Vertices)
	if cap(s.projected) < n {
		s.projected = make([]game.Point2, n)
		s.visible = make([]bool, n)
	}
	s.projected = s.projected[:n]
	s.visible = s.visible[:n]

	for i, v := range wire.Mesh.Vertices {
		x, y, ok := cam.Project(t.Apply(v), width, height)
		s.projected[i] = game.Point2{X: float32(x), Y: float32(y)}
		s.visible[i] = ok
	}

	s.segments = s.segments[:0]
	for _, e := range wire.Mesh.Edges {
		if !s.visible[e[0]] || !s.visible[e[1]] {
			continue
		}
		s.segments = append(s.segments, game.Segment2{From: s.projected[e[0]], To: s.projected[e[1]]})
	}

	lineWidth := wire.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	surface.DrawLines(s.segments, float32(lineWidth), material.RGBA())
}
