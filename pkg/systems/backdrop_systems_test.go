package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/resignation/internal/mesh"
	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/decker502/resignation/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface 记录绘制调用
type fakeSurface struct {
	width, height int

	clears    int
	points    [][]game.Point2
	pointSize []float32
	lines     [][]game.Segment2
	lineWidth []float32
	colors    []color.RGBA
	additive  []bool
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }
func (s *fakeSurface) Resize(w, h int)  { s.width, s.height = w, h }
func (s *fakeSurface) Clear()           { s.clears++ }
func (s *fakeSurface) Dispose()         {}

func (s *fakeSurface) DrawPoints(points []game.Point2, size float32, clr color.RGBA, additive bool) {
	s.points = append(s.points, append([]game.Point2(nil), points...))
	s.pointSize = append(s.pointSize, size)
	s.colors = append(s.colors, clr)
	s.additive = append(s.additive, additive)
}

func (s *fakeSurface) DrawLines(segments []game.Segment2, width float32, clr color.RGBA) {
	s.lines = append(s.lines, append([]game.Segment2(nil), segments...))
	s.lineWidth = append(s.lineWidth, width)
	s.colors = append(s.colors, clr)
}

func newTestCamera(em *ecs.EntityManager) {
	id := em.CreateEntity()
	cam := mesh.PerspectiveCamera{FOV: 90, Near: 0.1, Far: 100, Distance: 10}
	cam.SetViewport(200, 100)
	ecs.AddComponent(em, id, &components.CameraComponent{Camera: cam})
}

func TestSpinSystem_AccumulatesPerFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{})
	ecs.AddComponent(em, id, &components.SpinComponent{Step: mesh.Vec3{X: 0.01, Y: 0.02}})

	// 没有变换的实体被忽略
	orphan := em.CreateEntity()
	ecs.AddComponent(em, orphan, &components.SpinComponent{Step: mesh.Vec3{X: 1}})

	s := NewSpinSystem(em)
	for range 10 {
		s.Update()
	}

	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	assert.InDelta(t, 0.1, tr.Transform.Rotation.X, 1e-12)
	assert.InDelta(t, 0.2, tr.Transform.Rotation.Y, 1e-12)
	assert.Zero(t, tr.Transform.Rotation.Z)
}

func TestPulseSystem_DependsOnElapsedOnly(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{})
	ecs.AddComponent(em, id, &components.PulseComponent{Base: 1, Amplitude: 0.1, AngularSpeed: 1})

	s := NewPulseSystem(em)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)

	s.Update(0)
	assert.InDelta(t, 1.0, tr.Transform.Scale, 1e-12)

	s.Update(math.Pi / 2)
	assert.InDelta(t, 1.1, tr.Transform.Scale, 1e-12)

	// 重复调用同一时间结果不变
	s.Update(math.Pi / 2)
	assert.InDelta(t, 1.1, tr.Transform.Scale, 1e-12)

	s.Update(3 * math.Pi / 2)
	assert.InDelta(t, 0.9, tr.Transform.Scale, 1e-12)
}

func TestBackdropRenderSystem_PointCloud(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestCamera(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{})
	ecs.AddComponent(em, id, &components.MaterialComponent{Color: color.RGBA{G: 0xff}, Opacity: 0.8, Additive: true})
	ecs.AddComponent(em, id, &components.PointCloudComponent{
		Points: []mesh.Vec3{
			{X: 0, Y: 0, Z: 0},   // 画面中心
			{X: 0, Y: 0, Z: 20},  // 相机后方
			{X: 500, Y: 0, Z: 0}, // 画面外
		},
		MinPixelSize: 2,
	})

	surface := &fakeSurface{width: 200, height: 100}
	NewBackdropRenderSystem(em).Draw(surface)

	assert.Equal(t, 1, surface.clears)
	require.Len(t, surface.points, 1)
	require.Len(t, surface.points[0], 1)
	assert.InDelta(t, 100, surface.points[0][0].X, 1e-4)
	assert.InDelta(t, 50, surface.points[0][0].Y, 1e-4)
	assert.Equal(t, float32(2), surface.pointSize[0])
	assert.True(t, surface.additive[0])
	assert.Equal(t, uint8(204), surface.colors[0].A)
}

func TestBackdropRenderSystem_Wireframe(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestCamera(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{})
	ecs.AddComponent(em, id, &components.MaterialComponent{Color: color.RGBA{R: 0xff}, Opacity: 0.3})
	ecs.AddComponent(em, id, &components.WireframeComponent{
		Mesh: mesh.Wireframe{
			Vertices: []mesh.Vec3{{X: -1}, {X: 1}, {Y: 1}, {Z: 50}},
			Edges:    []mesh.Edge{{0, 1}, {1, 2}, {2, 3}},
		},
	})

	surface := &fakeSurface{width: 200, height: 100}
	r := NewBackdropRenderSystem(em)
	r.Draw(surface)

	require.Len(t, surface.lines, 1)
	assert.Len(t, surface.lines[0], 2, "edge to a vertex behind the camera is culled")
	assert.Equal(t, float32(1), surface.lineWidth[0], "unset line width falls back to 1px")

	// 第二帧复用缓冲，结果一致
	r.Draw(surface)
	assert.Equal(t, 2, surface.clears)
	assert.Equal(t, surface.lines[0], surface.lines[1])
}

func TestBackdropRenderSystem_NoCameraOnlyClears(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{})
	ecs.AddComponent(em, id, &components.MaterialComponent{Opacity: 1})
	ecs.AddComponent(em, id, &components.PointCloudComponent{Points: []mesh.Vec3{{}}})

	surface := &fakeSurface{width: 200, height: 100}
	r := NewBackdropRenderSystem(em)
	r.Draw(surface)
	r.Draw(nil)

	assert.Nil(t, r.Camera())
	assert.Equal(t, 1, surface.clears)
	assert.Empty(t, surface.points)
}
