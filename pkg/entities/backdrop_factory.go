package entities

import (
	"fmt"
	"math/rand/v2"

	"github.com/decker502/resignation/internal/mesh"
	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/ecs"
)

// BackdropEntities 背景场景中各实体的 ID
type BackdropEntities struct {
	Camera     ecs.EntityID
	Particles  ecs.EntityID
	Polyhedron ecs.EntityID
	Torus      ecs.EntityID
}

// NewBackdropScene 创建背景场景：相机、点云、线框多面体、线框圆环
//
// 参数:
//   - em: 实体管理器（必须未封存）
//   - cfg: 背景配置
//   - rng: 点云随机源
//   - width, height: 初始视口尺寸，用于相机宽高比
//
// 返回:
//   - BackdropEntities: 创建的实体 ID
//   - error: 几何参数非法时返回错误，此时不会创建任何实体
func NewBackdropScene(
	em *ecs.EntityManager,
	cfg config.BackdropConfig,
	rng *rand.Rand,
	width, height int,
) (BackdropEntities, error) {
	if em == nil {
		return BackdropEntities{}, fmt.Errorf("entity manager cannot be nil")
	}
	if rng == nil {
		return BackdropEntities{}, fmt.Errorf("random source cannot be nil")
	}

	// 先构造几何，失败时不留下半成品实体
	poly, err := mesh.Icosahedron(cfg.Polyhedron.Radius, cfg.Polyhedron.Detail)
	if err != nil {
		return BackdropEntities{}, fmt.Errorf("failed to build polyhedron: %w", err)
	}
	torus, err := mesh.Torus(cfg.Torus.Radius, cfg.Torus.Tube, cfg.Torus.RadialSegments, cfg.Torus.TubularSegments)
	if err != nil {
		return BackdropEntities{}, fmt.Errorf("failed to build torus: %w", err)
	}
	points := mesh.RandomPointCloud(rng, cfg.Particles.Count, cfg.Particles.Spread)

	var ids BackdropEntities

	camera := mesh.PerspectiveCamera{
		FOV:      cfg.Camera.FOV,
		Near:     cfg.Camera.Near,
		Far:      cfg.Camera.Far,
		Distance: cfg.Camera.Distance,
	}
	camera.SetViewport(width, height)
	ids.Camera = em.CreateEntity()
	ecs.AddComponent(em, ids.Camera, &components.CameraComponent{Camera: camera})

	// 点云：最慢的旋转，加色混合
	ids.Particles = em.CreateEntity()
	ecs.AddComponent(em, ids.Particles, &components.TransformComponent{})
	ecs.AddComponent(em, ids.Particles, &components.SpinComponent{Step: spinStep(cfg.Particles.Spin)})
	ecs.AddComponent(em, ids.Particles, newMaterial(cfg.Particles.Material))
	ecs.AddComponent(em, ids.Particles, &components.PointCloudComponent{
		Points:       points,
		Size:         cfg.Particles.Size,
		MinPixelSize: cfg.Particles.MinPixelSize,
	})

	// 多面体：旋转 + 缩放脉动
	ids.Polyhedron = em.CreateEntity()
	ecs.AddComponent(em, ids.Polyhedron, &components.TransformComponent{})
	ecs.AddComponent(em, ids.Polyhedron, &components.SpinComponent{Step: spinStep(cfg.Polyhedron.Spin)})
	ecs.AddComponent(em, ids.Polyhedron, &components.PulseComponent{
		Base:         1,
		Amplitude:    cfg.Polyhedron.Pulse.Amplitude,
		AngularSpeed: cfg.Polyhedron.Pulse.AngularSpeed,
	})
	ecs.AddComponent(em, ids.Polyhedron, newMaterial(cfg.Polyhedron.Material))
	ecs.AddComponent(em, ids.Polyhedron, &components.WireframeComponent{
		Mesh:      poly,
		LineWidth: cfg.Polyhedron.LineWidth,
	})

	ids.Torus = em.CreateEntity()
	ecs.AddComponent(em, ids.Torus, &components.TransformComponent{})
	ecs.AddComponent(em, ids.Torus, &components.SpinComponent{Step: spinStep(cfg.Torus.Spin)})
	ecs.AddComponent(em, ids.Torus, newMaterial(cfg.Torus.Material))
	ecs.AddComponent(em, ids.Torus, &components.WireframeComponent{
		Mesh:      torus,
		LineWidth: cfg.Torus.LineWidth,
	})

	return ids, nil
}

func spinStep(s config.SpinConfig) mesh.Vec3 {
	return mesh.Vec3{X: s.X, Y: s.Y, Z: s.Z}
}

func newMaterial(m config.MaterialConfig) *components.MaterialComponent {
	return &components.MaterialComponent{
		Color:    m.Color.RGBA(),
		Opacity:  m.Opacity,
		Additive: m.Additive,
	}
}
