package systems

import (
	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
)

// SpinSystem 每帧按固定增量旋转场景物体
type SpinSystem struct {
	entityManager *ecs.EntityManager
}

// NewSpinSystem 创建旋转系统
func NewSpinSystem(em *ecs.EntityManager) *SpinSystem {
	return &SpinSystem{
		entityManager: em,
	}
}

// Update 推进一帧：rotation += step
func (s *SpinSystem) Update() {
	entities := ecs.GetEntitiesWith2[*components.SpinComponent, *components.TransformComponent](s.entityManager)

	for _, id := range entities {
		spin, _ := ecs.GetComponent[*components.SpinComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		transform.Transform.Rotation = transform.Transform.Rotation.Add(spin.Step)
	}
}
