package systems

import (
	"math"

	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
)

// PulseSystem 根据经过的墙钟时间设置物体的统一缩放
type PulseSystem struct {
	entityManager *ecs.EntityManager
}

// NewPulseSystem 创建缩放脉动系统
func NewPulseSystem(em *ecs.EntityManager) *PulseSystem {
	return &PulseSystem{
		entityManager: em,
	}
}

// Update 按 elapsed（秒）计算缩放
// 缩放只取决于时间，与调用频率无关
func (s *PulseSystem) Update(elapsed float64) {
	entities := ecs.GetEntitiesWith2[*components.PulseComponent, *components.TransformComponent](s.entityManager)

	for _, id := range entities {
		pulse, _ := ecs.GetComponent[*components.PulseComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		transform.Transform.Scale = pulse.Base + pulse.Amplitude*math.Sin(elapsed*pulse.AngularSpeed)
	}
}
