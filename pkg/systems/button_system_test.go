package systems

import (
	"testing"

	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/decker502/resignation/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func newTestButton(em *ecs.EntityManager, x, y float64, enabled bool, onClick func()) *components.ButtonComponent {
	id := em.CreateEntity()
	button := &components.ButtonComponent{Width: 100, Height: 40, Enabled: enabled, OnClick: onClick}
	ecs.AddComponent(em, id, button)
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	return button
}

func TestButtonSystem_States(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	button := newTestButton(em, 10, 10, true, func() { clicks++ })
	s := NewButtonSystem(em)

	s.Update(utils.InputState{X: 500, Y: 500})
	assert.Equal(t, components.UINormal, button.State)

	s.Update(utils.InputState{X: 50, Y: 20})
	assert.Equal(t, components.UIHovered, button.State)

	s.Update(utils.InputState{X: 50, Y: 20, Pressed: true})
	assert.Equal(t, components.UIClicked, button.State)
	assert.Zero(t, clicks)

	s.Update(utils.InputState{X: 50, Y: 20, JustReleased: true})
	assert.Equal(t, components.UIHovered, button.State)
	assert.Equal(t, 1, clicks)
}

func TestButtonSystem_DisabledIgnoresClicks(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	button := newTestButton(em, 0, 0, false, func() { clicks++ })

	NewButtonSystem(em).Update(utils.InputState{X: 5, Y: 5, JustReleased: true})

	assert.Equal(t, components.UIDisabled, button.State)
	assert.Zero(t, clicks)
}

func TestButtonSystem_OneCallbackPerUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	var order []string
	newTestButton(em, 0, 0, true, func() { order = append(order, "first") })
	newTestButton(em, 0, 0, true, func() { order = append(order, "second") })

	NewButtonSystem(em).Update(utils.InputState{X: 5, Y: 5, JustReleased: true})

	assert.Equal(t, []string{"first"}, order)
}
