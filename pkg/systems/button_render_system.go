package systems

import (
	"image/color"

	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有启用的按钮实体：边框、悬停填充、居中文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
	defaultFont   *text.GoTextFace
}

// NewButtonRenderSystem 创建按钮渲染系统
// defaultFont 用于没有指定字体的按钮
func NewButtonRenderSystem(em *ecs.EntityManager, defaultFont *text.GoTextFace) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
		defaultFont:   defaultFont,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	for _, entityID := range entities {
		s.DrawButton(screen, entityID)
	}
}

// DrawButton 渲染单个按钮实体
func (s *ButtonRenderSystem) DrawButton(screen *ebiten.Image, entityID ecs.EntityID) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
	if !ok || !button.Enabled {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)
	if !ok {
		return
	}

	x, y := float32(pos.X), float32(pos.Y)
	w, h := float32(button.Width), float32(button.Height)

	switch button.State {
	case components.UIHovered:
		vector.DrawFilledRect(screen, x, y, w, h, button.HoverColor, false)
	case components.UIClicked:
		pressed := button.HoverColor
		pressed.A = uint8(min(0xff, int(pressed.A)*2))
		vector.DrawFilledRect(screen, x, y, w, h, pressed, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 2, button.Color, false)

	s.drawButtonText(screen, button, pos.X, pos.Y)
}

// drawButtonText 渲染按钮文字（自动居中，带阴影效果）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent, x, y float64) {
	font := button.Font
	if font == nil {
		font = s.defaultFont
	}
	if button.Text == "" || font == nil {
		return
	}

	centerX := x + button.Width/2
	centerY := y + button.Height/2

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+2, centerY+2)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, button.Text, font, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(button.Color)
	text.Draw(screen, button.Text, font, op)
}
