package systems

import (
	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/decker502/resignation/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//
// 输入由调用者传入（utils.GetInputState），便于在测试中构造。
type ButtonSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
	}
}

// Update 更新按钮交互状态
// 每帧最多触发一个按钮的回调（回调可能改变其他按钮的可用状态）
func (s *ButtonSystem) Update(input utils.InputState) {
	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)

	var clicked func()
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !s.isPointerInButton(float64(input.X), float64(input.Y), pos.X, pos.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case input.Pressed:
			button.State = components.UIClicked
		case input.JustReleased:
			// 释放瞬间触发回调，释放后恢复悬停状态
			if clicked == nil && button.OnClick != nil {
				clicked = button.OnClick
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	if clicked != nil {
		clicked()
	}
}

// isPointerInButton 检测指针是否在按钮范围内
func (s *ButtonSystem) isPointerInButton(x, y, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return x >= buttonX &&
		x <= buttonX+buttonWidth &&
		y >= buttonY &&
		y <= buttonY+buttonHeight
}
