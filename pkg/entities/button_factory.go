package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextButtonSpec 文字按钮参数
type TextButtonSpec struct {
	Text       string
	Font       *text.GoTextFace // 为 nil 时使用渲染系统的默认字体
	Width      float64
	Height     float64
	Color      color.RGBA // 边框和文字颜色
	HoverColor color.RGBA // 悬停填充色
	Enabled    bool
}

// NewTextButton 创建文字按钮实体（描边矩形 + 居中文字）
//
// 参数：
//   - em: 实体管理器
//   - x, y: 按钮位置（屏幕坐标，左上角）
//   - spec: 按钮外观
//   - onClick: 点击回调函数
//
// 返回：
//   - 按钮实体ID
//   - 错误信息（尺寸非法时）
func NewTextButton(
	em *ecs.EntityManager,
	x, y float64,
	spec TextButtonSpec,
	onClick func(),
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return 0, fmt.Errorf("invalid button size %vx%v", spec.Width, spec.Height)
	}

	// 创建按钮实体
	entity := em.CreateEntity()

	// 添加位置组件
	ecs.AddComponent(em, entity, &components.PositionComponent{
		X: x,
		Y: y,
	})

	// 添加按钮组件
	state := components.UINormal
	if !spec.Enabled {
		state = components.UIDisabled
	}
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		Text:       spec.Text,
		Font:       spec.Font,
		Width:      spec.Width,
		Height:     spec.Height,
		Color:      spec.Color,
		HoverColor: spec.HoverColor,
		State:      state,
		Enabled:    spec.Enabled,
		OnClick:    onClick,
	})

	return entity, nil
}
