package scenes

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/decker502/resignation/pkg/entities"
	"github.com/decker502/resignation/pkg/game"
	"github.com/decker502/resignation/pkg/systems"
	"github.com/decker502/resignation/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	continueButtonText = "CONTINUE →"
	restartButtonText  = "RESTART SIMULATOR"
)

var (
	continueKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyArrowRight}
	restartKeys  = []ebiten.Key{ebiten.KeyR}
)

// StageSource 场景读取当前阶段并触发切换的接口（由 game.StageController 实现）
type StageSource interface {
	Current() game.Stage
	AutoAdvanceDelay() time.Duration
	OnChange(fn game.StageChangeFunc)
	Advance()
	Reset()
}

// SizeSource 当前视口尺寸（由 game.Viewport 实现）
type SizeSource interface {
	Size() (int, int)
}

// PresentationScene 演示场景
//
// 职责：
//   - 根据当前阶段从内容表选择排版并绘制
//   - "CONTINUE →" 按钮和 Space/Enter/→ 调用 Advance()
//   - "RESTART SIMULATOR" 按钮和 R 调用 Reset()
//   - 阶段切换时重置阶段时钟，条目按延迟依次淡入
//
// 场景只观察阶段控制器，不接触背景渲染循环。
type PresentationScene struct {
	stages   StageSource
	content  *config.ContentTable
	fonts    *Fonts
	viewport SizeSource

	// ECS 框架（按钮）
	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	continueButton     ecs.EntityID
	restartButton      ecs.EntityID

	clock StageClock

	// 输入来源，测试中替换
	readInput      func() utils.InputState
	keyJustPressed func(keys ...ebiten.Key) bool
}

// NewPresentationScene 创建演示场景
//
// 参数:
//   - stages: 阶段控制器
//   - content: 阶段内容表（应已通过 Validate）
//   - fonts: 字体
//   - viewport: 视口尺寸来源
func NewPresentationScene(
	stages StageSource,
	content *config.ContentTable,
	fonts *Fonts,
	viewport SizeSource,
) (*PresentationScene, error) {
	if stages == nil || content == nil || fonts == nil || viewport == nil {
		return nil, fmt.Errorf("presentation scene: stages, content, fonts and viewport are required")
	}

	em := ecs.NewEntityManager()
	s := &PresentationScene{
		stages:             stages,
		content:            content,
		fonts:              fonts,
		viewport:           viewport,
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em),
		buttonRenderSystem: systems.NewButtonRenderSystem(em, fonts.Body),
		readInput:          utils.GetInputState,
		keyJustPressed:     utils.IsAnyKeyJustPressed,
	}

	spec := entities.TextButtonSpec{
		Font:       fonts.Body,
		Width:      config.ButtonWidth,
		Height:     config.ButtonHeight,
		Color:      colorText,
		HoverColor: colorHoverFill,
	}
	var err error
	spec.Text = continueButtonText
	if s.continueButton, err = entities.NewTextButton(em, 0, 0, spec, s.onContinue); err != nil {
		return nil, fmt.Errorf("failed to create continue button: %w", err)
	}
	spec.Text = restartButtonText
	if s.restartButton, err = entities.NewTextButton(em, 0, 0, spec, s.onRestart); err != nil {
		return nil, fmt.Errorf("failed to create restart button: %w", err)
	}

	stages.OnChange(s.onStageChange)
	s.syncButtons(stages.Current())
	s.layoutButtons()

	log.Printf("[PresentationScene] Created at stage %s", stages.Current())
	return s, nil
}

// Update 推进阶段时钟并处理输入
func (s *PresentationScene) Update(deltaTime float64) {
	s.clock.Tick(deltaTime)
	s.layoutButtons()

	current := s.stages.Current()
	switch {
	case s.keyJustPressed(restartKeys...):
		s.onRestart()
	case canContinue(current) && s.keyJustPressed(continueKeys...):
		s.onContinue()
	default:
		s.buttonSystem.Update(s.readInput())
	}
}

// Draw 绘制当前阶段的内容和按钮
func (s *PresentationScene) Draw(screen *ebiten.Image) {
	current := s.stages.Current()
	content, ok := s.content.For(current)
	if !ok {
		content = config.StageContent{Title: current.String(), Layout: config.LayoutList}
	}

	width, height := s.viewport.Size()
	frame := layoutFrame{
		screen: screen,
		fonts:  s.fonts,
		clock:  &s.clock,
		width:  float64(width),
		height: float64(height),
	}
	frame.left, frame.contentWidth = config.ContentBounds(width)

	switch content.Layout {
	case config.LayoutSplash:
		frame.drawSplash(content, s.stages.AutoAdvanceDelay())
	case config.LayoutTerminal:
		frame.drawTerminal(content)
	case config.LayoutBars:
		frame.drawBars(content)
	case config.LayoutTable:
		frame.drawTable(content)
	case config.LayoutQuery:
		frame.drawQuery(content)
	case config.LayoutReport:
		frame.drawReport(content)
	default:
		frame.drawList(content)
	}

	s.buttonRenderSystem.Draw(screen)
}

// Dispose 释放按钮实体
func (s *PresentationScene) Dispose() {
	s.entityManager.Clear()
}

// StageElapsed 返回进入当前阶段以来的秒数
func (s *PresentationScene) StageElapsed() float64 {
	return s.clock.Elapsed()
}

func (s *PresentationScene) onContinue() {
	if !canContinue(s.stages.Current()) {
		return
	}
	s.stages.Advance()
}

func (s *PresentationScene) onRestart() {
	s.stages.Reset()
}

func (s *PresentationScene) onStageChange(from, to game.Stage) {
	s.clock.Reset()
	s.syncButtons(to)
}

// canContinue 初始阶段自动推进，终止阶段只能重新开始
func canContinue(stage game.Stage) bool {
	return !stage.IsInitial() && !stage.IsTerminal()
}

// syncButtons 根据阶段启用对应按钮
func (s *PresentationScene) syncButtons(stage game.Stage) {
	s.setButtonEnabled(s.continueButton, canContinue(stage))
	s.setButtonEnabled(s.restartButton, stage.IsTerminal())
}

func (s *PresentationScene) setButtonEnabled(id ecs.EntityID, enabled bool) {
	button, ok := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	if !ok {
		return
	}
	button.Enabled = enabled
	if enabled {
		button.State = components.UINormal
	} else {
		button.State = components.UIDisabled
	}
}

// layoutButtons 按钮水平居中，位于窗口底部
func (s *PresentationScene) layoutButtons() {
	width, height := s.viewport.Size()
	x := (float64(width) - config.ButtonWidth) / 2
	y := float64(height) - config.ButtonBottomMargin - config.ButtonHeight

	for _, id := range []ecs.EntityID{s.continueButton, s.restartButton} {
		if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
			pos.X, pos.Y = x, y
		}
	}
}
