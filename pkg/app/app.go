// Package app 提供演示应用的核心包装器
//
// 该包把阶段控制器、背景渲染循环和演示场景组装成一个 ebiten.Game，
// 使其可以被桌面端（pkg/cli）和移动端（mobile）共用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/game"
	"github.com/decker502/resignation/pkg/modules"
	"github.com/decker502/resignation/pkg/scenes"
	"github.com/decker502/resignation/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxDeltaTime 单帧时间步长上限（秒），窗口拖动或休眠后避免时间跳变
const maxDeltaTime = 0.25

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Presentation 演示配置（窗口、阶段时序、背景）
	Presentation *config.PresentationConfig
	// Content 阶段内容表
	Content *config.ContentTable
	// SurfaceFactory 背景绘制表面工厂，为 nil 时使用 game.NewEbitenSurface
	SurfaceFactory game.SurfaceFactory
	// Clock 时钟函数，为 nil 时使用 time.Now
	Clock func() time.Time
}

// App 是演示应用的核心包装器，实现 ebiten.Game 接口
//
// 调度模型（单 goroutine，无锁）：
//   - Update: 运行到期的定时器（自动推进），处理输入，更新场景
//   - Draw: 运行帧回调（背景渲染循环），合成背景和场景
//   - Layout: 把窗口尺寸交给 Viewport，由它通知背景渲染循环
type App struct {
	scheduler    *game.Scheduler
	viewport     *game.Viewport
	controller   *game.StageController
	backdrop     *modules.BackdropModule
	sceneManager *game.SceneManager

	verbose         bool
	backdropStarted bool
	closed          bool
	lastUpdate      time.Time

	windowWidth, windowHeight int
	pendingWindowSizeReset    bool // 延迟设置窗口大小标志
	windowSizeResetCountdown  int  // 延迟帧数

	keyJustPressed func(keys ...ebiten.Key) bool
}

// NewApp 创建并初始化演示应用
//
// 背景渲染循环在第一次 Update 时启动（此时 Layout 已给出真实窗口尺寸）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Presentation == nil || cfg.Content == nil {
		return nil, errors.New("presentation config and stage content are required")
	}

	pc := cfg.Presentation
	if utils.IsMobile() {
		// 移动端填充率有限，背景粒子减半
		mobileCfg := *pc
		mobileCfg.Backdrop.Particles.Count /= 2
		pc = &mobileCfg
	}
	scheduler := game.NewScheduler(cfg.Clock)
	viewport := game.NewViewport(pc.Window.Width, pc.Window.Height)
	controller := game.NewStageController(scheduler, pc.Stages.AutoAdvance())

	fonts, err := scenes.NewFonts()
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	scene, err := scenes.NewPresentationScene(controller, cfg.Content, fonts, viewport)
	if err != nil {
		controller.Close()
		return nil, fmt.Errorf("演示场景创建失败: %w", err)
	}
	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)

	surfaceFactory := cfg.SurfaceFactory
	if !pc.Backdrop.Enabled {
		surfaceFactory = game.UnavailableSurfaceFactory
	} else if surfaceFactory == nil {
		surfaceFactory = game.NewEbitenSurface
	}
	backdrop := modules.NewBackdropModule(scheduler, viewport, surfaceFactory, pc.Backdrop)

	log.Printf("[App] Initialized on %s: %dx%d, auto-advance %v, backdrop enabled=%v",
		utils.PlatformName(), pc.Window.Width, pc.Window.Height, controller.AutoAdvanceDelay(), pc.Backdrop.Enabled)

	return &App{
		scheduler:      scheduler,
		viewport:       viewport,
		controller:     controller,
		backdrop:       backdrop,
		sceneManager:   sceneManager,
		verbose:        cfg.Verbose,
		windowWidth:    pc.Window.Width,
		windowHeight:   pc.Window.Height,
		keyJustPressed: utils.IsAnyKeyJustPressed,
	}, nil
}

// Update 更新演示逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.closed {
		return ebiten.Termination
	}

	// Esc 退出
	if a.keyJustPressed(ebiten.KeyEscape) {
		a.Close()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.windowWidth, a.windowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.windowWidth, a.windowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if a.keyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	deltaTime := a.tick()
	a.sceneManager.Update(deltaTime)
	return nil
}

// tick 启动背景（仅第一次）、运行到期定时器，返回本次的时间步长（秒）
func (a *App) tick() float64 {
	if !a.backdropStarted {
		a.backdropStarted = true
		width, height := a.viewport.Size()
		if err := a.backdrop.Setup(width, height); err != nil {
			log.Printf("[App] Backdrop disabled: %v", err)
		}
	}

	now := a.scheduler.Now()
	deltaTime := 1.0 / 60.0
	if !a.lastUpdate.IsZero() {
		deltaTime = min(maxDeltaTime, max(0, now.Sub(a.lastUpdate).Seconds()))
	}
	a.lastUpdate = now

	a.scheduler.RunTimers()
	return deltaTime
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

// Draw 绘制画面
// 每帧调用一次：先运行帧回调渲染背景，再叠加场景
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if a.closed {
		return
	}
	a.scheduler.RunFrames()
	a.backdrop.DrawTo(screen)
	a.sceneManager.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口尺寸，尺寸变化通过 Viewport 通知背景渲染循环
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewport.Resize(outsideWidth, outsideHeight)
	return a.viewport.Size()
}

// Close 停止演示：取消自动推进定时器、停止背景渲染循环、释放场景
// 可以重复调用
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.controller.Close()
	a.backdrop.Teardown()
	a.sceneManager.Close()
	a.scheduler.Close()
	log.Printf("[App] Closed")
}

// Controller 返回阶段控制器
func (a *App) Controller() *game.StageController {
	return a.controller
}

// Backdrop 返回背景渲染循环
func (a *App) Backdrop() *modules.BackdropModule {
	return a.backdrop
}

// Scheduler 返回事件循环
func (a *App) Scheduler() *game.Scheduler {
	return a.scheduler
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
