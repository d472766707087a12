package modules

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/decker502/resignation/internal/mesh"
	"github.com/decker502/resignation/pkg/components"
	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/ecs"
	"github.com/decker502/resignation/pkg/entities"
	"github.com/decker502/resignation/pkg/game"
	"github.com/decker502/resignation/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrBackdropAlreadySetup Setup 只能调用一次
var ErrBackdropAlreadySetup = errors.New("backdrop already set up")

// FrameScheduler 帧回调调度接口（由 game.Scheduler 实现）
type FrameScheduler interface {
	RequestFrame(fn game.FrameFunc) game.FrameID
	CancelFrame(id game.FrameID) bool
}

// ResizeSource 视口尺寸变化来源（由 game.Viewport 实现）
type ResizeSource interface {
	AddResizeListener(fn game.ResizeFunc) (remove func())
}

type backdropState int

const (
	backdropIdle     backdropState = iota // 尚未 Setup
	backdropRunning                       // 帧循环运行中
	backdropDegraded                      // 没有绘制表面，不渲染
	backdropTornDown                      // 已销毁
)

func (s backdropState) String() string {
	switch s {
	case backdropIdle:
		return "idle"
	case backdropRunning:
		return "running"
	case backdropDegraded:
		return "degraded"
	case backdropTornDown:
		return "torn-down"
	}
	return fmt.Sprintf("backdropState(%d)", int(s))
}

// BackdropModule 持续运行的 3D 背景渲染循环
//
// 生命周期：
//   - Setup: 获取绘制表面，构建场景（点云、多面体、圆环），注册尺寸监听，请求第一帧
//   - 每帧: 先重新请求下一帧，再旋转、脉动、渲染
//   - Resize: 更新相机宽高比和表面尺寸，不打断帧循环
//   - Teardown: 取消待执行的帧，移除尺寸监听，释放表面
//
// 与阶段控制器完全独立：不读取也不修改当前阶段。
// 获取表面失败时降级运行（不渲染），演示本身不受影响。
type BackdropModule struct {
	scheduler    FrameScheduler
	resizeSource ResizeSource
	newSurface   game.SurfaceFactory
	cfg          config.BackdropConfig
	rng          *rand.Rand

	// ECS 框架（场景构建完成后封存）
	entityManager *ecs.EntityManager
	spinSystem    *systems.SpinSystem
	pulseSystem   *systems.PulseSystem
	renderSystem  *systems.BackdropRenderSystem
	entities      entities.BackdropEntities

	surface      game.Surface
	frameID      game.FrameID // 0 表示没有待执行的帧
	removeResize func()

	state      backdropState
	startedAt  time.Time // 第一帧的时钟时间，脉动按此计算经过时间
	frameCount uint64
}

// NewBackdropModule 创建背景渲染循环（尚未启动）
//
// 参数:
//   - scheduler: 帧调度器
//   - resizeSource: 视口尺寸变化来源
//   - newSurface: 绘制表面工厂；为 nil 时背景始终降级
//   - cfg: 背景配置；Seed 为 0 时点云每次随机
func NewBackdropModule(
	scheduler FrameScheduler,
	resizeSource ResizeSource,
	newSurface game.SurfaceFactory,
	cfg config.BackdropConfig,
) *BackdropModule {
	if newSurface == nil {
		newSurface = game.UnavailableSurfaceFactory
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	em := ecs.NewEntityManager()
	return &BackdropModule{
		scheduler:     scheduler,
		resizeSource:  resizeSource,
		newSurface:    newSurface,
		cfg:           cfg,
		rng:           rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		entityManager: em,
		spinSystem:    systems.NewSpinSystem(em),
		pulseSystem:   systems.NewPulseSystem(em),
		renderSystem:  systems.NewBackdropRenderSystem(em),
	}
}

// Setup 按视口尺寸启动渲染循环
//
// 绘制表面不可用时记录日志并降级（返回 nil）；
// 场景构建失败时释放表面、降级并返回错误。
// 两种情况下演示都可以继续运行。
func (m *BackdropModule) Setup(width, height int) error {
	if m.state != backdropIdle {
		return fmt.Errorf("%w (state %s)", ErrBackdropAlreadySetup, m.state)
	}

	surface, err := m.newSurface(width, height)
	if err != nil {
		m.state = backdropDegraded
		log.Printf("[BackdropModule] Surface unavailable, running without backdrop: %v", err)
		return nil
	}

	ids, err := entities.NewBackdropScene(m.entityManager, m.cfg, m.rng, width, height)
	if err != nil {
		surface.Dispose()
		m.state = backdropDegraded
		return fmt.Errorf("failed to build backdrop scene: %w", err)
	}
	// 场景物体在整个生命周期内固定
	m.entityManager.Seal()

	m.surface = surface
	m.entities = ids
	m.state = backdropRunning
	if m.resizeSource != nil {
		m.removeResize = m.resizeSource.AddResizeListener(m.Resize)
	}
	m.frameID = m.scheduler.RequestFrame(m.frame)

	log.Printf("[BackdropModule] Setup %dx%d: %d entities, %d particles",
		width, height, m.entityManager.EntityCount(), m.cfg.Particles.Count)
	return nil
}

// frame 单帧工作，执行前先重新请求下一帧
func (m *BackdropModule) frame(now time.Time) {
	m.frameID = 0
	if m.state != backdropRunning {
		return
	}
	m.frameID = m.scheduler.RequestFrame(m.frame)

	if m.frameCount == 0 {
		m.startedAt = now
	}
	m.frameCount++

	m.spinSystem.Update()
	m.pulseSystem.Update(now.Sub(m.startedAt).Seconds())
	m.renderSystem.Draw(m.surface)
}

// Resize 更新相机宽高比和表面尺寸
func (m *BackdropModule) Resize(width, height int) {
	if m.state != backdropRunning || width <= 0 || height <= 0 {
		return
	}
	if cam := m.renderSystem.Camera(); cam != nil {
		cam.Camera.SetViewport(width, height)
	}
	m.surface.Resize(width, height)
}

// Teardown 停止帧循环并释放资源
// 可以重复调用，也可以在 Setup 之前或 Setup 失败之后调用
func (m *BackdropModule) Teardown() {
	if m.state == backdropTornDown {
		return
	}
	if m.frameID != 0 {
		m.scheduler.CancelFrame(m.frameID)
		m.frameID = 0
	}
	if m.removeResize != nil {
		m.removeResize()
		m.removeResize = nil
	}
	if m.surface != nil {
		m.surface.Dispose()
		m.surface = nil
	}
	m.entityManager.Clear()

	log.Printf("[BackdropModule] Teardown after %d frames (was %s)", m.frameCount, m.state)
	m.state = backdropTornDown
}

// DrawTo 把最近一帧合成到屏幕
func (m *BackdropModule) DrawTo(screen *ebiten.Image) {
	if m.state != backdropRunning {
		return
	}
	if s, ok := m.surface.(interface{ DrawTo(*ebiten.Image) }); ok {
		s.DrawTo(screen)
	}
}

// Active 帧循环是否在运行
func (m *BackdropModule) Active() bool {
	return m.state == backdropRunning
}

// Degraded 是否因为没有绘制表面而不渲染
func (m *BackdropModule) Degraded() bool {
	return m.state == backdropDegraded
}

// FramePending 是否有待执行的帧请求
func (m *BackdropModule) FramePending() bool {
	return m.frameID != 0
}

// FrameCount 返回已渲染的帧数
func (m *BackdropModule) FrameCount() uint64 {
	return m.frameCount
}

// Camera 返回当前相机参数
func (m *BackdropModule) Camera() (mesh.PerspectiveCamera, bool) {
	cam := m.renderSystem.Camera()
	if cam == nil {
		return mesh.PerspectiveCamera{}, false
	}
	return cam.Camera, true
}

// Transform 返回场景物体当前的变换（"particles"、"polyhedron"、"torus"）
func (m *BackdropModule) Transform(object string) (mesh.Transform, bool) {
	var id ecs.EntityID
	switch object {
	case "particles":
		id = m.entities.Particles
	case "polyhedron":
		id = m.entities.Polyhedron
	case "torus":
		id = m.entities.Torus
	default:
		return mesh.Transform{}, false
	}
	t, ok := ecs.GetComponent[*components.TransformComponent](m.entityManager, id)
	if !ok {
		return mesh.Transform{}, false
	}
	return t.Transform, true
}
