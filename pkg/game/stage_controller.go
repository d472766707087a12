package game

import (
	"log"
	"time"
)

// TimerScheduler 一次性定时器调度接口（由 Scheduler 实现）
type TimerScheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerID
	CancelTimer(id TimerID) bool
}

// StageChangeFunc 阶段切换回调
type StageChangeFunc func(from, to Stage)

// StageController 阶段推进状态机
//
// 职责：
//   - 持有当前阶段（任何时刻恰好一个）
//   - Advance() 推进到下一阶段，终止阶段上为空操作
//   - Reset() 回到初始阶段并重新挂起自动推进定时器
//   - 进入初始阶段时挂起一次性自动推进定时器
//
// 定时器句柄由控制器持有：离开初始阶段、Reset() 和 Close() 都会取消它，
// 因此定时器不会作用在已经离开的阶段上，也不会在销毁后触发。
//
// 不接触渲染和内容数据。
type StageController struct {
	scheduler TimerScheduler
	delay     time.Duration

	current   Stage
	autoTimer TimerID // 0 表示没有挂起的自动推进

	listeners []StageChangeFunc
	closed    bool
}

// NewStageController 创建阶段控制器，初始阶段为 intro 并立即挂起自动推进
//
// 参数：
//   - scheduler: 定时器调度器
//   - delay: 自动推进延迟，<= 0 时使用初始阶段的默认延迟
func NewStageController(scheduler TimerScheduler, delay time.Duration) *StageController {
	if delay <= 0 {
		delay, _ = StageIntro.AutoAdvanceAfter()
	}
	sc := &StageController{
		scheduler: scheduler,
		delay:     delay,
	}
	sc.enter(StageIntro)
	return sc
}

// Current 返回当前阶段
func (sc *StageController) Current() Stage {
	return sc.current
}

// AutoAdvanceDelay 返回初始阶段的自动推进延迟
func (sc *StageController) AutoAdvanceDelay() time.Duration {
	return sc.delay
}

// AutoAdvancePending 是否有挂起的自动推进定时器
func (sc *StageController) AutoAdvancePending() bool {
	return sc.autoTimer != 0
}

// OnChange 注册阶段切换回调，按注册顺序调用
func (sc *StageController) OnChange(fn StageChangeFunc) {
	if fn != nil {
		sc.listeners = append(sc.listeners, fn)
	}
}

// Advance 推进到序列中的下一个阶段
// 在终止阶段上调用是空操作，不会报错
func (sc *StageController) Advance() {
	if sc.closed {
		return
	}
	next, ok := sc.current.Next()
	if !ok {
		log.Printf("[StageController] Advance ignored: %s is terminal", sc.current)
		return
	}
	sc.enter(next)
}

// Reset 无条件回到初始阶段，并重新挂起自动推进定时器
func (sc *StageController) Reset() {
	if sc.closed {
		return
	}
	sc.enter(StageIntro)
}

// Close 取消挂起的定时器，之后的 Advance/Reset 都被忽略
// 可以重复调用
func (sc *StageController) Close() {
	if sc.closed {
		return
	}
	sc.cancelAutoAdvance()
	sc.closed = true
	log.Printf("[StageController] Closed at stage %s", sc.current)
}

func (sc *StageController) enter(stage Stage) {
	// 离开旧阶段时，旧定时器必须作废
	sc.cancelAutoAdvance()

	from := sc.current
	sc.current = stage
	log.Printf("[StageController] %s -> %s", from, stage)

	if _, ok := stage.AutoAdvanceAfter(); ok {
		sc.autoTimer = sc.scheduler.AfterFunc(sc.delay, sc.onAutoAdvance)
	}

	for _, fn := range sc.listeners {
		fn(from, stage)
	}
}

func (sc *StageController) onAutoAdvance() {
	sc.autoTimer = 0
	if sc.closed || !sc.current.IsInitial() {
		return
	}
	log.Printf("[StageController] Auto-advance after %v", sc.delay)
	sc.Advance()
}

func (sc *StageController) cancelAutoAdvance() {
	if sc.autoTimer == 0 {
		return
	}
	sc.scheduler.CancelTimer(sc.autoTimer)
	sc.autoTimer = 0
}
