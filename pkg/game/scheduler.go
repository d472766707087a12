package game

import (
	"cmp"
	"slices"
	"time"
)

// TimerID 一次性定时器的句柄，0 表示无效句柄
type TimerID uint64

// FrameID 帧回调请求的句柄，0 表示无效句柄
type FrameID uint64

// FrameFunc 帧回调，now 为本次帧刷新的时钟时间
type FrameFunc func(now time.Time)

type scheduledTimer struct {
	id       TimerID
	deadline time.Time
	fn       func()
}

type frameRequest struct {
	id FrameID
	fn FrameFunc
}

// Scheduler 单线程协作式事件循环
//
// 提供两类可取消的延迟工作：
//   - AfterFunc: 一次性定时器，到期后在 RunTimers 中执行
//   - RequestFrame: 下一帧回调，在下一次 RunFrames 中执行
//
// 所有方法都必须在游戏循环所在的 goroutine 上调用（ebiten 的 Update/Draw），
// 因此不加锁。回调内部再次请求的工作不会在当前这次刷新中执行。
type Scheduler struct {
	clock  func() time.Time
	nextID uint64

	timers map[TimerID]*scheduledTimer
	frames map[FrameID]*frameRequest

	closed bool
}

// NewScheduler 创建事件循环
//
// 参数：
//   - clock: 时钟函数，为 nil 时使用 time.Now（测试中可注入假时钟）
func NewScheduler(clock func() time.Time) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{
		clock:  clock,
		timers: make(map[TimerID]*scheduledTimer),
		frames: make(map[FrameID]*frameRequest),
	}
}

// Now 返回调度器时钟的当前时间
func (s *Scheduler) Now() time.Time {
	return s.clock()
}

func (s *Scheduler) allocID() uint64 {
	s.nextID++
	return s.nextID
}

// AfterFunc 在 d 之后执行一次 fn
// 调度器关闭后返回 0 且不会执行 fn
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) TimerID {
	if s.closed || fn == nil {
		return 0
	}
	id := TimerID(s.allocID())
	s.timers[id] = &scheduledTimer{
		id:       id,
		deadline: s.clock().Add(d),
		fn:       fn,
	}
	return id
}

// CancelTimer 取消尚未触发的定时器
// 返回 true 表示确实取消了一个待执行的定时器
func (s *Scheduler) CancelTimer(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// RequestFrame 请求在下一次帧刷新时执行 fn
// 调度器关闭后返回 0 且不会执行 fn
func (s *Scheduler) RequestFrame(fn FrameFunc) FrameID {
	if s.closed || fn == nil {
		return 0
	}
	id := FrameID(s.allocID())
	s.frames[id] = &frameRequest{id: id, fn: fn}
	return id
}

// CancelFrame 取消尚未执行的帧回调
func (s *Scheduler) CancelFrame(id FrameID) bool {
	if _, ok := s.frames[id]; !ok {
		return false
	}
	delete(s.frames, id)
	return true
}

// RunTimers 执行所有已到期的定时器，按到期时间（相同则按调度顺序）执行
// 返回实际执行的定时器数量
func (s *Scheduler) RunTimers() int {
	now := s.clock()

	due := make([]*scheduledTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	slices.SortFunc(due, func(a, b *scheduledTimer) int {
		if c := a.deadline.Compare(b.deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	ran := 0
	for _, t := range due {
		// 前一个回调可能已经取消了它
		if _, ok := s.timers[t.id]; !ok {
			continue
		}
		delete(s.timers, t.id)
		t.fn()
		ran++
	}
	return ran
}

// RunFrames 执行本次刷新之前请求的所有帧回调
// 回调中重新请求的帧会留到下一次 RunFrames
func (s *Scheduler) RunFrames() int {
	if len(s.frames) == 0 {
		return 0
	}
	now := s.clock()

	pending := make([]*frameRequest, 0, len(s.frames))
	for _, f := range s.frames {
		pending = append(pending, f)
	}
	slices.SortFunc(pending, func(a, b *frameRequest) int {
		return cmp.Compare(a.id, b.id)
	})

	ran := 0
	for _, f := range pending {
		if _, ok := s.frames[f.id]; !ok {
			continue
		}
		delete(s.frames, f.id)
		f.fn(now)
		ran++
	}
	return ran
}

// PendingTimers 返回待触发的定时器数量
func (s *Scheduler) PendingTimers() int {
	return len(s.timers)
}

// PendingFrames 返回待执行的帧回调数量
func (s *Scheduler) PendingFrames() int {
	return len(s.frames)
}

// Close 丢弃所有待执行的工作，之后的请求全部被忽略
func (s *Scheduler) Close() {
	s.closed = true
	clear(s.timers)
	clear(s.frames)
}
