package game

import "log"

// ResizeFunc 视口尺寸变化回调
type ResizeFunc func(width, height int)

// Viewport 记录当前视口尺寸并向监听者分发尺寸变化
//
// ebiten 的 Layout() 每帧都会被调用，Resize() 只在尺寸真正变化时通知监听者。
type Viewport struct {
	width, height int

	nextListenerID int
	listeners      map[int]ResizeFunc
	order          []int
}

// NewViewport 创建指定初始尺寸的视口
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:     width,
		height:    height,
		listeners: make(map[int]ResizeFunc),
	}
}

// Size 返回当前视口尺寸
func (v *Viewport) Size() (int, int) {
	return v.width, v.height
}

// Aspect 返回宽高比，高度为 0 时返回 1
func (v *Viewport) Aspect() float64 {
	if v.height <= 0 {
		return 1
	}
	return float64(v.width) / float64(v.height)
}

// AddResizeListener 注册尺寸变化监听
// 返回的函数用于移除该监听，可以重复调用
func (v *Viewport) AddResizeListener(fn ResizeFunc) (remove func()) {
	if fn == nil {
		return func() {}
	}
	v.nextListenerID++
	id := v.nextListenerID
	v.listeners[id] = fn
	v.order = append(v.order, id)

	return func() {
		if _, ok := v.listeners[id]; !ok {
			return
		}
		delete(v.listeners, id)
		for i, lid := range v.order {
			if lid == id {
				v.order = append(v.order[:i], v.order[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount 返回当前监听者数量
func (v *Viewport) ListenerCount() int {
	return len(v.listeners)
}

// Resize 更新视口尺寸
// 尺寸无变化或非法（<= 0）时不通知监听者，返回是否发生了变化
func (v *Viewport) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == v.width && height == v.height {
		return false
	}
	v.width, v.height = width, height
	log.Printf("[Viewport] Resized to %dx%d", width, height)

	// 回调中可能移除监听，先拷贝顺序
	ids := append([]int(nil), v.order...)
	for _, id := range ids {
		if fn, ok := v.listeners[id]; ok {
			fn(width, height)
		}
	}
	return true
}
