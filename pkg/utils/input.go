// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的指针输入状态
// 统一处理鼠标和触摸输入
type InputState struct {
	// 指针位置
	X, Y int
	// 是否处于按下状态
	Pressed bool
	// 是否在本帧刚刚释放（点击完成）
	JustReleased bool
	// 是否来自触摸
	IsTouching bool
}

// GetInputState 获取当前帧的输入状态
// 同时支持鼠标和触摸输入，优先检测触摸
func GetInputState() InputState {
	state := InputState{}

	// 触摸刚刚结束：使用上一帧的位置
	released := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(released) > 0 {
		state.X, state.Y = inpututil.TouchPositionInPreviousTick(released[0])
		state.JustReleased = true
		state.IsTouching = true
		return state
	}

	// 活动中的触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		state.Pressed = true
		state.IsTouching = true
		return state
	}

	// 鼠标
	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return state
}

// IsAnyKeyJustPressed 检查给定按键中是否有任意一个在本帧刚刚按下
func IsAnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
