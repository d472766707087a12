package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the presentation.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景被替换或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - SceneManager.SwitchTo 切换到其他场景
//   - SceneManager.Close（窗口关闭、Esc 退出）
type Disposable interface {
	Dispose()
}
