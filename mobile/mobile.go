//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	make build-android    # Android
//	make build-ios        # iOS (仅 macOS)
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/resignation/pkg/app"
	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/embedded"
	"github.com/decker502/resignation/pkg/game"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	presentation, err := config.LoadPresentationConfig("")
	if err != nil {
		log.Fatalf("演示配置加载失败: %v", err)
	}
	content, err := config.LoadContentTable("", game.StageNames())
	if err != nil {
		log.Fatalf("阶段内容加载失败: %v", err)
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:      true,
		Presentation: presentation,
		Content:      content,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
