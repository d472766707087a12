package scenes

import (
	"bytes"
	"fmt"

	"github.com/decker502/resignation/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// Fonts 演示使用的等宽字体
type Fonts struct {
	Title   *text.GoTextFace // 初始阶段大标题（粗体）
	Section *text.GoTextFace // 各阶段标题（粗体）
	Body    *text.GoTextFace // 正文、按钮
}

// NewFonts 从内置的 Go Mono 字体创建字体
func NewFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source gomono: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source gomonobold: %w", err)
	}

	face := func(src *text.GoTextFaceSource, size float64) *text.GoTextFace {
		return &text.GoTextFace{
			Source:    src,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	}
	return &Fonts{
		Title:   face(bold, config.TitleFontSize),
		Section: face(bold, config.SectionFontSize),
		Body:    face(regular, config.BodyFontSize),
	}, nil
}

// LineHeight 返回字体的行高（像素）
func LineHeight(face *text.GoTextFace) float64 {
	if face == nil {
		return 0
	}
	return face.Size * config.LineSpacing
}
