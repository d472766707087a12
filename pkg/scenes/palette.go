package scenes

import (
	"image/color"

	"github.com/decker502/resignation/pkg/config"
)

var (
	colorText    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	colorTextDim = color.RGBA{0x00, 0x99, 0x00, 0xff}
	colorRed     = color.RGBA{0xff, 0x33, 0x33, 0xff}
	colorYellow  = color.RGBA{0xff, 0xcc, 0x00, 0xff}
	colorGray    = color.RGBA{0x88, 0x88, 0x88, 0xff}
	colorCyan    = color.RGBA{0x00, 0xff, 0xff, 0xff}
	colorOrange  = color.RGBA{0xff, 0x88, 0x00, 0xff}

	// 半透明颜色使用非预乘的 NRGBA
	colorPanel      = color.NRGBA{0x00, 0x14, 0x00, 0xc0}
	colorPanelEdge  = color.NRGBA{0x00, 0xff, 0x00, 0x60}
	colorBarTrack   = color.NRGBA{0x33, 0x33, 0x33, 0xc0}
	colorTerminalBg = color.NRGBA{0x1a, 0x1a, 0x1a, 0xe0}

	// 按钮悬停填充（ButtonComponent 使用预乘的 RGBA）
	colorHoverFill = color.RGBA{0x00, 0x30, 0x00, 0x30}
)

// severityColor 返回条目严重程度对应的颜色
func severityColor(s config.Severity) color.RGBA {
	switch s {
	case config.SeverityError, config.SeverityDead:
		return colorRed
	case config.SeverityWarning:
		return colorYellow
	case config.SeverityComment:
		return colorGray
	case config.SeverityInfo:
		return colorCyan
	case config.SeverityDeprecated:
		return colorOrange
	}
	return colorText
}

// severityPrefix 终端日志行前缀
func severityPrefix(s config.Severity) string {
	switch s {
	case config.SeverityError:
		return "[!!]"
	case config.SeverityWarning:
		return "[!?]"
	case config.SeverityComment:
		return "[..]"
	}
	return "[>>]"
}

// withAlpha 返回按不透明度缩放后的颜色
func withAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	alpha = max(0, min(1, alpha))
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}
