package config

// 布局配置常量
// 本文件定义了窗口默认尺寸和演示场景中 UI 元素的布局参数。
// 所有坐标使用屏幕坐标（像素，左上角为原点）。
const (
	// DefaultWindowWidth 默认窗口宽度
	DefaultWindowWidth = 1280
	// DefaultWindowHeight 默认窗口高度
	DefaultWindowHeight = 720
	// DefaultWindowTitle 默认窗口标题
	DefaultWindowTitle = "Resignation Simulator - Nuclear Mode"

	// ContentMaxWidth 内容区域最大宽度，窗口更宽时内容居中
	ContentMaxWidth = 900.0
	// ContentMarginX 内容区域左右最小边距
	ContentMarginX = 40.0
	// ContentTop 标题的 Y 坐标
	ContentTop = 80.0

	// TitleFontSize 标题字号
	TitleFontSize = 40.0
	// SectionFontSize 小节标题字号
	SectionFontSize = 26.0
	// BodyFontSize 正文字号
	BodyFontSize = 18.0
	// LineSpacing 正文行距（相对于字号）
	LineSpacing = 1.6

	// ButtonWidth 按钮宽度
	ButtonWidth = 260.0
	// ButtonHeight 按钮高度
	ButtonHeight = 48.0
	// ButtonBottomMargin 按钮距窗口底部的距离
	ButtonBottomMargin = 60.0

	// MetricBarWidth 指标条的最大宽度（100%）
	MetricBarWidth = 360.0
	// MetricBarHeight 指标条高度
	MetricBarHeight = 18.0

	// LoadingBarWidth 初始阶段加载条宽度
	LoadingBarWidth = 400.0
	// LoadingBarHeight 初始阶段加载条高度
	LoadingBarHeight = 6.0

	// FadeInDuration 单个条目的淡入时长（秒）
	FadeInDuration = 0.5
)

// ContentBounds 返回给定视口宽度下内容区域的左边界和宽度
func ContentBounds(viewportWidth int) (left, width float64) {
	width = float64(viewportWidth) - 2*ContentMarginX
	if width > ContentMaxWidth {
		width = ContentMaxWidth
	}
	if width < 0 {
		width = 0
	}
	left = (float64(viewportWidth) - width) / 2
	return left, width
}
