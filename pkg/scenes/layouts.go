package scenes

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// terminalHeaderHeight 终端窗口标题栏高度
	terminalHeaderHeight = 36.0
	// barGrowDuration 指标条从 0 增长到目标值的时长（秒）
	barGrowDuration = 1.0
)

// layoutFrame 单次绘制的上下文
type layoutFrame struct {
	screen *ebiten.Image
	fonts  *Fonts
	clock  *StageClock

	width, height      float64
	left, contentWidth float64
}

// drawText 绘制（可能多行的）文字，alpha 为 0 时跳过
func (f *layoutFrame) drawText(s string, face *text.GoTextFace, x, y float64, clr color.Color, alpha float64, align text.Align) {
	if s == "" || alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = align
	op.LayoutOptions.LineSpacing = LineHeight(face)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(f.screen, s, face, op)
}

func (f *layoutFrame) fillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(f.screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (f *layoutFrame) strokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(f.screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

// wrap 按内容宽度换行，返回换行后的文本和行数
func (f *layoutFrame) wrap(s string, face *text.GoTextFace, maxWidth float64) (string, int) {
	lines := utils.WrapText(s, face, maxWidth)
	return strings.Join(lines, "\n"), len(lines)
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// drawSectionTitle 绘制阶段标题，返回标题下方的 Y 坐标
func (f *layoutFrame) drawSectionTitle(title string) float64 {
	f.drawText(title, f.fonts.Section, f.left, config.ContentTop, colorText, 1, text.AlignStart)
	y := config.ContentTop + LineHeight(f.fonts.Section) + 8
	vector.StrokeLine(f.screen, float32(f.left), float32(y), float32(f.left+f.contentWidth), float32(y), 1, colorPanelEdge, false)
	return y + 16
}

// drawSplash 初始阶段：居中标题、副标题、加载条
func (f *layoutFrame) drawSplash(c config.StageContent, autoAdvance time.Duration) {
	cx, cy := f.width/2, f.height/2

	alpha := f.clock.Alpha(0)
	// 错位的红/青副本做出故障效果
	glitch := float64(int(f.clock.Elapsed()*20)%3) - 1
	f.drawText(c.Title, f.fonts.Title, cx+glitch*2, cy-80, colorRed, alpha*0.5, text.AlignCenter)
	f.drawText(c.Title, f.fonts.Title, cx-glitch*2, cy-80, colorCyan, alpha*0.5, text.AlignCenter)
	f.drawText(c.Title, f.fonts.Title, cx, cy-80, colorText, alpha, text.AlignCenter)

	f.drawText(c.Subtitle, f.fonts.Section, cx, cy, colorRed, f.clock.Alpha(0.3), text.AlignCenter)

	barX := cx - config.LoadingBarWidth/2
	barY := cy + 60
	progress := f.clock.Progress(autoAdvance.Seconds())
	f.fillRect(barX, barY, config.LoadingBarWidth, config.LoadingBarHeight, colorBarTrack)
	f.fillRect(barX, barY, config.LoadingBarWidth*progress, config.LoadingBarHeight, colorText)
}

// drawTerminal 终端窗口：标题栏 + 带前缀的日志行
func (f *layoutFrame) drawTerminal(c config.StageContent) {
	body := f.fonts.Body
	lh := LineHeight(body)
	top := config.ContentTop

	// 先计算高度
	type line struct {
		text  string
		lines int
		item  int
	}
	rows := make([]line, 0, len(c.Items))
	total := 0
	for i, item := range c.Items {
		s, n := f.wrap(severityPrefix(item.Severity)+" "+item.Label, body, f.contentWidth-32)
		rows = append(rows, line{text: s, lines: n, item: i})
		total += n
	}
	panelHeight := terminalHeaderHeight + 24 + float64(total)*lh

	f.fillRect(f.left, top, f.contentWidth, panelHeight, colorTerminalBg)
	f.fillRect(f.left, top, f.contentWidth, terminalHeaderHeight, colorPanel)
	f.strokeRect(f.left, top, f.contentWidth, panelHeight, colorPanelEdge)
	f.drawText(c.Title, body, f.left+16, top+(terminalHeaderHeight-lh)/2+4, colorText, 1, text.AlignStart)

	// 右上角三个窗口按钮
	for i, clr := range []color.RGBA{colorRed, colorYellow, colorText} {
		x := f.left + f.contentWidth - 24 - float64(2-i)*20
		f.fillRect(x, top+12, 12, 12, clr)
	}

	y := top + terminalHeaderHeight + 12
	for _, row := range rows {
		item := c.Items[row.item]
		f.drawText(row.text, body, f.left+16, y, severityColor(item.Severity), f.clock.Alpha(c.ItemDelay(row.item)), text.AlignStart)
		y += float64(row.lines) * lh
	}
}

// drawBars 指标：百分比条或状态徽章
func (f *layoutFrame) drawBars(c config.StageContent) {
	body := f.fonts.Body
	y := f.drawSectionTitle(c.Title)
	rowHeight := LineHeight(body) + 12
	barX := f.left + f.contentWidth - config.MetricBarWidth

	for i, item := range c.Items {
		alpha := f.clock.Alpha(c.ItemDelay(i))
		if alpha <= 0 {
			continue
		}
		rowY := y + float64(i)*rowHeight
		f.drawText(item.Label, body, f.left, rowY, colorText, alpha, text.AlignStart)

		clr := severityColor(item.Severity)
		if item.Percent == nil {
			f.drawText(badge(item), body, f.left+f.contentWidth, rowY, clr, alpha, text.AlignEnd)
			continue
		}
		barY := rowY + (LineHeight(body)-config.MetricBarHeight)/2
		fill := config.MetricBarWidth * float64(*item.Percent) / 100 * f.clock.Grow(c.ItemDelay(i), barGrowDuration)
		f.fillRect(barX, barY, config.MetricBarWidth, config.MetricBarHeight, withAlpha(colorBarTrack, alpha))
		f.fillRect(barX, barY, fill, config.MetricBarHeight, withAlpha(clr, alpha))
		f.drawText(fmt.Sprintf("%d%%", *item.Percent), body, barX-12, rowY, clr, alpha, text.AlignEnd)
	}
}

// badge 状态徽章文字
func badge(item config.ContentItem) string {
	switch item.Severity {
	case config.SeverityDead:
		return "x_x " + item.Value
	case config.SeverityDeprecated:
		return "/!\\ " + item.Value
	}
	return item.Value
}

// drawTable 两列表格：左侧名称，右侧值
func (f *layoutFrame) drawTable(c config.StageContent) {
	body := f.fonts.Body
	y := f.drawSectionTitle(c.Title)
	rowHeight := LineHeight(body) + 14

	for i, item := range c.Items {
		alpha := f.clock.Alpha(c.ItemDelay(i))
		rowY := y + float64(i)*rowHeight
		f.fillRect(f.left, rowY-4, f.contentWidth, rowHeight-4, withAlpha(colorPanel, alpha))
		f.drawText(item.Label, body, f.left+12, rowY, colorTextDim, alpha, text.AlignStart)
		f.drawText(item.Value, body, f.left+f.contentWidth-12, rowY, severityColor(item.Severity), alpha, text.AlignEnd)
	}
}

// drawList 条目列表：标签 + 文字，之后是页脚
func (f *layoutFrame) drawList(c config.StageContent) {
	body := f.fonts.Body
	lh := LineHeight(body)
	y := f.drawSectionTitle(c.Title)

	labelWidth := 0.0
	for _, item := range c.Items {
		w, _ := text.Measure(item.Label, body, 0)
		labelWidth = max(labelWidth, w)
	}
	if labelWidth > 0 {
		labelWidth += 12
	}

	for i, item := range c.Items {
		alpha := f.clock.Alpha(c.ItemDelay(i))
		clr := severityColor(item.Severity)
		f.drawText(item.Label, body, f.left, y, clr, alpha, text.AlignStart)
		s, n := f.wrap(item.Value, body, f.contentWidth-labelWidth)
		f.drawText(s, body, f.left+labelWidth, y, colorText, alpha, text.AlignStart)
		y += float64(n) * lh
	}

	footerDelay := c.ItemDelay(len(c.Items))
	y += lh / 2
	for _, line := range c.Footer {
		f.drawText(line, body, f.width/2, y, colorGray, f.clock.Alpha(footerDelay), text.AlignCenter)
		y += lh
	}
	f.drawBlocks(c.Blocks, y)
}

// drawQuery SQL 面板：查询、执行中、结果
func (f *layoutFrame) drawQuery(c config.StageContent) {
	y := f.drawSectionTitle(c.Title)
	lh := LineHeight(f.fonts.Body)

	height := 24.0
	for _, b := range c.Blocks {
		height += float64(lineCount(b.Text))*lh + 12
		if b.Comment != "" {
			height += lh
		}
	}
	f.fillRect(f.left, y, f.contentWidth, height, colorTerminalBg)
	f.strokeRect(f.left, y, f.contentWidth, height, colorPanelEdge)

	f.drawBlocks(c.Blocks, y+12)
}

// drawReport 最终报告：边框标题、状态行、脚本和结束语
func (f *layoutFrame) drawReport(c config.StageContent) {
	body := f.fonts.Body
	lh := LineHeight(body)
	y := config.ContentTop

	for _, line := range c.Header {
		f.drawText(line, body, f.width/2, y, colorText, 1, text.AlignCenter)
		y += lh
	}

	// 状态行与边框同宽
	boxWidth := f.contentWidth
	if len(c.Header) > 0 {
		w, _ := text.Measure(c.Header[0], body, 0)
		boxWidth = min(boxWidth, w)
	}
	boxLeft := f.width/2 - boxWidth/2
	for i, item := range c.Items {
		alpha := f.clock.Alpha(c.ItemDelay(i))
		f.drawText(item.Label, body, boxLeft+body.Size, y, colorText, alpha, text.AlignStart)
		f.drawText("["+item.Value+"]", body, boxLeft+boxWidth-body.Size, y, severityColor(item.Severity), alpha, text.AlignEnd)
		y += lh
	}

	for _, line := range c.Footer {
		f.drawText(line, body, f.width/2, y, colorText, 1, text.AlignCenter)
		y += lh
	}
	f.drawBlocks(c.Blocks, y+lh/2)
}

// drawBlocks 按各自的延迟绘制文本块，返回最后一块下方的 Y 坐标
func (f *layoutFrame) drawBlocks(blocks []config.ContentBlock, y float64) float64 {
	body := f.fonts.Body
	lh := LineHeight(body)
	for _, b := range blocks {
		alpha := f.clock.Alpha(b.Delay)
		f.drawText(b.Text, body, f.left+16, y, severityColor(b.Severity), alpha, text.AlignStart)
		y += float64(lineCount(b.Text)) * lh
		if b.Comment != "" {
			f.drawText(b.Comment, body, f.left+16, y, colorGray, alpha, text.AlignStart)
			y += lh
		}
		y += 12
	}
	return y
}
