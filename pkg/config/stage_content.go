package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultStageContentPath 内置阶段内容表在嵌入资源中的路径
const DefaultStageContentPath = "data/stages.yaml"

// ErrUnknownStageContent 内容表中出现了不在阶段序列里的键
var ErrUnknownStageContent = errors.New("unknown stage in content table")

// Layout 阶段内容的排版方式
type Layout string

const (
	LayoutSplash   Layout = "splash"   // 标题 + 副标题 + 加载条
	LayoutTerminal Layout = "terminal" // 终端窗口，逐行日志
	LayoutBars     Layout = "bars"     // 指标名 + 百分比条或状态徽章
	LayoutTable    Layout = "table"    // 两列表格
	LayoutList     Layout = "list"     // 带标签的条目列表
	LayoutQuery    Layout = "query"    // SQL 查询及结果
	LayoutReport   Layout = "report"   // 最终状态报告
)

var knownLayouts = []Layout{
	LayoutSplash, LayoutTerminal, LayoutBars, LayoutTable,
	LayoutList, LayoutQuery, LayoutReport,
}

// Severity 条目的语义颜色
type Severity string

const (
	SeverityNone       Severity = ""
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeverityComment    Severity = "comment"
	SeveritySuccess    Severity = "success"
	SeverityInfo       Severity = "info"
	SeverityDead       Severity = "dead"
	SeverityDeprecated Severity = "deprecated"
)

var knownSeverities = []Severity{
	SeverityNone, SeverityError, SeverityWarning, SeverityComment,
	SeveritySuccess, SeverityInfo, SeverityDead, SeverityDeprecated,
}

// ContentItem 一个显示条目（标签/值/严重程度）
type ContentItem struct {
	Label    string   `yaml:"label"`
	Value    string   `yaml:"value,omitempty"`
	Severity Severity `yaml:"severity,omitempty"`
	// Percent 不为空时以百分比条显示，否则显示 Value
	Percent *int `yaml:"percent,omitempty"`
}

// ContentBlock 条目之后按固定延迟出现的文本块
type ContentBlock struct {
	Text     string   `yaml:"text"`
	Comment  string   `yaml:"comment,omitempty"`
	Severity Severity `yaml:"severity,omitempty"`
	// Delay 相对进入阶段的出现延迟（秒）
	Delay float64 `yaml:"delay"`
}

// StageContent 单个阶段的显示内容
type StageContent struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle,omitempty"`
	Layout   Layout        `yaml:"layout"`
	Header   []string      `yaml:"header,omitempty"`
	Items    []ContentItem `yaml:"items,omitempty"`
	// Stagger 相邻条目淡入的间隔（秒）
	Stagger float64        `yaml:"stagger,omitempty"`
	Footer  []string       `yaml:"footer,omitempty"`
	Blocks  []ContentBlock `yaml:"blocks,omitempty"`
}

// ItemDelay 返回第 i 个条目的淡入延迟（秒）
func (c StageContent) ItemDelay(i int) float64 {
	return float64(i) * c.Stagger
}

// ContentTable 以阶段名为键的内容表
type ContentTable struct {
	Stages map[string]StageContent `yaml:"stages"`
}

// For 返回指定阶段的内容
func (t *ContentTable) For(stage fmt.Stringer) (StageContent, bool) {
	if t == nil {
		return StageContent{}, false
	}
	c, ok := t.Stages[stage.String()]
	return c, ok
}

// Names 返回内容表中的阶段名（已排序）
func (t *ContentTable) Names() []string {
	names := make([]string, 0, len(t.Stages))
	for name := range t.Stages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseContentTable 解析内容表 YAML 并按给定阶段序列验证
func ParseContentTable(data []byte, order []string) (*ContentTable, error) {
	var table ContentTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse stage content: %w", err)
	}
	if err := table.Validate(order); err != nil {
		return nil, fmt.Errorf("invalid stage content: %w", err)
	}
	return &table, nil
}

// LoadContentTable 加载阶段内容表
//
// 参数:
//   - path: 磁盘上的内容文件路径；为空时使用内置的 data/stages.yaml
//   - order: 阶段序列，每个阶段都必须有内容
func LoadContentTable(path string, order []string) (*ContentTable, error) {
	data, err := readConfigFile(path, DefaultStageContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage content: %w", err)
	}
	return ParseContentTable(data, order)
}

// Validate 检查内容表覆盖整个阶段序列且只包含已知阶段
func (t *ContentTable) Validate(order []string) error {
	var errs []error
	for _, name := range order {
		content, ok := t.Stages[name]
		if !ok {
			errs = append(errs, fmt.Errorf("stage %q: missing content", name))
			continue
		}
		if err := content.validate(); err != nil {
			errs = append(errs, fmt.Errorf("stage %q: %w", name, err))
		}
	}
	for _, name := range t.Names() {
		if !slices.Contains(order, name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownStageContent, name))
		}
	}
	return errors.Join(errs...)
}

func (c StageContent) validate() error {
	if c.Title == "" {
		return errors.New("title is required")
	}
	if !slices.Contains(knownLayouts, c.Layout) {
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	if c.Stagger < 0 {
		return fmt.Errorf("stagger must be >= 0, got %v", c.Stagger)
	}
	for i, item := range c.Items {
		if !slices.Contains(knownSeverities, item.Severity) {
			return fmt.Errorf("item %d: unknown severity %q", i, item.Severity)
		}
		if item.Percent != nil && (*item.Percent < 0 || *item.Percent > 100) {
			return fmt.Errorf("item %d: percent must be in [0, 100], got %d", i, *item.Percent)
		}
	}
	for i, block := range c.Blocks {
		if !slices.Contains(knownSeverities, block.Severity) {
			return fmt.Errorf("block %d: unknown severity %q", i, block.Severity)
		}
		if block.Delay < 0 {
			return fmt.Errorf("block %d: delay must be >= 0, got %v", i, block.Delay)
		}
	}
	return nil
}
