package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownStage 表示阶段名称不在固定序列中
var ErrUnknownStage = errors.New("unknown stage")

// Stage 演示序列中的一个全屏阶段
// 取值即为其在序列中的位置（ordinal），序列是固定且全序的
type Stage int

const (
	StageIntro Stage = iota
	StageManagement
	StageInfrastructure
	StageCulture
	StageBugs
	StageCompensation
	StageFinal

	stageCount = int(StageFinal) + 1
)

// IntroAutoAdvanceDelay 初始阶段的默认自动推进延迟
const IntroAutoAdvanceDelay = 3000 * time.Millisecond

var stageNames = [stageCount]string{
	StageIntro:          "intro",
	StageManagement:     "management",
	StageInfrastructure: "infrastructure",
	StageCulture:        "culture",
	StageBugs:           "bugs",
	StageCompensation:   "compensation",
	StageFinal:          "final",
}

// Stages 返回完整的阶段序列（按 ordinal 升序）
// 返回的是副本，调用方可以随意修改
func Stages() []Stage {
	stages := make([]Stage, stageCount)
	for i := range stages {
		stages[i] = Stage(i)
	}
	return stages
}

// StageNames 返回按序列排列的阶段名称
func StageNames() []string {
	return append([]string(nil), stageNames[:]...)
}

// ParseStage 根据稳定名称查找阶段
//
// 参数：
//   - name: 阶段名称，如 "intro"、"final"
//
// 返回：
//   - Stage: 对应阶段
//   - error: 名称未知时返回包装了 ErrUnknownStage 的错误
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if n == name {
			return Stage(i), nil
		}
	}
	return StageIntro, fmt.Errorf("%w: %q", ErrUnknownStage, name)
}

// String 返回阶段的稳定名称
func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stage(%d)", int(s))
	}
	return stageNames[s]
}

// Valid 报告 s 是否是序列中的合法位置
func (s Stage) Valid() bool {
	return s >= StageIntro && int(s) < stageCount
}

// Ordinal 返回阶段在序列中的位置（从 0 开始）
func (s Stage) Ordinal() int {
	return int(s)
}

// IsInitial 是否为序列的第一个阶段
func (s Stage) IsInitial() bool {
	return s == StageIntro
}

// IsTerminal 是否为序列的最后一个阶段
func (s Stage) IsTerminal() bool {
	return int(s) == stageCount-1
}

// Next 返回序列中的下一个阶段
// 终止阶段没有下一个阶段，此时返回 (s, false)
func (s Stage) Next() (Stage, bool) {
	if !s.Valid() || s.IsTerminal() {
		return s, false
	}
	return s + 1, true
}

// AutoAdvanceAfter 返回该阶段的默认自动推进延迟
// 只有初始阶段带有延迟
func (s Stage) AutoAdvanceAfter() (time.Duration, bool) {
	if s.IsInitial() {
		return IntroAutoAdvanceDelay, true
	}
	return 0, false
}
