package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/game"
	"github.com/spf13/cobra"
)

// errValidationFailed 校验未通过（详细信息已输出）
var errValidationFailed = errors.New("validation failed")

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the presentation config and stage content",
		Long: `Loads the presentation config and the stage content table (the built-in
files unless --config/--content are given) and reports every problem found.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), opts)
		},
	}
}

func runValidate(out io.Writer, opts *rootOptions) error {
	failed := false

	pc, err := config.LoadPresentationConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(out, "❌ 演示配置: %v\n", err)
		failed = true
	} else {
		fmt.Fprintf(out, "✅ 演示配置格式正确 (%s)\n", sourceName(opts.configPath, config.DefaultPresentationConfigPath))
		fmt.Fprintf(out, "   窗口 %dx%d, 自动推进 %v, 粒子 %d\n",
			pc.Window.Width, pc.Window.Height, pc.Stages.AutoAdvance(), pc.Backdrop.Particles.Count)
	}

	table, err := config.LoadContentTable(opts.contentPath, game.StageNames())
	if err != nil {
		fmt.Fprintf(out, "❌ 阶段内容: %v\n", err)
		failed = true
	} else {
		fmt.Fprintf(out, "✅ 阶段内容格式正确 (%s)\n", sourceName(opts.contentPath, config.DefaultStageContentPath))
		fmt.Fprintf(out, "✅ 阶段数量: %d\n", len(table.Stages))
	}

	if failed {
		return errValidationFailed
	}
	return nil
}

func sourceName(path, builtin string) string {
	if path == "" {
		return "built-in " + builtin
	}
	return path
}
