// Package cli 提供桌面端命令行入口
package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/decker502/resignation/pkg/app"
	"github.com/decker502/resignation/pkg/config"
	"github.com/decker502/resignation/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// Version 构建时通过 ldflags 设置
var Version = "dev"

// rootOptions 根命令及子命令共用的选项
type rootOptions struct {
	verbose     bool
	configPath  string
	contentPath string

	width       int
	height      int
	fullscreen  bool
	noBackdrop  bool
	autoAdvance time.Duration
	seed        uint64
	particles   int
}

// settings 合并后的启动配置
type settings struct {
	Presentation *config.PresentationConfig
	Content      *config.ContentTable
	Verbose      bool
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootOptions{})
}

func buildRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resignation",
		Short: "Resignation Simulator - Nuclear Mode",
		Long: `Runs the resignation presentation: seven full-screen stages advanced by
the CONTINUE button (or Space/Enter/Right), over an animated 3D backdrop.

Configuration precedence: flags > RESIGN_* environment > --config file > built-in defaults.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresentation(cmd, opts)
		},
	}
	cmd.SetVersionTemplate("resignation version {{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVarP(&opts.configPath, "config", "c", "", "presentation config file (default: built-in data/presentation.yaml)")
	pf.StringVar(&opts.contentPath, "content", "", "stage content file (default: built-in data/stages.yaml)")

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", config.DefaultWindowWidth, "window width")
	f.IntVar(&opts.height, "height", config.DefaultWindowHeight, "window height")
	f.BoolVar(&opts.fullscreen, "fullscreen", false, "start in fullscreen mode")
	f.BoolVar(&opts.noBackdrop, "no-backdrop", false, "run without the 3D backdrop")
	f.DurationVar(&opts.autoAdvance, "auto-advance", game.IntroAutoAdvanceDelay, "delay before the intro stage advances by itself")
	f.Uint64Var(&opts.seed, "seed", 0, "point cloud random seed (0 = random)")
	f.IntVar(&opts.particles, "particles", 0, "number of backdrop particles")

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newStagesCmd(opts))
	return cmd
}

// Execute 运行根命令
func Execute() error {
	return newRootCmd().Execute()
}

// loadSettings 按优先级合并配置：默认值 < 配置文件 < 环境变量 < 命令行参数
func loadSettings(cmd *cobra.Command, opts *rootOptions) (*settings, error) {
	pc, err := config.LoadPresentationConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	overrides, err := config.ParseEnvOverrides()
	if err != nil {
		return nil, err
	}
	overrides.Apply(pc)

	flags := cmd.Flags()
	if flags.Changed("width") {
		pc.Window.Width = opts.width
	}
	if flags.Changed("height") {
		pc.Window.Height = opts.height
	}
	if flags.Changed("fullscreen") {
		pc.Window.Fullscreen = opts.fullscreen
	}
	if flags.Changed("no-backdrop") {
		pc.Backdrop.Enabled = !opts.noBackdrop
	}
	if flags.Changed("auto-advance") {
		pc.Stages.AutoAdvanceMs = int(opts.autoAdvance.Milliseconds())
	}
	if flags.Changed("seed") {
		pc.Backdrop.Seed = opts.seed
	}
	if flags.Changed("particles") {
		pc.Backdrop.Particles.Count = opts.particles
	}
	if err := pc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration after overrides: %w", err)
	}

	content, err := config.LoadContentTable(opts.contentPath, game.StageNames())
	if err != nil {
		return nil, err
	}

	return &settings{
		Presentation: pc,
		Content:      content,
		Verbose:      opts.verbose || overrides.VerboseEnabled(),
	}, nil
}

func runPresentation(cmd *cobra.Command, opts *rootOptions) error {
	s, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	a, err := app.NewApp(app.Config{
		Verbose:      s.Verbose,
		Presentation: s.Presentation,
		Content:      s.Content,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer a.Close()

	w := s.Presentation.Window
	ebiten.SetWindowSize(w.Width, w.Height)
	ebiten.SetWindowTitle(w.Title)
	if w.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(w.Fullscreen)

	log.Printf("[CLI] Starting %s (%dx%d)", w.Title, w.Width, w.Height)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
