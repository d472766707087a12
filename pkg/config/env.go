package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix 环境变量前缀
const EnvPrefix = "RESIGN_"

// EnvOverrides 来自环境变量的配置覆盖
// 未设置的变量保持为 nil，不覆盖配置文件中的值
type EnvOverrides struct {
	Width       *int           `env:"WIDTH"`
	Height      *int           `env:"HEIGHT"`
	Fullscreen  *bool          `env:"FULLSCREEN"`
	Verbose     *bool          `env:"VERBOSE"`
	NoBackdrop  *bool          `env:"NO_BACKDROP"`
	AutoAdvance *time.Duration `env:"AUTO_ADVANCE"`
	Seed        *uint64        `env:"SEED"`
	Particles   *int           `env:"PARTICLES"`
}

// ParseEnvOverrides 从进程环境读取 RESIGN_* 变量
func ParseEnvOverrides() (EnvOverrides, error) {
	return ParseEnvOverridesFrom(env.ToMap(os.Environ()))
}

// ParseEnvOverridesFrom 从给定的环境表读取 RESIGN_* 变量
func ParseEnvOverridesFrom(environ map[string]string) (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	}); err != nil {
		return EnvOverrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// VerboseEnabled 是否通过环境变量开启了详细日志
func (o EnvOverrides) VerboseEnabled() bool {
	return o.Verbose != nil && *o.Verbose
}

// Apply 把已设置的覆盖项写入配置
func (o EnvOverrides) Apply(cfg *PresentationConfig) {
	if o.Width != nil {
		cfg.Window.Width = *o.Width
	}
	if o.Height != nil {
		cfg.Window.Height = *o.Height
	}
	if o.Fullscreen != nil {
		cfg.Window.Fullscreen = *o.Fullscreen
	}
	if o.NoBackdrop != nil {
		cfg.Backdrop.Enabled = !*o.NoBackdrop
	}
	if o.AutoAdvance != nil {
		cfg.Stages.AutoAdvanceMs = int(o.AutoAdvance.Milliseconds())
	}
	if o.Seed != nil {
		cfg.Backdrop.Seed = *o.Seed
	}
	if o.Particles != nil {
		cfg.Backdrop.Particles.Count = *o.Particles
	}
}
