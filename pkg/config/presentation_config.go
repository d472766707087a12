package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/decker502/resignation/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultPresentationConfigPath 内置演示配置在嵌入资源中的路径
const DefaultPresentationConfigPath = "data/presentation.yaml"

// PresentationConfig 演示配置
//
// 配置文件位置: data/presentation.yaml（内置），可用 --config 替换。
// 文件中缺省的字段保持 DefaultPresentationConfig() 的取值。
type PresentationConfig struct {
	// Window 窗口配置
	Window WindowConfig `yaml:"window"`
	// Stages 阶段推进配置
	Stages StageTimingConfig `yaml:"stages"`
	// Backdrop 3D 背景配置
	Backdrop BackdropConfig `yaml:"backdrop"`
}

// WindowConfig 窗口配置
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
}

// StageTimingConfig 阶段推进配置
type StageTimingConfig struct {
	// AutoAdvanceMs 初始阶段自动推进延迟（毫秒）
	AutoAdvanceMs int `yaml:"autoAdvanceMs"`
}

// AutoAdvance 返回自动推进延迟
func (c StageTimingConfig) AutoAdvance() time.Duration {
	return time.Duration(c.AutoAdvanceMs) * time.Millisecond
}

// BackdropConfig 3D 背景配置
type BackdropConfig struct {
	// Enabled 为 false 时不获取绘制表面，演示在纯黑背景上运行
	Enabled bool `yaml:"enabled"`
	// Seed 点云随机种子，0 表示每次启动随机
	Seed uint64 `yaml:"seed"`

	Camera     CameraConfig     `yaml:"camera"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Polyhedron PolyhedronConfig `yaml:"polyhedron"`
	Torus      TorusConfig      `yaml:"torus"`
}

// CameraConfig 透视相机配置
type CameraConfig struct {
	FOV      float64 `yaml:"fov"` // 垂直视场角（度）
	Near     float64 `yaml:"near"`
	Far      float64 `yaml:"far"`
	Distance float64 `yaml:"distance"` // 相机到原点的距离
}

// SpinConfig 每帧旋转增量（弧度）
type SpinConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// PulseConfig 缩放脉动配置
type PulseConfig struct {
	Amplitude    float64 `yaml:"amplitude"`
	AngularSpeed float64 `yaml:"angularSpeed"` // 弧度/秒
}

// MaterialConfig 材质配置
type MaterialConfig struct {
	Color    HexColor `yaml:"color"`
	Opacity  float64  `yaml:"opacity"`
	Additive bool     `yaml:"additive"`
}

// ParticlesConfig 点云配置
type ParticlesConfig struct {
	Count        int            `yaml:"count"`
	Spread       float64        `yaml:"spread"` // 立方体边长
	Size         float64        `yaml:"size"`   // 世界尺寸
	MinPixelSize float64        `yaml:"minPixelSize"`
	Material     MaterialConfig `yaml:"material"`
	Spin         SpinConfig     `yaml:"spin"`
}

// PolyhedronConfig 线框多面体配置
type PolyhedronConfig struct {
	Radius    float64        `yaml:"radius"`
	Detail    int            `yaml:"detail"`
	LineWidth float64        `yaml:"lineWidth"`
	Material  MaterialConfig `yaml:"material"`
	Spin      SpinConfig     `yaml:"spin"`
	Pulse     PulseConfig    `yaml:"pulse"`
}

// TorusConfig 线框圆环配置
type TorusConfig struct {
	Radius          float64        `yaml:"radius"`
	Tube            float64        `yaml:"tube"`
	RadialSegments  int            `yaml:"radialSegments"`
	TubularSegments int            `yaml:"tubularSegments"`
	LineWidth       float64        `yaml:"lineWidth"`
	Material        MaterialConfig `yaml:"material"`
	Spin            SpinConfig     `yaml:"spin"`
}

// HexColor 以 "#rrggbb" 形式书写的颜色
type HexColor color.RGBA

// ParseHexColor 解析 "#rrggbb" 或 "rrggbb"
func ParseHexColor(s string) (HexColor, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return HexColor{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// String 返回 "#rrggbb"
func (c HexColor) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA 返回不透明的 color.RGBA
func (c HexColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// UnmarshalYAML 实现 yaml.Unmarshaler
func (c *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML 实现 yaml.Marshaler
func (c HexColor) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

func mustHex(s string) HexColor {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultPresentationConfig 返回内置默认配置
// 与 data/presentation.yaml 的取值一致
func DefaultPresentationConfig() *PresentationConfig {
	return &PresentationConfig{
		Window: WindowConfig{
			Width:     DefaultWindowWidth,
			Height:    DefaultWindowHeight,
			Title:     DefaultWindowTitle,
			Resizable: true,
		},
		Stages: StageTimingConfig{
			AutoAdvanceMs: 3000,
		},
		Backdrop: BackdropConfig{
			Enabled: true,
			Camera: CameraConfig{
				FOV:      75,
				Near:     0.1,
				Far:      1000,
				Distance: 15,
			},
			Particles: ParticlesConfig{
				Count:        5000,
				Spread:       100,
				Size:         0.05,
				MinPixelSize: 1,
				Material:     MaterialConfig{Color: mustHex("#00ff00"), Opacity: 0.8, Additive: true},
				Spin:         SpinConfig{X: 0.0005, Y: 0.001},
			},
			Polyhedron: PolyhedronConfig{
				Radius:    3,
				Detail:    1,
				LineWidth: 1,
				Material:  MaterialConfig{Color: mustHex("#ff0000"), Opacity: 0.3},
				Spin:      SpinConfig{X: 0.01, Y: 0.01},
				Pulse:     PulseConfig{Amplitude: 0.1, AngularSpeed: 1},
			},
			Torus: TorusConfig{
				Radius:          4,
				Tube:            0.4,
				RadialSegments:  16,
				TubularSegments: 100,
				LineWidth:       1,
				Material:        MaterialConfig{Color: mustHex("#00ffff"), Opacity: 0.4},
				Spin:            SpinConfig{X: 0.005, Y: 0.005},
			},
		},
	}
}

// ParsePresentationConfig 在默认配置之上解析 YAML 数据并验证
func ParsePresentationConfig(data []byte) (*PresentationConfig, error) {
	cfg := DefaultPresentationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse presentation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid presentation config: %w", err)
	}
	return cfg, nil
}

// LoadPresentationConfig 加载演示配置
//
// 参数:
//   - path: 磁盘上的配置文件路径；为空时使用内置的 data/presentation.yaml
//
// 返回:
//   - *PresentationConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadPresentationConfig(path string) (*PresentationConfig, error) {
	data, err := readConfigFile(path, DefaultPresentationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read presentation config: %w", err)
	}
	return ParsePresentationConfig(data)
}

// readConfigFile 读取磁盘文件，path 为空时从嵌入资源读取 fallback
func readConfigFile(path, fallback string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return embedded.ReadFile(fallback)
}

// Validate 验证配置的取值范围
func (c *PresentationConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Stages.AutoAdvanceMs > 0, "stages.autoAdvanceMs must be positive, got %d", c.Stages.AutoAdvanceMs)

	b := c.Backdrop
	check(b.Camera.FOV > 0 && b.Camera.FOV < 180, "backdrop.camera.fov must be in (0, 180), got %v", b.Camera.FOV)
	check(b.Camera.Near > 0 && b.Camera.Far > b.Camera.Near, "backdrop.camera near/far invalid: %v/%v", b.Camera.Near, b.Camera.Far)
	check(b.Camera.Distance > b.Camera.Near, "backdrop.camera.distance must exceed near plane, got %v", b.Camera.Distance)

	check(b.Particles.Count >= 0, "backdrop.particles.count must be >= 0, got %d", b.Particles.Count)
	check(b.Particles.Spread > 0, "backdrop.particles.spread must be positive, got %v", b.Particles.Spread)
	check(b.Particles.Size >= 0, "backdrop.particles.size must be >= 0, got %v", b.Particles.Size)

	check(b.Polyhedron.Radius > 0, "backdrop.polyhedron.radius must be positive, got %v", b.Polyhedron.Radius)
	check(b.Polyhedron.Detail >= 0 && b.Polyhedron.Detail <= 5, "backdrop.polyhedron.detail must be in [0, 5], got %d", b.Polyhedron.Detail)

	check(b.Torus.Radius > 0 && b.Torus.Tube > 0, "backdrop.torus radii must be positive, got %v/%v", b.Torus.Radius, b.Torus.Tube)
	check(b.Torus.RadialSegments >= 3 && b.Torus.TubularSegments >= 3,
		"backdrop.torus needs at least 3 segments, got %d/%d", b.Torus.RadialSegments, b.Torus.TubularSegments)

	for name, m := range map[string]MaterialConfig{
		"particles":  b.Particles.Material,
		"polyhedron": b.Polyhedron.Material,
		"torus":      b.Torus.Material,
	} {
		check(m.Opacity >= 0 && m.Opacity <= 1, "backdrop.%s.material.opacity must be in [0, 1], got %v", name, m.Opacity)
	}

	return errors.Join(errs...)
}
