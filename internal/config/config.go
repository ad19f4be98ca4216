package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/linesim/internal/lines"
	"github.com/san-kum/linesim/internal/policy"
)

const (
	DefaultPolicy = policy.NameMove
	DefaultWeight = 4.0
	DefaultColor  = "#ffffff"
	DefaultTicks  = 1000
	DefaultFPS    = 60
	DefaultWidth  = 1000
	DefaultHeight = 800
)

type Config struct {
	Policy     string           `yaml:"policy"`
	Count      int              `yaml:"count"`
	Weight     float32          `yaml:"weight"`
	Color      string           `yaml:"color"`
	Seed       int64            `yaml:"seed"`
	Ticks      int              `yaml:"ticks"`
	FPS        int              `yaml:"fps"`
	Width      int              `yaml:"width"`
	Height     int              `yaml:"height"`
	Generation GenerationConfig `yaml:"generation"`
	Sweep      SweepConfig      `yaml:"sweep"`
	Pulse      PulseConfig      `yaml:"pulse"`
}

type GenerationConfig struct {
	XMin      float32 `yaml:"x_min"`
	XMax      float32 `yaml:"x_max"`
	YMin      float32 `yaml:"y_min"`
	YMax      float32 `yaml:"y_max"`
	LengthMin float32 `yaml:"length_min"`
	LengthMax float32 `yaml:"length_max"`
	RateMax   float32 `yaml:"rate_max"`
}

type SweepConfig struct {
	Direction string  `yaml:"direction"`
	Threshold uint8   `yaml:"threshold"`
	Step      float32 `yaml:"step"`
}

type PulseConfig struct {
	MaxStep int `yaml:"max_step"`
}

func DefaultConfig() *Config {
	return &Config{
		Policy: DefaultPolicy,
		Count:  lines.DefaultCount,
		Weight: DefaultWeight,
		Color:  DefaultColor,
		Ticks:  DefaultTicks,
		FPS:    DefaultFPS,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Generation: GenerationConfig{
			XMin:      -499,
			XMax:      499,
			YMin:      -399,
			YMax:      399,
			LengthMin: lines.DefaultLength,
			LengthMax: lines.DefaultLength,
			RateMax:   lines.DefaultRateMax,
		},
		Sweep: SweepConfig{
			Direction: policy.Up.String(),
			Threshold: policy.DefaultThreshold,
			Step:      policy.DefaultSweepStep,
		},
		Pulse: PulseConfig{MaxStep: policy.DefaultMaxStep},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first startup error in c. The policy name is
// normalised to its canonical form.
func (c *Config) Validate() error {
	name, err := policy.Parse(c.Policy)
	if err != nil {
		return err
	}
	c.Policy = name

	if c.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %g", c.Weight)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if _, err := ParseColor(c.Color); err != nil {
		return err
	}
	if _, err := policy.ParseDirection(c.Sweep.Direction); err != nil {
		return err
	}
	if c.Sweep.Threshold == 0 {
		return fmt.Errorf("sweep threshold must be positive")
	}
	if c.Pulse.MaxStep < 0 {
		return fmt.Errorf("pulse max step must not be negative, got %d", c.Pulse.MaxStep)
	}
	return c.GenConfig().Validate()
}

func (c *Config) GenConfig() lines.GenConfig {
	g := c.Generation
	return lines.GenConfig{
		Count:   c.Count,
		XRange:  lines.Range{Min: g.XMin, Max: g.XMax},
		YRange:  lines.Range{Min: g.YMin, Max: g.YMax},
		Length:  lines.Range{Min: g.LengthMin, Max: g.LengthMax},
		RateMax: g.RateMax,
	}
}

func (c *Config) Bounds() lines.Bounds {
	return lines.BoundsFromSize(float32(c.Width), float32(c.Height))
}

func (c *Config) PolicyParams() policy.Params {
	p := policy.DefaultParams()
	if d, err := policy.ParseDirection(c.Sweep.Direction); err == nil {
		p.Direction = d
	}
	p.Threshold = c.Sweep.Threshold
	p.Step = c.Sweep.Step
	p.MaxStep = c.Pulse.MaxStep
	return p
}

// ParseColor accepts #rgb or #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color: %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color: %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
