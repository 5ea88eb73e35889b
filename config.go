package colorcombine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "COLORCOMBINE_"

// MaxCount is the largest token count Validate accepts.
const MaxCount = 10000

// Config holds the game settings.
type Config struct {
	// Seed seeds the random source. Zero picks a time-based seed.
	Seed uint64 `yaml:"seed" env:"SEED"`

	Count      int     `yaml:"count" env:"COUNT"`
	Radius     float64 `yaml:"radius" env:"RADIUS"`
	AreaWidth  float64 `yaml:"area_width" env:"AREA_WIDTH"`
	AreaHeight float64 `yaml:"area_height" env:"AREA_HEIGHT"`

	Title        string `yaml:"title" env:"TITLE"`
	WindowWidth  int    `yaml:"window_width" env:"WINDOW_WIDTH"`
	WindowHeight int    `yaml:"window_height" env:"WINDOW_HEIGHT"`
	TPS          int    `yaml:"tps" env:"TPS"`

	Debug      bool `yaml:"debug" env:"DEBUG"`
	Audio      bool `yaml:"audio" env:"AUDIO"`
	GrabOffset bool `yaml:"grab_offset" env:"GRAB_OFFSET"`

	// Volume is the merge chime volume in [0, 1].
	Volume float64 `yaml:"volume" env:"VOLUME"`

	Band ColorBand `yaml:"band" envPrefix:"BAND_"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		Count:        DefaultPopulateConfig.Count,
		Radius:       DefaultPopulateConfig.Radius,
		AreaWidth:    DefaultPopulateConfig.Area.X,
		AreaHeight:   DefaultPopulateConfig.Area.Y,
		Title:        "Cheesy color combine challenge",
		WindowWidth:  1200,
		WindowHeight: 800,
		TPS:          defaultTPS,
		Audio:        true,
		Volume:       0.5,
		Band:         DefaultColorBand,
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file at path (if
// path is not empty), then environment variables prefixed with EnvPrefix,
// and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := ParseConfigYAML(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfigYAML decodes YAML into cfg. Keys absent from data keep their
// current values.
func ParseConfigYAML(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Validate reports settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Count < 0 {
		errs = append(errs, fmt.Errorf("count must not be negative, got %d", c.Count))
	}
	if c.Count > MaxCount {
		errs = append(errs, fmt.Errorf("count must be at most %d, got %d", MaxCount, c.Count))
	}
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %v", c.Radius))
	}
	if c.AreaWidth <= 2*c.Radius || c.AreaHeight <= 2*c.Radius {
		errs = append(errs, fmt.Errorf("area %vx%v must exceed the token diameter %v",
			c.AreaWidth, c.AreaHeight, 2*c.Radius))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.Volume < 0 || c.Volume > 1 {
		errs = append(errs, fmt.Errorf("volume must be in [0, 1], got %v", c.Volume))
	}
	if c.Band.SatMin > c.Band.SatMax || c.Band.LightMin > c.Band.LightMax {
		errs = append(errs, errors.New("color band minimum exceeds maximum"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Populate returns the board settings.
func (c Config) Populate() PopulateConfig {
	return PopulateConfig{
		Count:  c.Count,
		Radius: c.Radius,
		Area:   Vec2{c.AreaWidth, c.AreaHeight},
		Band:   c.Band,
	}
}

// NewRand returns a PCG-backed generator seeded from Seed, or from the
// clock when Seed is zero.
func (c Config) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewRand(seed)
}

// NewRand returns a deterministic PCG-backed generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
