// Package config loads runtime settings from defaults, an optional file,
// ORRERY_ environment variables and bound command line flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/engine"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// EnvPrefix is prepended to environment overrides, e.g. ORRERY_DISPLAY_FPS
const EnvPrefix = "ORRERY"

// Keys, also used for flag binding
const (
	KeyFPS           = "display.fps"
	KeyCellSize      = "display.cell_size"
	KeyDotThreshold  = "display.dot_threshold"
	KeySpeed         = "simulation.speed"
	KeySeed          = "simulation.seed"
	KeyAudioEnabled  = "audio.enabled"
	KeyAudioVolume   = "audio.volume"
	KeyShareAddr     = "share.addr"
	KeyShareInterval = "share.interval"
	KeyDebug         = "debug"
	keyTheme         = "theme"
)

// Display controls the terminal raster
type Display struct {
	FPS          int
	CellSize     int // Logical pixels per cell column
	DotThreshold float64
}

// Simulation holds initial simulation state
type Simulation struct {
	Speed float64
	Seed  uint64 // 0 seeds from the clock
}

// Audio toggles cues
type Audio struct {
	Enabled bool
	Volume  float64
}

// Share configures the live feed, empty Addr disables it
type Share struct {
	Addr     string
	Interval time.Duration
}

// Config is the complete runtime configuration
type Config struct {
	Display    Display
	Simulation Simulation
	Theme      map[string]string // Paint overrides keyed by engine.ThemeKeys
	Audio      Audio
	Share      Share
	Debug      bool
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Display: Display{
			FPS:          60,
			CellSize:     constants.DefaultCellWidth,
			DotThreshold: constants.DotAlphaThreshold,
		},
		Simulation: Simulation{Speed: 1},
		Theme:      map[string]string{},
		Audio:      Audio{Volume: 0.5},
		Share:      Share{Interval: constants.ShareInterval},
	}
}

// FrameInterval converts FPS to a ticker period
func (c Config) FrameInterval() time.Duration {
	if c.Display.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Display.FPS)
}

// Validate reports the first out-of-range setting
func (c Config) Validate() error {
	switch {
	case c.Display.FPS < 1 || c.Display.FPS > 240:
		return fmt.Errorf("%w: %s %d not in [1, 240]", ErrInvalid, KeyFPS, c.Display.FPS)
	case c.Display.CellSize < 2 || c.Display.CellSize > 64:
		return fmt.Errorf("%w: %s %d not in [2, 64]", ErrInvalid, KeyCellSize, c.Display.CellSize)
	case c.Display.DotThreshold <= 0 || c.Display.DotThreshold > 1:
		return fmt.Errorf("%w: %s %g not in (0, 1]", ErrInvalid, KeyDotThreshold, c.Display.DotThreshold)
	case c.Simulation.Speed < constants.SpeedMin || c.Simulation.Speed > constants.SpeedMax:
		return fmt.Errorf("%w: %s %g not in [%g, %g]", ErrInvalid, KeySpeed,
			c.Simulation.Speed, constants.SpeedMin, constants.SpeedMax)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: %s %g not in [0, 1]", ErrInvalid, KeyAudioVolume, c.Audio.Volume)
	case c.Share.Addr != "" && c.Share.Interval < 10*time.Millisecond:
		return fmt.Errorf("%w: %s %s below 10ms", ErrInvalid, KeyShareInterval, c.Share.Interval)
	}

	// Apply to a scratch theme so unknown keys and bad paints surface here
	t := engine.DefaultTheme()
	for k, v := range c.Theme {
		if err := t.Override(k, v); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// NewViper returns a viper instance seeded with defaults and env binding
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault(KeyFPS, d.Display.FPS)
	v.SetDefault(KeyCellSize, d.Display.CellSize)
	v.SetDefault(KeyDotThreshold, d.Display.DotThreshold)
	v.SetDefault(KeySpeed, d.Simulation.Speed)
	v.SetDefault(KeySeed, d.Simulation.Seed)
	v.SetDefault(KeyAudioEnabled, d.Audio.Enabled)
	v.SetDefault(KeyAudioVolume, d.Audio.Volume)
	v.SetDefault(KeyShareAddr, d.Share.Addr)
	v.SetDefault(KeyShareInterval, d.Share.Interval)
	v.SetDefault(KeyDebug, d.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path (if not empty) into v and decodes the result
// A missing explicit file is an error; format follows the extension
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := Config{
		Display: Display{
			FPS:          v.GetInt(KeyFPS),
			CellSize:     v.GetInt(KeyCellSize),
			DotThreshold: v.GetFloat64(KeyDotThreshold),
		},
		Simulation: Simulation{
			Speed: v.GetFloat64(KeySpeed),
			Seed:  v.GetUint64(KeySeed),
		},
		Theme: v.GetStringMapString(keyTheme),
		Audio: Audio{
			Enabled: v.GetBool(KeyAudioEnabled),
			Volume:  v.GetFloat64(KeyAudioVolume),
		},
		Share: Share{
			Addr:     v.GetString(KeyShareAddr),
			Interval: v.GetDuration(KeyShareInterval),
		},
		Debug: v.GetBool(KeyDebug),
	}
	if c.Theme == nil {
		c.Theme = map[string]string{}
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
