package config

import (
	"fmt"
	"image/color"
	"strings"

	"go-slideback/pkg/render"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Settings are the user-tunable options shared by the CLI and the demo.
type Settings struct {
	Side       string          `mapstructure:"side"`
	Background string          `mapstructure:"background"`
	Arrow      string          `mapstructure:"arrow"`
	Density    float64         `mapstructure:"density"`
	Logging    LoggingSettings `mapstructure:"logging"`

	BackgroundColor color.NRGBA `mapstructure:"-"`
	ArrowColor      color.NRGBA `mapstructure:"-"`
}

type LoggingSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flag name -> settings key
var flagKeys = map[string]string{
	"side":       "side",
	"bg":         "background",
	"arrow":      "arrow",
	"density":    "density",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// Load reads settings from defaults, an optional config file, SLIDEBACK_*
// environment variables and flags, in increasing priority. path may be
// empty; flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SLIDEBACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("side", "left")
	v.SetDefault("background", render.FormatHexColor(DefaultBackgroundColor))
	v.SetDefault("arrow", render.FormatHexColor(DefaultArrowColor))
	v.SetDefault("density", DefaultDensity)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func (s *Settings) validate() error {
	s.Side = strings.ToLower(strings.TrimSpace(s.Side))
	if s.Side != "left" && s.Side != "right" {
		return fmt.Errorf("side must be left or right, got %q", s.Side)
	}
	if s.Density <= 0 {
		return fmt.Errorf("density must be positive, got %v", s.Density)
	}

	var err error
	if s.BackgroundColor, err = render.ParseHexColor(s.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if s.ArrowColor, err = render.ParseHexColor(s.Arrow); err != nil {
		return fmt.Errorf("arrow: %w", err)
	}
	return nil
}
