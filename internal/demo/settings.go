package demo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agiangrant/bounce"
)

// Panel ids the demo registers with the view.
const (
	HeaderPanel bounce.PanelID = "header"
	TitlePanel  bounce.PanelID = "title"
	ListPanel   bounce.PanelID = "list"
)

// Settings holds the terminal host's own options.
type Settings struct {
	// ConfigFile is a TOML file with a [bounce] table. Empty uses the
	// default geometry scaled by Density.
	ConfigFile    string        `mapstructure:"widget_config"`
	Density       float64       `mapstructure:"density"` // terminal rows per density-independent unit
	Items         int           `mapstructure:"items"`
	FrameInterval time.Duration `mapstructure:"frame_interval"`
	Label         string        `mapstructure:"label"`
	Debug         bool          `mapstructure:"debug"`
	DebugLog      string        `mapstructure:"debug_log"`
}

type settingsFile struct {
	Demo Settings `mapstructure:"demo"`
}

// LoadSettings reads the [demo] table from the config file and the
// environment. Env var overrides use prefix BOUNCE_, e.g. BOUNCE_DEMO_ITEMS.
func LoadSettings() (Settings, error) {
	v := viper.New()

	v.SetDefault("demo.widget_config", "")
	v.SetDefault("demo.density", 0.1)
	v.SetDefault("demo.items", 100)
	v.SetDefault("demo.frame_interval", "16ms")
	v.SetDefault("demo.label", "Bounce")
	v.SetDefault("demo.debug", false)
	v.SetDefault("demo.debug_log", "bounce-debug.log")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("BOUNCE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "bounce"))
		v.SetConfigName("demo")
	}

	v.SetEnvPrefix("BOUNCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The file is optional unless named explicitly.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read settings: %w", err)
		}
	}

	var f settingsFile
	if err := v.Unmarshal(&f); err != nil {
		return Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	s := f.Demo
	if s.Density <= 0 {
		return Settings{}, fmt.Errorf("%w: %v", bounce.ErrInvalidDensity, s.Density)
	}
	if s.FrameInterval <= 0 {
		s.FrameInterval = 16 * time.Millisecond
	}
	return s, nil
}

// WidgetConfig builds the view configuration for the demo's three panels.
func (s Settings) WidgetConfig() (bounce.Config, error) {
	if s.ConfigFile != "" {
		return bounce.LoadConfig(s.ConfigFile)
	}
	cfg := bounce.DefaultConfig(s.Density)
	cfg.TopPanel = HeaderPanel
	cfg.StablePanel = TitlePanel
	cfg.BottomPanel = ListPanel
	if err := cfg.Validate(); err != nil {
		return bounce.Config{}, err
	}
	return cfg, nil
}
