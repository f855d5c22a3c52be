package bounce

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Default header geometry, in density-independent units.
const (
	DefaultMinTopHeight      = 120
	DefaultMaxTopHeight      = 300
	DefaultTopScrollDistance = 80
)

var (
	// ErrMissingPanel is returned when the top or bottom panel id is not configured.
	ErrMissingPanel = errors.New("bounce: missing panel id")

	// ErrInvalidHeights is returned when the header heights cannot form a scroll range.
	ErrInvalidHeights = errors.New("bounce: invalid header heights")

	// ErrInvalidDensity is returned for a non-positive display density.
	ErrInvalidDensity = errors.New("bounce: invalid density")
)

// PanelID names a child panel of the host's view tree.
type PanelID string

// Config configures a header-reveal view. All lengths are in pixels; use
// DefaultConfig to scale the defaults by display density.
// Config is read once at construction and never mutated by the view.
type Config struct {
	MinTopHeight      int
	MaxTopHeight      int
	TopScrollDistance int

	TopPanel    PanelID
	StablePanel PanelID // optional
	BottomPanel PanelID

	// Explicit panel heights. Zero means "use the preferred height, capped by MaxTopHeight".
	TopHeight    int
	StableHeight int
}

// DefaultConfig returns the default geometry scaled by density, with no
// panels configured.
func DefaultConfig(density float64) Config {
	return Config{
		MinTopHeight:      px(DefaultMinTopHeight, density),
		MaxTopHeight:      px(DefaultMaxTopHeight, density),
		TopScrollDistance: px(DefaultTopScrollDistance, density),
	}
}

// px converts density-independent units to whole pixels, truncating.
func px(dp, density float64) int {
	return int(dp * density)
}

// Validate checks that the config can build a view.
func (c Config) Validate() error {
	if c.TopPanel == "" {
		return fmt.Errorf("%w: top panel not set", ErrMissingPanel)
	}
	if c.BottomPanel == "" {
		return fmt.Errorf("%w: bottom panel not set", ErrMissingPanel)
	}
	if c.MinTopHeight <= 0 || c.MaxTopHeight <= c.MinTopHeight {
		return fmt.Errorf("%w: min %d, max %d", ErrInvalidHeights, c.MinTopHeight, c.MaxTopHeight)
	}
	if c.TopScrollDistance < 0 {
		return fmt.Errorf("%w: top scroll distance %d", ErrInvalidHeights, c.TopScrollDistance)
	}
	if c.TopHeight < 0 || c.StableHeight < 0 {
		return fmt.Errorf("%w: negative panel height", ErrInvalidHeights)
	}
	return nil
}

// Range returns the scroll range the config allows.
func (c Config) Range() ScrollRange {
	return ScrollRange{Min: c.MinTopHeight - c.MaxTopHeight, Max: 0}
}

// ============================================================================
// TOML loading
// ============================================================================

// fileConfig is the on-disk shape of the [bounce] table. Lengths are in
// density-independent units; zero keeps the default.
type fileConfig struct {
	Bounce struct {
		Density           float64 `toml:"density"`
		MinTopHeight      float64 `toml:"min_top_height"`
		MaxTopHeight      float64 `toml:"max_top_height"`
		TopScrollDistance float64 `toml:"top_scroll_distance"`
		TopHeight         float64 `toml:"top_height"`
		StableHeight      float64 `toml:"stable_height"`
		TopPanel          string  `toml:"top_panel"`
		StablePanel       string  `toml:"stable_panel"`
		BottomPanel       string  `toml:"bottom_panel"`
	} `toml:"bounce"`
}

// LoadConfig reads and validates the [bounce] table of a TOML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates the [bounce] table of a TOML document.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	b := fc.Bounce
	density := b.Density
	if density == 0 {
		density = 1
	}
	if density < 0 {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}

	cfg := DefaultConfig(density)
	if b.MinTopHeight != 0 {
		cfg.MinTopHeight = px(b.MinTopHeight, density)
	}
	if b.MaxTopHeight != 0 {
		cfg.MaxTopHeight = px(b.MaxTopHeight, density)
	}
	if b.TopScrollDistance != 0 {
		cfg.TopScrollDistance = px(b.TopScrollDistance, density)
	}
	cfg.TopHeight = px(b.TopHeight, density)
	cfg.StableHeight = px(b.StableHeight, density)
	cfg.TopPanel = PanelID(b.TopPanel)
	cfg.StablePanel = PanelID(b.StablePanel)
	cfg.BottomPanel = PanelID(b.BottomPanel)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
