// Package config loads the portfolio's tunables from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// AppName is the storage namespace used for persisted data.
const AppName = "portfolio_visual"

// Config holds every tunable of the portfolio page.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Typewriter TypewriterConfig `yaml:"typewriter"`
	Reveal     RevealConfig     `yaml:"reveal"`
	Skills     SkillsConfig     `yaml:"skills"`
	Loader     LoaderConfig     `yaml:"loader"`
	Glow       GlowConfig       `yaml:"glow"`
	Hover      HoverConfig      `yaml:"hover"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Nav        NavConfig        `yaml:"nav"`
	Sound      SoundConfig      `yaml:"sound"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	Background string `yaml:"background"`
}

// ParticlesConfig holds the background field parameters.
type ParticlesConfig struct {
	Count        int     `yaml:"count"`
	MaxSpeed     float64 `yaml:"max_speed"` // per velocity component, units/frame
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	MinOpacity   float64 `yaml:"min_opacity"`
	MaxOpacity   float64 `yaml:"max_opacity"`
	LinkDistance float64 `yaml:"link_distance"`
	LinkAlpha    float64 `yaml:"link_alpha"` // alpha of a link between coincident particles
	Accent       string  `yaml:"accent"`
}

// TypewriterConfig holds the hero label cycling parameters.
type TypewriterConfig struct {
	Strings       []string `yaml:"strings"`
	TypeSpeedMS   int      `yaml:"type_speed_ms"`
	BackSpeedMS   int      `yaml:"back_speed_ms"`
	BackDelayMS   int      `yaml:"back_delay_ms"`
	Loop          bool     `yaml:"loop"`
	Cursor        string   `yaml:"cursor"`
	CursorBlinkMS int      `yaml:"cursor_blink_ms"`
}

// RevealConfig holds scroll reveal parameters.
type RevealConfig struct {
	Threshold    float64 `yaml:"threshold"`     // visible fraction that triggers a reveal
	BottomMargin float64 `yaml:"bottom_margin"` // px removed from the bottom of the viewport
	Offset       float64 `yaml:"offset"`        // initial downward translation
	StaggerMS    int     `yaml:"stagger_ms"`
	TransitionMS int     `yaml:"transition_ms"`
}

// SkillAxis is one axis of the radar chart.
type SkillAxis struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// SkillsConfig holds the radar chart data.
type SkillsConfig struct {
	Max         float64     `yaml:"max"`
	SplitNumber int         `yaml:"split_number"`
	AnimationMS int         `yaml:"animation_ms"`
	Axes        []SkillAxis `yaml:"axes"`
}

// LoaderConfig holds the loading overlay timings.
type LoaderConfig struct {
	ShowMS int     `yaml:"show_ms"`
	FadeMS int     `yaml:"fade_ms"`
	Alpha  float64 `yaml:"alpha"`
	Text   string  `yaml:"text"`
}

// GlowConfig holds the colour cycling parameters.
type GlowConfig struct {
	IntervalMS int `yaml:"interval_ms"`
	Step       int `yaml:"step"`
}

// HoverConfig holds the card hover animation.
type HoverConfig struct {
	Scale      float64 `yaml:"scale"`
	RotateDeg  float64 `yaml:"rotate_deg"`
	DurationMS int     `yaml:"duration_ms"`
}

// ScrollConfig holds the smooth scroll spring.
type ScrollConfig struct {
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
	WheelStep float64 `yaml:"wheel_step"`
}

// NavLink is a navigation entry.
type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// NavConfig holds the navigation menu.
type NavConfig struct {
	Breakpoint int       `yaml:"breakpoint"` // below this window width the mobile toggle is shown
	Links      []NavLink `yaml:"links"`
}

// SoundConfig holds UI click tone settings.
type SoundConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	ClickHz    float64 `yaml:"click_hz"`
	ClickMS    int     `yaml:"click_ms"`
	SampleRate int     `yaml:"sample_rate"`
}

// TelemetryConfig holds frame timing settings.
type TelemetryConfig struct {
	WindowFrames int `yaml:"window_frames"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every inconsistent setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	p := c.Particles
	if p.Count <= 0 {
		errs = append(errs, fmt.Errorf("particles.count must be positive, got %d", p.Count))
	}
	if p.MinRadius <= 0 || p.MaxRadius < p.MinRadius {
		errs = append(errs, fmt.Errorf("particles radius range [%v, %v] is invalid", p.MinRadius, p.MaxRadius))
	}
	if p.MinOpacity < 0 || p.MaxOpacity > 1 || p.MaxOpacity < p.MinOpacity {
		errs = append(errs, fmt.Errorf("particles opacity range [%v, %v] is invalid", p.MinOpacity, p.MaxOpacity))
	}
	if p.LinkDistance <= 0 {
		errs = append(errs, fmt.Errorf("particles.link_distance must be positive, got %v", p.LinkDistance))
	}
	if p.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("particles.max_speed must not be negative, got %v", p.MaxSpeed))
	}
	if _, err := ParseColor(p.Accent); err != nil {
		errs = append(errs, fmt.Errorf("particles.accent: %w", err))
	}
	if len(c.Typewriter.Strings) == 0 {
		errs = append(errs, errors.New("typewriter.strings must not be empty"))
	}
	if c.Skills.Max <= 0 || len(c.Skills.Axes) < 3 {
		errs = append(errs, fmt.Errorf("skills needs max > 0 and at least 3 axes, got max=%v axes=%d", c.Skills.Max, len(c.Skills.Axes)))
	}
	if c.Glow.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("glow.interval_ms must be positive, got %d", c.Glow.IntervalMS))
	}
	return errors.Join(errs...)
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 3 && len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", hex)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return color.RGBA{}, fmt.Errorf("bad colour %q", hex)
		}
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	c := drawing.ColorFromHex(h)
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
}

// Millis converts a millisecond setting to a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
