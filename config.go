package catlog

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

// Config is the declarative TOML shape for runtime settings:
//
//	default_category = "LogGame"
//	telemetry = false
//
//	[categories]
//	LogGame = "Verbose"
//	LogNet = "Warning"
//
//	[[targets]]
//	kind = "console"
//	color = true
//	time_format = "15:04:05"
//
//	[[targets]]
//	kind = "overlay"
//	duration = "5s"
type Config struct {
	DefaultCategory string            `toml:"default_category"`
	Telemetry       bool              `toml:"telemetry"`
	Categories      map[string]string `toml:"categories"`
	Targets         []TargetConfig    `toml:"targets"`
}

// TargetConfig describes one target in the chain. Only Kind is mandatory;
// the remaining knobs apply where the kind supports them.
type TargetConfig struct {
	Kind       string `toml:"kind"`        // console | slog | overlay | panel
	TimeFormat string `toml:"time_format"` // console: time.Format layout
	Prefix     bool   `toml:"prefix"`      // console: short level prefixes
	Color      bool   `toml:"color"`       // console: ANSI colors / overlay: foreground
	Code       bool   `toml:"code"`        // console: numeric verbosity code
	Duration   string `toml:"duration"`    // overlay: time.ParseDuration
	Foreground string `toml:"foreground"`  // overlay: lipgloss color
}

// VerbosityFromName maps a full verbosity name (case-insensitive) back to
// its value.
func VerbosityFromName(name string) (Verbosity, error) {
	for v, n := range VerbFullNames {
		if strings.EqualFold(name, n) {
			return Verbosity(v), nil
		}
	}
	return VRB_NONE, fmt.Errorf("unknown verbosity %q", name)
}

// LoadConfig reads and parses a TOML settings file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses TOML settings data.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Build turns the declarative config into installable settings, applying the
// per-category thresholds as a side effect (threshold state lives on the
// category singletons, not on the settings object). The whole config is
// validated first: a config with a bad target or verbosity name changes no
// category state at all.
func (cfg *Config) Build() (*Settings, error) {
	thresholds := make(map[string]Verbosity, len(cfg.Categories))
	for name, verb := range cfg.Categories {
		v, err := VerbosityFromName(verb)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		thresholds[name] = v
	}
	targets := make([]Target, 0, len(cfg.Targets))
	for i := range cfg.Targets {
		t, err := cfg.Targets[i].build()
		if err != nil {
			return nil, fmt.Errorf("target #%d: %w", i, err)
		}
		targets = append(targets, t)
	}

	// nothing can fail past this point
	for name, v := range thresholds {
		GetCategory(name).SetVerbosity(v)
	}
	var defcat *Category
	if cfg.DefaultCategory != "" {
		defcat = GetCategory(cfg.DefaultCategory)
	}
	s := NewSettings(defcat, targets...)
	s.Telemetry = cfg.Telemetry
	return s, nil
}

// Apply builds the settings and installs them into the core.
func (cfg *Config) Apply() error {
	s, err := cfg.Build()
	if err != nil {
		return err
	}
	Get().ApplySettings(s)
	return nil
}

// ApplyConfigFile is the load+build+install one-liner.
func ApplyConfigFile(path string) error {
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	return cfg.Apply()
}

func (tc *TargetConfig) build() (Target, error) {
	switch strings.ToLower(tc.Kind) {
	case "console":
		t := NewConsoleTarget(os.Stdout)
		if tc.TimeFormat != "" {
			t.WithTimeFormat(tc.TimeFormat)
		}
		if tc.Prefix {
			t.WithPrefixMap(VerbShortNames)
		}
		if tc.Color {
			t.WithColorMap(VerbColorOnBlackMap)
		}
		if tc.Code {
			t.WithVerbosityCode()
		}
		return t, nil
	case "slog":
		return NewSlogTarget(nil), nil
	case "overlay":
		t := NewOverlayTarget(os.Stdout)
		if tc.Duration != "" {
			d, err := time.ParseDuration(tc.Duration)
			if err != nil {
				return nil, fmt.Errorf("overlay duration: %w", err)
			}
			t.WithDuration(d)
		}
		if tc.Foreground != "" {
			t.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(tc.Foreground)))
		}
		return t, nil
	case "panel":
		return NewPanelTarget(NewMemoryPanel()), nil
	default:
		return nil, fmt.Errorf("unknown target kind %q", tc.Kind)
	}
}
