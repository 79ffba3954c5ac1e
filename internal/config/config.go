// Package config provides configuration types, defaults and loading for vimkit.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/vimkit/internal/engine"
	"github.com/zjrosen/vimkit/internal/log"
	"github.com/zjrosen/vimkit/internal/paths"
	"github.com/zjrosen/vimkit/internal/shared"
	"github.com/zjrosen/vimkit/internal/tracing"
	"github.com/zjrosen/vimkit/internal/ui/styles"
	"github.com/zjrosen/vimkit/internal/ui/toaster"
	"github.com/zjrosen/vimkit/internal/watcher"
)

// Config holds all configuration options for vimkit.
type Config struct {
	ZebraStripes   bool          `mapstructure:"zebra_stripes"`
	Clipboard      string        `mapstructure:"clipboard"` // auto (default), system, osc52, memory
	NoticeDuration time.Duration `mapstructure:"notice_duration"`
	Chords         ChordConfig   `mapstructure:"chords"`
	Gallery        GalleryConfig `mapstructure:"gallery"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Theme          ThemeConfig   `mapstructure:"theme"`
}

// ChordConfig holds the two-key chord windows.
type ChordConfig struct {
	DeleteTimeout time.Duration `mapstructure:"delete_timeout"`
	CopyTimeout   time.Duration `mapstructure:"copy_timeout"`
	GoTimeout     time.Duration `mapstructure:"go_timeout"`
	TickInterval  time.Duration `mapstructure:"tick_interval"`
}

// Timeouts converts the windows for the engine.
func (c ChordConfig) Timeouts() engine.Timeouts {
	return engine.Timeouts{Delete: c.DeleteTimeout, Copy: c.CopyTimeout, Go: c.GoTimeout}
}

// GalleryConfig configures the image gallery.
type GalleryConfig struct {
	Extensions []string      `mapstructure:"extensions"`
	Columns    int           `mapstructure:"columns"` // 0 fits the terminal width
	Debounce   time.Duration `mapstructure:"debounce"`
	Watch      bool          `mapstructure:"watch"`
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"` // none, file (default), stdout, otlp
	FilePath     string  `mapstructure:"file_path"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	SampleRate   float64 `mapstructure:"sample_rate"`
}

// Provider converts the settings for tracing.NewProvider. An empty file
// path falls back to ~/.config/vimkit/traces/traces.jsonl.
func (t TracingConfig) Provider() tracing.Config {
	cfg := tracing.DefaultConfig()
	cfg.Enabled = t.Enabled
	cfg.Exporter = t.Exporter
	cfg.FilePath = t.FilePath
	if cfg.FilePath == "" {
		cfg.FilePath = paths.TracesFile()
	}
	cfg.OTLPEndpoint = t.OTLPEndpoint
	cfg.SampleRate = t.SampleRate
	return cfg
}

// ThemeConfig overrides palette colors with hex values.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Visual    string `mapstructure:"visual"`
	Muted     string `mapstructure:"muted"`
	Zebra     string `mapstructure:"zebra"`
}

// Styles converts the theme for styles.ApplyTheme.
func (t ThemeConfig) Styles() styles.ThemeConfig {
	return styles.ThemeConfig{Highlight: t.Highlight, Visual: t.Visual, Muted: t.Muted, Zebra: t.Zebra}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	gallery := watcher.DefaultConfig("")
	return Config{
		ZebraStripes:   true,
		Clipboard:      shared.ClipboardAuto,
		NoticeDuration: toaster.DefaultDuration,
		Chords: ChordConfig{
			DeleteTimeout: engine.DefaultDeleteTimeout,
			CopyTimeout:   engine.DefaultCopyTimeout,
			GoTimeout:     engine.DefaultGoTimeout,
			TickInterval:  engine.DefaultTickInterval,
		},
		Gallery: GalleryConfig{
			Extensions: gallery.Extensions,
			Debounce:   gallery.DebounceDur,
			Watch:      true,
		},
		Tracing: TracingConfig{
			Exporter:     tracing.ExporterFile,
			OTLPEndpoint: tracing.DefaultOTLPEndpoint,
			SampleRate:   1.0,
		},
	}
}

// SetDefaults registers every default with v so partial files merge over them.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("zebra_stripes", d.ZebraStripes)
	v.SetDefault("clipboard", d.Clipboard)
	v.SetDefault("notice_duration", d.NoticeDuration)
	v.SetDefault("chords.delete_timeout", d.Chords.DeleteTimeout)
	v.SetDefault("chords.copy_timeout", d.Chords.CopyTimeout)
	v.SetDefault("chords.go_timeout", d.Chords.GoTimeout)
	v.SetDefault("chords.tick_interval", d.Chords.TickInterval)
	v.SetDefault("gallery.extensions", d.Gallery.Extensions)
	v.SetDefault("gallery.columns", d.Gallery.Columns)
	v.SetDefault("gallery.debounce", d.Gallery.Debounce)
	v.SetDefault("gallery.watch", d.Gallery.Watch)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
}

// Load reads path into v over the defaults and validates the result. An
// empty path loads the defaults alone.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to read config", err, "path", path)
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Loaded config", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks every section and joins the problems found.
func Validate(c Config) error {
	var errs []error

	modes := []string{shared.ClipboardAuto, shared.ClipboardSystem, shared.ClipboardOSC52, shared.ClipboardMemory}
	if c.Clipboard != "" && !slices.Contains(modes, strings.ToLower(c.Clipboard)) {
		errs = append(errs, fmt.Errorf("clipboard must be one of %s, got %q", strings.Join(modes, ", "), c.Clipboard))
	}
	if c.NoticeDuration < 0 {
		errs = append(errs, fmt.Errorf("notice_duration must not be negative, got %v", c.NoticeDuration))
	}
	for name, d := range map[string]time.Duration{
		"delete_timeout": c.Chords.DeleteTimeout,
		"copy_timeout":   c.Chords.CopyTimeout,
		"go_timeout":     c.Chords.GoTimeout,
		"tick_interval":  c.Chords.TickInterval,
	} {
		if d < 0 {
			errs = append(errs, fmt.Errorf("chords.%s must not be negative, got %v", name, d))
		}
	}
	if c.Gallery.Columns < 0 {
		errs = append(errs, fmt.Errorf("gallery.columns must not be negative, got %d", c.Gallery.Columns))
	}
	for _, ext := range c.Gallery.Extensions {
		if strings.TrimSpace(strings.TrimPrefix(ext, ".")) == "" {
			errs = append(errs, fmt.Errorf("gallery.extensions contains an empty entry"))
			break
		}
	}
	if err := c.Tracing.Provider().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
