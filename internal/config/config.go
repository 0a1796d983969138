// Package config holds the application configuration and the layering of
// its sources: command-line flags, LAGCALC_ environment variables, an
// optional YAML file and built-in defaults, in that order of priority.
package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"

	apperrors "github.com/agbru/lagcalc/internal/errors"
	"github.com/agbru/lagcalc/internal/overlay"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "LAGCALC_"

// Plot modes selecting the render sink.
const (
	PlotAuto = "auto"
	PlotTUI  = "tui"
	PlotText = "text"
	PlotNone = "none"
)

// Defaults for numeric settings.
const (
	DefaultHeight  = 16
	DefaultSamples = 1000
	MinHeight      = 4
	MinSamples     = 2
	MaxWidth       = 1000
)

var (
	plotModes  = []string{PlotAuto, PlotTUI, PlotText, PlotNone}
	themes     = []string{"dark", "light", "orange", "none"}
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "disabled"}
	logFormats = []string{"console", "json", "plain"}
)

// AppConfig aggregates every runtime setting.
type AppConfig struct {
	// Plot selects the render sink: auto, tui, text or none.
	Plot string
	// Width of the text chart in cells; 0 means terminal width.
	Width int
	// Height of the chart in rows.
	Height int
	// Samples per plotted curve.
	Samples int
	// Overlay is the reference curve active at session start.
	Overlay int
	// InputFile replays commands from a file instead of stdin.
	InputFile string
	NoColor   bool
	Theme     string
	LogLevel  string
	LogFormat string
	// MetricsFile receives the prometheus text exposition at exit.
	MetricsFile string
	Verbose     bool
	ConfigFile  string
}

// Default returns the configuration used when no source overrides a value.
func Default() AppConfig {
	return AppConfig{
		Plot:      PlotAuto,
		Height:    DefaultHeight,
		Samples:   DefaultSamples,
		Theme:     "dark",
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// RegisterFlags binds every setting to a flag on fs, using the current
// values of cfg as flag defaults.
func RegisterFlags(fs *pflag.FlagSet, cfg *AppConfig) {
	fs.StringVar(&cfg.Plot, "plot", cfg.Plot, "Plot mode: auto, tui, text or none")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Text chart width in cells (0 = terminal width)")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "Chart height in rows")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "Samples per plotted curve")
	fs.IntVar(&cfg.Overlay, "overlay", cfg.Overlay, "Initial overlay curve (0 = none)")
	fs.StringVar(&cfg.InputFile, "input", cfg.InputFile, "Read commands from a file instead of stdin")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored output")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Color theme: dark, light, orange or none")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error or disabled")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: console, json or plain")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write prometheus metrics to this file at exit")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Print computation timings")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML configuration file")
}

// Finalize layers the config file and environment over the parsed flags
// and validates the result. Values whose flag was set explicitly are never
// overridden.
func Finalize(cfg *AppConfig, fs *pflag.FlagSet) error {
	if !fs.Changed("config") {
		if v := os.Getenv(EnvPrefix + "CONFIG"); v != "" {
			cfg.ConfigFile = v
		}
	}
	if cfg.ConfigFile != "" {
		values, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		if err := applyFileValues(cfg, values, fs); err != nil {
			return err
		}
	}
	applyEnvOverrides(cfg, fs)
	return Validate(*cfg)
}

// Validate checks every setting and returns a ValidationError for the
// first invalid one.
func Validate(cfg AppConfig) error {
	switch {
	case !slices.Contains(plotModes, cfg.Plot):
		return apperrors.ValidationError{Field: "plot", Message: fmt.Sprintf("unknown mode %q (want one of %v)", cfg.Plot, plotModes)}
	case cfg.Width < 0 || cfg.Width > MaxWidth:
		return apperrors.ValidationError{Field: "width", Message: fmt.Sprintf("must be between 0 and %d", MaxWidth)}
	case cfg.Height < MinHeight:
		return apperrors.ValidationError{Field: "height", Message: fmt.Sprintf("must be at least %d", MinHeight)}
	case cfg.Samples < MinSamples:
		return apperrors.ValidationError{Field: "samples", Message: fmt.Sprintf("must be at least %d", MinSamples)}
	case !overlay.Valid(overlay.ID(cfg.Overlay)):
		return apperrors.ValidationError{Field: "overlay", Message: fmt.Sprintf("must be between 0 and %d", overlay.Count)}
	case !slices.Contains(themes, cfg.Theme):
		return apperrors.ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q", cfg.Theme)}
	case !slices.Contains(logLevels, cfg.LogLevel):
		return apperrors.ValidationError{Field: "log-level", Message: fmt.Sprintf("unknown level %q", cfg.LogLevel)}
	case !slices.Contains(logFormats, cfg.LogFormat):
		return apperrors.ValidationError{Field: "log-format", Message: fmt.Sprintf("unknown format %q", cfg.LogFormat)}
	}
	return nil
}

// PlotModes lists the accepted --plot values.
func PlotModes() []string { return slices.Clone(plotModes) }

// Themes lists the accepted --theme values.
func Themes() []string { return slices.Clone(themes) }

// LogLevels lists the accepted --log-level values.
func LogLevels() []string { return slices.Clone(logLevels) }

// LogFormats lists the accepted --log-format values.
func LogFormats() []string { return slices.Clone(logFormats) }
