// This file contains environment variable utilities for configuration override.

package config

import (
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
)

// isFlagSetAny reports whether any of the named flags was set on the
// command line.
func isFlagSetAny(fs *pflag.FlagSet, names ...string) bool {
	for _, name := range names {
		if f := fs.Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the LAGCALC_ prefix) to the flag
// name(s) it shadows and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

// envOverrides is the declarative table of all environment variable overrides.
var envOverrides = []envOverride{
	// Numeric overrides
	{"WIDTH", []string{"width"}, func(c *AppConfig, v string) {
		if parsed, err := cast.ToIntE(v); err == nil {
			c.Width = parsed
		}
	}},
	{"HEIGHT", []string{"height"}, func(c *AppConfig, v string) {
		if parsed, err := cast.ToIntE(v); err == nil {
			c.Height = parsed
		}
	}},
	{"SAMPLES", []string{"samples"}, func(c *AppConfig, v string) {
		if parsed, err := cast.ToIntE(v); err == nil {
			c.Samples = parsed
		}
	}},
	{"OVERLAY", []string{"overlay"}, func(c *AppConfig, v string) {
		if parsed, err := cast.ToIntE(v); err == nil {
			c.Overlay = parsed
		}
	}},

	// String overrides
	{"PLOT", []string{"plot"}, func(c *AppConfig, v string) {
		c.Plot = strings.ToLower(v)
	}},
	{"INPUT", []string{"input"}, func(c *AppConfig, v string) {
		c.InputFile = v
	}},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) {
		c.Theme = strings.ToLower(v)
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = strings.ToLower(v)
	}},
	{"LOG_FORMAT", []string{"log-format"}, func(c *AppConfig, v string) {
		c.LogFormat = strings.ToLower(v)
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) {
		c.MetricsFile = v
	}},

	// Boolean overrides
	{"NO_COLOR_OUTPUT", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
	{"VERBOSE", []string{"verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// Unparsable numeric values are ignored and leave the current value in place.
func applyEnvOverrides(config *AppConfig, fs *pflag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(config, val)
		}
	}
}
