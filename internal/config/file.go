package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/lagcalc/internal/errors"
)

// LoadFile reads a YAML configuration file into a map keyed by flag name.
// An empty file yields an empty map.
func LoadFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("reading config file %s: %v", path, err)
	}
	values := map[string]any{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}
	return values, nil
}

// fileSetters maps a config file key to the function storing its value.
var fileSetters = map[string]func(*AppConfig, any) error{
	"plot":         stringSetter(func(c *AppConfig, s string) { c.Plot = s }),
	"width":        intSetter(func(c *AppConfig, n int) { c.Width = n }),
	"height":       intSetter(func(c *AppConfig, n int) { c.Height = n }),
	"samples":      intSetter(func(c *AppConfig, n int) { c.Samples = n }),
	"overlay":      intSetter(func(c *AppConfig, n int) { c.Overlay = n }),
	"input":        stringSetter(func(c *AppConfig, s string) { c.InputFile = s }),
	"no-color":     boolSetter(func(c *AppConfig, b bool) { c.NoColor = b }),
	"theme":        stringSetter(func(c *AppConfig, s string) { c.Theme = s }),
	"log-level":    stringSetter(func(c *AppConfig, s string) { c.LogLevel = s }),
	"log-format":   stringSetter(func(c *AppConfig, s string) { c.LogFormat = s }),
	"metrics-file": stringSetter(func(c *AppConfig, s string) { c.MetricsFile = s }),
	"verbose":      boolSetter(func(c *AppConfig, b bool) { c.Verbose = b }),
}

func stringSetter(set func(*AppConfig, string)) func(*AppConfig, any) error {
	return func(c *AppConfig, v any) error {
		s, err := cast.ToStringE(v)
		if err == nil {
			set(c, s)
		}
		return err
	}
}

func intSetter(set func(*AppConfig, int)) func(*AppConfig, any) error {
	return func(c *AppConfig, v any) error {
		n, err := cast.ToIntE(v)
		if err == nil {
			set(c, n)
		}
		return err
	}
}

func boolSetter(set func(*AppConfig, bool)) func(*AppConfig, any) error {
	return func(c *AppConfig, v any) error {
		b, err := cast.ToBoolE(v)
		if err == nil {
			set(c, b)
		}
		return err
	}
}

// applyFileValues stores file values for every key whose flag was not set
// explicitly. Unknown keys and values of the wrong type are configuration
// errors.
func applyFileValues(cfg *AppConfig, values map[string]any, fs *pflag.FlagSet) error {
	for key, raw := range values {
		set, ok := fileSetters[key]
		if !ok {
			return apperrors.NewConfigError("config file: unknown key %q", key)
		}
		if isFlagSetAny(fs, key) {
			continue
		}
		if err := set(cfg, raw); err != nil {
			return apperrors.NewConfigError("config file: key %q: %v", key, err)
		}
	}
	return nil
}
