package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agbru/lagcalc/internal/config"
	"github.com/agbru/lagcalc/internal/plot"
	apperrors "github.com/agbru/lagcalc/internal/errors"
	"github.com/agbru/lagcalc/internal/ui"
)

const parabolaScript = "0 0\n1 1\n2 4\nc\nx 3\nq\n"

func keepTheme(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func newApp(t *testing.T, script string, args ...string) (*Application, *bytes.Buffer) {
	t.Helper()
	keepTheme(t)
	var errBuf bytes.Buffer
	a, err := New(append([]string{"lagcalc"}, args...), &errBuf, WithInput(strings.NewReader(script)))
	require.NoError(t, err, "stderr: %s", errBuf.String())
	return a, &errBuf
}

func TestNew_ParsesFlags(t *testing.T) {
	a, _ := newApp(t, "", "--plot", "text", "--samples", "64", "--overlay", "3", "-v")

	assert.Equal(t, config.PlotText, a.Config.Plot)
	assert.Equal(t, 64, a.Config.Samples)
	assert.Equal(t, 3, a.Config.Overlay)
	assert.True(t, a.Config.Verbose)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{"help", []string{"--help"}, apperrors.ExitSuccess, "Usage:"},
		{"invalid plot mode", []string{"--plot", "svg"}, apperrors.ExitErrorConfig, "plot"},
		{"height too small", []string{"--height", "2"}, apperrors.ExitErrorConfig, "height"},
		{"unknown flag", []string{"--colour"}, apperrors.ExitErrorConfig, "colour"},
		{"bad number", []string{"--width", "wide"}, apperrors.ExitErrorConfig, "width"},
		{"positional argument", []string{"extra"}, apperrors.ExitErrorGeneric, "extra"},
		{"unknown shell", []string{"completion", "tcsh"}, apperrors.ExitErrorGeneric, "tcsh"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := New(append([]string{"lagcalc"}, tt.args...), &errBuf)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, ExitCode(err))
			assert.Contains(t, errBuf.String(), tt.wantOut)
		})
	}
}

func TestRun_TextSession(t *testing.T) {
	a, _ := newApp(t, parabolaScript, "--plot", "text", "--no-color", "--height", "6")
	var out bytes.Buffer

	code := a.Run(context.Background(), &out)

	require.Equal(t, apperrors.ExitSuccess, code)
	text := out.String()
	assert.Contains(t, text, "Welcome to the Lagrange polynomial calculator.")
	assert.Contains(t, text, "The polynomial formula is:\ny = + 1.0000*x^2")
	assert.Contains(t, text, "┤")
	assert.Contains(t, text, "points")
	assert.Contains(t, text, "y(3.0000) = 9.0000")
	assert.Contains(t, text, "Goodbye!")
}

func TestRun_InputFileAndMetrics(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "points.txt")
	require.NoError(t, os.WriteFile(script, []byte(parabolaScript), 0o600))
	metricsPath := filepath.Join(dir, "lagcalc.prom")

	a, _ := newApp(t, "", "--input", script, "--plot", "none", "--no-color", "--metrics-file", metricsPath)
	var out bytes.Buffer

	require.Equal(t, apperrors.ExitSuccess, a.Run(context.Background(), &out))
	assert.Contains(t, out.String(), "y(3.0000) = 9.0000")
	assert.NotContains(t, out.String(), "┤")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `lagcalc_commands_total{command="point"} 3`)
	assert.Contains(t, string(data), `lagcalc_interpolations_total{outcome="ok"} 1`)
}

func TestRun_MissingInputFile(t *testing.T) {
	a, errBuf := newApp(t, "", "--input", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Equal(t, apperrors.ExitErrorConfig, a.Run(context.Background(), &bytes.Buffer{}))
	assert.Contains(t, errBuf.String(), "opening input")
}

func TestRun_Canceled(t *testing.T) {
	a, _ := newApp(t, parabolaScript, "--plot", "none", "--no-color")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	assert.Equal(t, apperrors.ExitErrorCanceled, a.Run(ctx, &out))
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRun_Completion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			a, _ := newApp(t, "", "completion", shell)
			var out bytes.Buffer
			require.Equal(t, apperrors.ExitSuccess, a.Run(context.Background(), &out))
			assert.Contains(t, out.String(), "lagcalc")
		})
	}
}

func TestRun_Version(t *testing.T) {
	a, _ := newApp(t, "", "-V")
	var out bytes.Buffer
	require.Equal(t, apperrors.ExitSuccess, a.Run(context.Background(), &out))
	assert.True(t, strings.HasPrefix(out.String(), "lagcalc "+Version))
}

func TestNewRenderer_AutoFallsBackToText(t *testing.T) {
	a, _ := newApp(t, "")
	r := a.newRenderer(strings.NewReader(""), &bytes.Buffer{})
	assert.IsType(t, &plot.TextRenderer{}, r)
}

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"--version"}, true},
		{[]string{"--plot", "text", "-V"}, true},
		{[]string{"-v"}, false},
		{[]string{"--", "--version"}, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, apperrors.ExitSuccess, ExitCode(nil))
	assert.Equal(t, apperrors.ExitErrorConfig, ExitCode(apperrors.NewConfigError("bad")))
	assert.Equal(t, apperrors.ExitErrorConfig, ExitCode(apperrors.ValidationError{Field: "plot"}))
	assert.Equal(t, apperrors.ExitErrorGeneric, ExitCode(assert.AnError))
}
