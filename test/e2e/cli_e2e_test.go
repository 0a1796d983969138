package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	tmpDir := t.TempDir()
	binName := "lagcalc"
	if runtime.GOOS == "windows" {
		binName = "lagcalc.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	rootDir := "../.."

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/lagcalc")
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build lagcalc: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  []string // substring matches
		wantCode int
	}{
		{
			name:     "Parabola Through Three Points",
			args:     []string{"--plot", "text", "--no-color"},
			stdin:    "0 0\n1 1\n2 4\nc\nx 3\nq\n",
			wantOut:  []string{"The polynomial formula is:", "y = + 1.0000*x^2", "y(3.0000) = 9.0000", "Goodbye!"},
			wantCode: 0,
		},
		{
			name:     "Too Few Points",
			args:     []string{"--plot", "none"},
			stdin:    "1 1\nc\n",
			wantOut:  []string{"You need to input at least two points to compute."},
			wantCode: 0,
		},
		{
			name:     "Duplicate Abscissa",
			args:     []string{"--plot", "none"},
			stdin:    "1 1\n1 2\nc\n",
			wantOut:  []string{"The Lagrange polynomial is impossible to compute for this set of points."},
			wantCode: 0,
		},
		{
			name:     "Unrecognized Command",
			args:     []string{"--plot", "none"},
			stdin:    "hello\n",
			wantOut:  []string{`Incorrect command. To see the list of commands, type "h".`},
			wantCode: 0,
		},
		{
			name:     "Overlay In Legend",
			args:     []string{"--plot", "text", "--overlay", "4"},
			stdin:    "-3 0\n0 1\n3 0\nc\n",
			wantOut:  []string{"4 sinusoid (y = sin(x))"},
			wantCode: 0,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  []string{"usage"},
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  []string{"lagcalc"},
			wantCode: 0,
		},
		{
			name:     "Completion Script",
			args:     []string{"completion", "bash"},
			wantOut:  []string{"lagcalc"},
			wantCode: 0,
		},
		{
			name:     "Invalid Plot Mode",
			args:     []string{"--plot", "svg"},
			wantOut:  []string{"plot"},
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			output, err := cmd.CombinedOutput()

			outStr := string(output)

			if tt.wantCode == 0 {
				if err != nil {
					t.Errorf("Command failed unexpectedly: %v\nOutput: %s", err, outStr)
				}
			} else {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("Expected exit code %d, got err %v\nOutput: %s", tt.wantCode, err, outStr)
				}
				if exitErr.ExitCode() != tt.wantCode {
					t.Errorf("Exit code = %d, want %d", exitErr.ExitCode(), tt.wantCode)
				}
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(want)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", want, outStr)
				}
			}
		})
	}
}
