package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid plot mode"},
			expected: "invalid plot mode",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 9, "--overlay"),
			expected: "invalid value 9 for flag --overlay",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var configErr ConfigError
			if !errors.As(tt.err, &configErr) {
				t.Error("expected error to be ConfigError type")
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "samples", Message: "must be at least 2"}
	want := `validation error for "samples": must be at least 2`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestMalformedInputError(t *testing.T) {
	t.Parallel()
	var err error = &MalformedInputError{Input: "foo bar"}
	if err.Error() != `unrecognized command "foo bar"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	var target *MalformedInputError
	if !errors.As(fmt.Errorf("session: %w", err), &target) {
		t.Fatal("errors.As should find MalformedInputError through wrapping")
	}
	if target.Input != "foo bar" {
		t.Errorf("Input = %q, want %q", target.Input, "foo bar")
	}
}

func TestPreconditionError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		err     *PreconditionError
		wantMsg string
		wantIs  error
	}{
		{
			name:    "without cause",
			err:     &PreconditionError{Command: "c", Reason: "need at least two points"},
			wantMsg: `command "c": need at least two points`,
		},
		{
			name:    "with cause",
			err:     &PreconditionError{Command: "x", Reason: "nothing to evaluate", Cause: ErrNoPolynomial},
			wantMsg: `command "x": nothing to evaluate`,
			wantIs:  ErrNoPolynomial,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, tt.err.Error())
			}
			if tt.wantIs != nil && !errors.Is(tt.err, tt.wantIs) {
				t.Errorf("expected errors.Is(%v) to hold", tt.wantIs)
			}
			if tt.wantIs == nil && errors.Unwrap(tt.err) != nil {
				t.Error("expected nil cause")
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	t.Run("nil stays nil", func(t *testing.T) {
		t.Parallel()
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})
	t.Run("wraps with message", func(t *testing.T) {
		t.Parallel()
		err := WrapError(ErrDegenerateInput, "building basis %d", 2)
		if !errors.Is(err, ErrDegenerateInput) {
			t.Error("wrapped error should match sentinel")
		}
		want := "building basis 2: " + ErrDegenerateInput.Error()
		if err.Error() != want {
			t.Errorf("expected %q, got %q", want, err.Error())
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("viewer: %w", context.Canceled), true},
		{"other", ErrNoPolynomial, false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
