package format

import (
	"math"
	"testing"
	"time"
)

func TestDecimal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0000"},
		{math.Copysign(0, -1), "0.0000"},
		{1, "1.0000"},
		{-3, "-3.0000"},
		{2.5, "2.5000"},
		{1.23456, "1.2346"},
		{-0.00004, "-0.0000"},
		{1234567.5, "1234567.5000"},
	}
	for _, tt := range tests {
		if got := Decimal(tt.in); got != tt.want {
			t.Errorf("Decimal(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPoint(t *testing.T) {
	t.Parallel()
	if got := Point(1, -2.5); got != "x = 1.0000; y = -2.5000;" {
		t.Errorf("Point(1, -2.5) = %q", got)
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.in); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
