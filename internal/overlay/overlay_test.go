package overlay

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/lagcalc/internal/errors"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id    ID
		name  string
		x     float64
		wantY float64
	}{
		{Linear, "linear", 3, 3},
		{Quadratic, "quadratic", -3, 9},
		{Cubic, "cubic", -2, -8},
		{Sinusoid, "sinusoid", math.Pi / 2, 1},
		{Exponential, "exponential", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := Lookup(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, o.ID)
			assert.Equal(t, tt.name, o.Name)
			assert.NotEmpty(t, o.Label)
			assert.InDelta(t, tt.wantY, o.Eval(tt.x), 1e-12)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, id := range []ID{None, -1, ID(Count + 1), 42} {
		_, err := Lookup(id)
		assert.ErrorIs(t, err, apperrors.ErrUnknownOverlay, "id %d", id)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(None))
	for _, o := range All() {
		assert.True(t, Valid(o.ID))
	}
	assert.False(t, Valid(-1))
	assert.False(t, Valid(ID(Count+1)))
}

func TestAll_IsOrderedCopy(t *testing.T) {
	all := All()
	require.Len(t, all, Count)
	for i, o := range all {
		assert.Equal(t, ID(i+1), o.ID)
	}
	all[0].Name = "changed"
	first, err := Lookup(Linear)
	require.NoError(t, err)
	assert.Equal(t, "linear", first.Name)
}

func TestOverlay_String(t *testing.T) {
	o, err := Lookup(Quadratic)
	require.NoError(t, err)
	assert.Equal(t, "2 quadratic (y = x^2)", o.String())
}
