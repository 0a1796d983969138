package poly

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"gonum.org/v1/gonum/floats"
)

func equalPoly(a, b Polynomial) bool {
	return len(a) == len(b) && floats.EqualApprox(a, b, 1e-9)
}

func TestMultiplyByLinear(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		p    Polynomial
		a, b float64
		want Polynomial
	}{
		{"empty is identity", nil, 2, 3, Polynomial{2, 3}},
		{"empty non-nil slice", Polynomial{}, -1, 0.5, Polynomial{-1, 0.5}},
		{"(x+1)(x-1)", Polynomial{1, 1}, 1, -1, Polynomial{1, 0, -1}},
		{"(x+1)^2", Polynomial{1, 1}, 1, 1, Polynomial{1, 2, 1}},
		{"constant times linear", Polynomial{3}, 2, 5, Polynomial{6, 15}},
		{"quadratic times 2x", Polynomial{1, -2, 1}, 2, 0, Polynomial{2, -4, 2, 0}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MultiplyByLinear(tt.p, tt.a, tt.b)
			if !equalPoly(got, tt.want) {
				t.Errorf("MultiplyByLinear(%v, %v, %v) = %v, want %v", tt.p, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMultiplyByLinear_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	p := Polynomial{1, 2, 3}
	_ = MultiplyByLinear(p, 4, 5)
	if !equalPoly(p, Polynomial{1, 2, 3}) {
		t.Errorf("input mutated to %v", p)
	}
}

func TestAddVectors(t *testing.T) {
	t.Parallel()
	got := AddVectors(Polynomial{1, 2, 3}, Polynomial{-1, 0.5, 4})
	if !equalPoly(got, Polynomial{0, 2.5, 7}) {
		t.Errorf("AddVectors = %v", got)
	}
}

func TestAddVectors_LengthMismatchPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected panic on length mismatch")
		}
	}()
	AddVectors(Polynomial{1}, Polynomial{1, 2})
}

func TestScaleVector(t *testing.T) {
	t.Parallel()
	in := Polynomial{1, -2, 0}
	got := ScaleVector(in, -3)
	if !equalPoly(got, Polynomial{-3, 6, 0}) {
		t.Errorf("ScaleVector = %v", got)
	}
	if !equalPoly(in, Polynomial{1, -2, 0}) {
		t.Errorf("ScaleVector mutated its input to %v", in)
	}
}

func TestDegreeAndClone(t *testing.T) {
	t.Parallel()
	if d := Polynomial(nil).Degree(); d != -1 {
		t.Errorf("empty Degree() = %d, want -1", d)
	}
	p := Polynomial{1, 0, 0}
	if d := p.Degree(); d != 2 {
		t.Errorf("Degree() = %d, want 2", d)
	}
	c := p.Clone()
	c[0] = 5
	if p[0] != 1 {
		t.Error("Clone must not share storage")
	}
	if Polynomial(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

// TestLinearity_PropertyBased checks that scaling distributes over addition:
//
//	scale(add(u, v), k) == add(scale(u, k), scale(v, k))
func TestLinearity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	vector := gen.SliceOfN(6, gen.Float64Range(-1e3, 1e3))

	properties.Property("scale distributes over add", prop.ForAll(
		func(u, v []float64, k float64) bool {
			left := ScaleVector(AddVectors(u, v), k)
			right := AddVectors(ScaleVector(u, k), ScaleVector(v, k))
			return floats.EqualApprox(left, right, 1e-6)
		},
		vector, vector, gen.Float64Range(-100, 100),
	))

	properties.Property("multiplying by a linear factor adds one coefficient", prop.ForAll(
		func(u []float64, a, b float64) bool {
			return len(MultiplyByLinear(u, a, b)) == len(u)+1
		},
		vector, gen.Float64Range(-10, 10), gen.Float64Range(-10, 10),
	))

	properties.Property("product evaluates to the product of values", prop.ForAll(
		func(u []float64, a, b, x float64) bool {
			got := MultiplyByLinear(u, a, b).At(x)
			want := Polynomial(u).At(x) * (a*x + b)
			return math.Abs(got-want) <= 1e-6*math.Max(1, math.Abs(want))
		},
		vector, gen.Float64Range(-10, 10), gen.Float64Range(-10, 10), gen.Float64Range(-2, 2),
	))

	properties.TestingRun(t)
}
