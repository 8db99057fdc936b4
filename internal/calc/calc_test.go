package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/chrissnell/turngeometry/pkg/shape"
	"github.com/chrissnell/turngeometry/pkg/trig"
)

func newCalculator(t *testing.T) *Calculator {
	t.Helper()
	c, err := New(trig.Default())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestEvaluate(t *testing.T) {
	capVolume, _ := shape.SphericalCapVolume(2, 1)

	tests := []struct {
		name     string
		op       string
		args     []float64
		expected float64
		unit     string
	}{
		{"full turn", "full-turn", nil, 6.4, UnitTurnRadian},
		{"half turn", "half-turn", nil, 3.2, UnitTurnRadian},
		{"quarter turn", "quarter-turn", nil, 1.6, UnitTurnRadian},
		{"to turn", "degrees-to-turn", []float64{180}, 3.2, UnitTurnRadian},
		{"to degrees", "turn-to-degrees", []float64{1.6}, 90, UnitDegree},
		{"sine", "sine", []float64{0}, 0, UnitRatio},
		{"cosine", "cosine", []float64{0}, 1, UnitRatio},
		{"tangent", "tangent", []float64{10}, trig.Tangent(10), UnitRatio},
		{"arcsine", "arcsine", []float64{1}, 90, UnitDegree},
		{"arccosine", "arccosine", []float64{-1}, 180, UnitDegree},
		{"arctangent", "arctangent", []float64{math.Inf(1)}, 90, UnitDegree},
		{"circumference", "circle-circumference", []float64{1}, 6.4, UnitLength},
		{"area", "circle-area", []float64{2}, 12.8, UnitArea},
		{"sector area", "circle-area", []float64{2, 0.5}, 6.4, UnitArea},
		{"sphere", "sphere-volume", []float64{0}, 0, UnitVolume},
		{"cone", "cone-volume", []float64{1, 1}, 3.2 / math.Sqrt(8), UnitVolume},
		{"cap", "cap-volume", []float64{2, 1}, capVolume, UnitVolume},
	}

	c := newCalculator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := c.Evaluate(tt.op, tt.args...)
			if err != nil {
				t.Fatalf("Evaluate(%s, %v) error: %v", tt.op, tt.args, err)
			}
			if math.Abs(float64(res.Value)-tt.expected) > 1e-12 {
				t.Errorf("Evaluate(%s, %v) = %v, expected %v", tt.op, tt.args, res.Value, tt.expected)
			}
			if res.Unit != tt.unit {
				t.Errorf("unit = %q, expected %q", res.Unit, tt.unit)
			}
			if res.Operation != tt.op || len(res.Args) != len(tt.args) {
				t.Errorf("result echoes %q %v", res.Operation, res.Args)
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	tests := []struct {
		name   string
		op     string
		args   []float64
		target error
	}{
		{"unknown", "secant", []float64{1}, ErrUnknownOperation},
		{"too few", "cone-volume", []float64{1}, ErrArity},
		{"too many", "sine", []float64{1, 2}, ErrArity},
		{"constant with args", "full-turn", []float64{1}, ErrArity},
		{"arcsine domain", "arcsine", []float64{1.5}, trig.ErrDomain},
		{"arccosine domain", "arccosine", []float64{-2}, trig.ErrDomain},
		{"cap domain", "cap-volume", []float64{1, 2}, trig.ErrDomain},
	}

	c := newCalculator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Evaluate(tt.op, tt.args...)
			if !errors.Is(err, tt.target) {
				t.Errorf("Evaluate(%s, %v) error = %v, expected %v", tt.op, tt.args, err, tt.target)
			}
		})
	}
}

func TestNewRejectsInvalidEngine(t *testing.T) {
	if _, err := New(trig.Engine{SineTerms: -1}); !errors.Is(err, trig.ErrTerms) {
		t.Errorf("New() error = %v, expected ErrTerms", err)
	}
}

func TestOperations(t *testing.T) {
	ops := Operations()
	if len(ops) != len(operations) {
		t.Fatalf("Operations() returned %d names, expected %d", len(ops), len(operations))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] >= ops[i] {
			t.Errorf("Operations() not sorted at %d: %q >= %q", i, ops[i-1], ops[i])
		}
	}
}
