package shape

import (
	"errors"
	"math"
	"testing"

	"github.com/chrissnell/turngeometry/pkg/trig"
	"github.com/chrissnell/turngeometry/pkg/turn"
)

func TestCircle(t *testing.T) {
	if got := CircleCircumference(1); got != turn.FullTurn() {
		t.Errorf("CircleCircumference(1) = %v, expected %v", got, turn.FullTurn())
	}
	if got := CircleArea(1); got != turn.HalfTurn() {
		t.Errorf("CircleArea(1) = %v, expected %v", got, turn.HalfTurn())
	}
	if got := CircleArea(2); got != 4*turn.HalfTurn() {
		t.Errorf("CircleArea(2) = %v, expected %v", got, 4*turn.HalfTurn())
	}
	if got := CircleSectorArea(2, 0.25); got != turn.HalfTurn() {
		t.Errorf("CircleSectorArea(2, 0.25) = %v, expected %v", got, turn.HalfTurn())
	}
	if got := CircleCircumference(0); got != 0 {
		t.Errorf("CircleCircumference(0) = %v, expected 0", got)
	}
}

func TestCircleRecord(t *testing.T) {
	c := NewCircle(3)
	if c.TurnFraction != 1 {
		t.Errorf("NewCircle TurnFraction = %v, expected 1", c.TurnFraction)
	}
	if got, want := c.Area(), CircleArea(3); got != want {
		t.Errorf("Area() = %v, expected %v", got, want)
	}

	half := Circle{Radius: 3, TurnFraction: 0.5}
	if got, want := half.Area(), CircleArea(3)/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("half-turn Area() = %v, expected %v", got, want)
	}
	// The perimeter is not scaled by the swept fraction.
	if half.Circumference() != c.Circumference() {
		t.Errorf("Circumference() = %v, expected %v", half.Circumference(), c.Circumference())
	}
}

func TestVolumes(t *testing.T) {
	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"sphere of radius 0", SphereVolume(0), 0},
		{"cone of radius 0", ConeVolume(0, 5), 0},
		{"cone of height 0", ConeVolume(5, 0), 0},
		{"unit sphere", SphereVolume(1), math.Pow(3.2, 1.5)},
		{"sphere of radius 2", SphereVolume(2), 8 * math.Pow(3.2, 1.5)},
		{"unit cone", ConeVolume(1, 1), 3.2 / math.Sqrt(8)},
		{"cone 2x3", ConeVolume(2, 3), 3.2 * 12 / math.Sqrt(8)},
		{"sphere record", Sphere{Radius: 1.5}.Volume(), SphereVolume(1.5)},
		{"cone record", Cone{Radius: 1.5, Height: 2}.Volume(), ConeVolume(1.5, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.expected) > 1e-12 {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}
}

func TestSphericalCapVolume(t *testing.T) {
	// Expected value built from the engine's own sine and arccosine.
	acos, err := trig.Arccosine(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := (turn.HalfTurn() / 2) * 1 * 1 * math.Sqrt(turn.HalfTurn()) * (1 - trig.Sine(acos))

	got, err := SphericalCapVolume(2, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("SphericalCapVolume(2, 1) = %v, expected %v", got, expected)
	}
	if math.Abs(got-0.35606710034473377) > 1e-9 {
		t.Errorf("SphericalCapVolume(2, 1) = %v, expected ~0.356067", got)
	}

	rec, err := SphericalCap{SphereRadius: 2, CapRadius: 1}.Volume()
	if err != nil || rec != got {
		t.Errorf("SphericalCap.Volume() = %v, %v; expected %v", rec, err, got)
	}
}

func TestSphericalCapDomain(t *testing.T) {
	tests := []struct {
		name         string
		sphereRadius float64
		capRadius    float64
	}{
		{"cap wider than sphere", 1, 2},
		{"negative ratio below -1", 1, -3},
		{"zero sphere radius", 0, 1},
		{"zero over zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SphericalCapVolume(tt.sphereRadius, tt.capRadius)
			if !errors.Is(err, trig.ErrDomain) {
				t.Errorf("SphericalCapVolume(%v, %v) error = %v, expected ErrDomain",
					tt.sphereRadius, tt.capRadius, err)
			}
		})
	}
}

func TestSphericalCapWithEngine(t *testing.T) {
	c := SphericalCap{SphereRadius: 4, CapRadius: 1}
	coarse, err := c.VolumeWith(trig.Engine{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def, err := c.VolumeWith(trig.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coarse == def {
		t.Errorf("zero-term engine produced the same volume as the default engine: %v", def)
	}
}
