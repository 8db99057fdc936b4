// Package shape provides circle, sphere, cone and spherical-cap formulas built
// on the turn constants rather than π. Each shape is a plain value record;
// nothing is stored beyond the constructor parameters. Negative dimensions
// are not rejected.
package shape

import (
	"fmt"
	"math"

	"github.com/chrissnell/turngeometry/pkg/trig"
	"github.com/chrissnell/turngeometry/pkg/turn"
)

// CircleCircumference returns turn.Full · radius.
func CircleCircumference(radius float64) float64 {
	return turn.Full * radius
}

// CircleArea returns turn.Half · radius².
func CircleArea(radius float64) float64 {
	return CircleSectorArea(radius, 1)
}

// CircleSectorArea returns the area swept by turnFraction of a full turn,
// turn.Half · radius² · turnFraction.
func CircleSectorArea(radius, turnFraction float64) float64 {
	return turn.Half * radius * radius * turnFraction
}

// SphereVolume returns (√turn.Half · radius)³.
func SphereVolume(radius float64) float64 {
	return math.Pow(math.Sqrt(turn.Half)*radius, 3)
}

// ConeVolume returns turn.Half · radius² · height / √8.
func ConeVolume(radius, height float64) float64 {
	return turn.Half * radius * radius * height / math.Sqrt(8)
}

// SphericalCapVolume returns the cap volume using the default trig engine.
// capRadius/sphereRadius must lie in [-1, 1]; anything else, including a zero
// sphereRadius, fails with trig.ErrDomain.
func SphericalCapVolume(sphereRadius, capRadius float64) (float64, error) {
	return SphericalCap{SphereRadius: sphereRadius, CapRadius: capRadius}.VolumeWith(trig.Default())
}

// Circle is a circle, or a sector of one when TurnFraction is below 1.
type Circle struct {
	Radius       float64 `json:"radius"`
	TurnFraction float64 `json:"turnFraction"`
}

// NewCircle returns a full circle of the given radius.
func NewCircle(radius float64) Circle {
	return Circle{Radius: radius, TurnFraction: 1}
}

// Circumference ignores TurnFraction: it is always the full perimeter.
func (c Circle) Circumference() float64 { return CircleCircumference(c.Radius) }

// Area is scaled by TurnFraction.
func (c Circle) Area() float64 { return CircleSectorArea(c.Radius, c.TurnFraction) }

type Sphere struct {
	Radius float64 `json:"radius"`
}

func (s Sphere) Volume() float64 { return SphereVolume(s.Radius) }

type Cone struct {
	Radius float64 `json:"radius"`
	Height float64 `json:"height"`
}

func (c Cone) Volume() float64 { return ConeVolume(c.Radius, c.Height) }

// SphericalCap is the solid cut from a sphere of SphereRadius by a plane
// whose circle of intersection has radius CapRadius.
type SphericalCap struct {
	SphereRadius float64 `json:"sphereRadius"`
	CapRadius    float64 `json:"capRadius"`
}

// Volume evaluates the cap volume with the default trig engine.
func (c SphericalCap) Volume() (float64, error) {
	return c.VolumeWith(trig.Default())
}

// VolumeWith evaluates
//
//	(turn.Half/2) · a² · √turn.Half · (1 − sin(acos(a/R)))
//
// with the given engine, where a is CapRadius and R is SphereRadius.
func (c SphericalCap) VolumeWith(e trig.Engine) (float64, error) {
	theta, err := e.Arccosine(c.CapRadius / c.SphereRadius)
	if err != nil {
		return 0, fmt.Errorf("spherical cap (R=%v, a=%v): %w", c.SphereRadius, c.CapRadius, err)
	}
	a := c.CapRadius
	return turn.Half / 2 * a * a * math.Sqrt(turn.Half) * (1 - e.Sine(theta)), nil
}
