package trig

import (
	"math"

	"github.com/chrissnell/turngeometry/pkg/angle"
	"github.com/chrissnell/turngeometry/pkg/series"
)

// The forward series and the arctangent series alternate in sign. Once their
// terms are decreasing in magnitude (|x| < 2k+2 for k correction terms), the
// truncation error is no larger than the first omitted term, which is what
// the functions below return. Outside that range the figure is only an
// estimate.

// SineRemainder returns the magnitude of the first term Sine leaves out.
func (e Engine) SineRemainder(degree float64) float64 {
	x := math.Abs(angle.ToTurnRadian(degree))
	n := 2*e.SineTerms + 3
	return math.Pow(x, float64(n)) / series.Factorial(n)
}

// CosineRemainder returns the magnitude of the first term Cosine leaves out.
func (e Engine) CosineRemainder(degree float64) float64 {
	x := math.Abs(angle.ToTurnRadian(degree))
	n := 2*e.CosineTerms + 2
	return math.Pow(x, float64(n)) / series.Factorial(n)
}

// ArctangentRemainder returns the magnitude, in degrees, of the first term
// Arctangent leaves out. Values beyond ±1 are measured at their reciprocal,
// which is where the series is actually evaluated.
func (e Engine) ArctangentRemainder(value float64) float64 {
	x := math.Abs(value)
	if x > 1 {
		x = 1 / x
	}
	n := 2*e.ArctangentTerms + 3
	return angle.FromTurnRadian(math.Pow(x, float64(n)) / float64(n) * radianScale)
}

// Accurate reports whether both the sine and cosine truncation errors at
// degree are bounded by eps.
func (e Engine) Accurate(degree, eps float64) bool {
	return e.SineRemainder(degree) <= eps && e.CosineRemainder(degree) <= eps
}
