// Package trig evaluates sine, cosine and tangent, and their inverses, as
// truncated Taylor series over the turn-radian scale of package angle.
//
// Forward functions take an angle in degrees, convert it to turn-radians and
// feed that value straight into the classical series, so results are
// meaningful only for small angles. Inside ConvergenceLimit the default term
// counts are accurate to better than 1e-10; beyond a few turn-radians the
// partial sums drift away from any trigonometric value. No reduction modulo
// a turn is performed.
//
// Inverse functions evaluate the classical series in true radians and rescale
// the result by turn.Full/2π into turn-radians, then report degrees. This
// makes Arcsine(1) exactly a quarter turn and Arccosine(-1) exactly a half turn.
package trig

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrissnell/turngeometry/pkg/angle"
	"github.com/chrissnell/turngeometry/pkg/series"
	"github.com/chrissnell/turngeometry/pkg/turn"
)

// Default term counts: sine through x¹³, cosine through x¹², arcsine through
// x¹⁵ and arctangent through x¹³.
const (
	DefaultSineTerms       = 6
	DefaultCosineTerms     = 6
	DefaultArcsineTerms    = 7
	DefaultArctangentTerms = 6
)

// MaxFactorialTerms is the largest term count accepted for the series that
// divide by factorials. The first omitted sine term divides by (2k+3)!, and
// 170! is the largest factorial a float64 holds.
const MaxFactorialTerms = 83

// MaxArctangentTerms bounds the arctangent series, whose cost is linear in
// the term count.
const MaxArctangentTerms = 10000

// ConvergenceLimit is one turn-radian expressed in degrees (56.25°). With the
// default term counts, |Sine| and |Cosine| errors stay below 1e-10 for inputs
// whose magnitude does not exceed it.
const ConvergenceLimit = turn.DegreesPerTurn / turn.Full

// radianScale converts a true-radian series result into turn-radians.
const radianScale = turn.Full / (2 * math.Pi)

var (
	// ErrDomain is returned by the inverse functions for inputs outside [-1, 1].
	ErrDomain = errors.New("argument outside [-1, 1]")

	// ErrTerms is returned by Engine.Validate for an unusable term count.
	ErrTerms = errors.New("invalid series term count")
)

// Engine holds the number of correction terms added after the leading term of
// each series. An Engine is a plain value with no internal state; copies may
// be used from any number of goroutines.
type Engine struct {
	SineTerms       int `json:"sineTerms"`
	CosineTerms     int `json:"cosineTerms"`
	ArcsineTerms    int `json:"arcsineTerms"`
	ArctangentTerms int `json:"arctangentTerms"`
}

// Default returns an Engine with the default term counts.
func Default() Engine {
	return Engine{
		SineTerms:       DefaultSineTerms,
		CosineTerms:     DefaultCosineTerms,
		ArcsineTerms:    DefaultArcsineTerms,
		ArctangentTerms: DefaultArctangentTerms,
	}
}

// Validate checks that every term count is non-negative and small enough for
// its coefficients and remainder bounds to stay finite.
func (e Engine) Validate() error {
	counts := []struct {
		name  string
		value int
		max   int
	}{
		{"sine", e.SineTerms, MaxFactorialTerms},
		{"cosine", e.CosineTerms, MaxFactorialTerms},
		{"arcsine", e.ArcsineTerms, MaxFactorialTerms},
		{"arctangent", e.ArctangentTerms, MaxArctangentTerms},
	}
	for _, c := range counts {
		if c.value < 0 || c.value > c.max {
			return fmt.Errorf("%s terms %d not in [0, %d]: %w", c.name, c.value, c.max, ErrTerms)
		}
	}
	return nil
}

// Sine returns the truncated sine series evaluated at the turn-radian value of degree.
func (e Engine) Sine(degree float64) float64 {
	return e.sineTurn(angle.ToTurnRadian(degree))
}

// Cosine returns the truncated cosine series evaluated at the turn-radian value of degree.
func (e Engine) Cosine(degree float64) float64 {
	return e.cosineTurn(angle.ToTurnRadian(degree))
}

// Tangent returns Sine(degree) / Cosine(degree). Where the cosine series is
// exactly zero the result is ±Inf or NaN; it is not special-cased.
func (e Engine) Tangent(degree float64) float64 {
	return e.Sine(degree) / e.Cosine(degree)
}

// SineOf is Sine for an Angle value.
func (e Engine) SineOf(a angle.Angle) float64 { return e.sineTurn(a.TurnRadian) }

// CosineOf is Cosine for an Angle value.
func (e Engine) CosineOf(a angle.Angle) float64 { return e.cosineTurn(a.TurnRadian) }

// TangentOf is Tangent for an Angle value.
func (e Engine) TangentOf(a angle.Angle) float64 {
	return e.sineTurn(a.TurnRadian) / e.cosineTurn(a.TurnRadian)
}

// sineTurn sums x − x³/3! + x⁵/5! − … over SineTerms correction terms.
func (e Engine) sineTurn(x float64) float64 {
	sum := x
	xP := x
	sign := -1.0
	for k := 1; k <= e.SineTerms; k++ {
		xP *= x * x
		sum += sign * xP / series.Factorial(2*k+1)
		sign = -sign
	}
	return sum
}

// cosineTurn sums 1 − x²/2! + x⁴/4! − … over CosineTerms correction terms.
func (e Engine) cosineTurn(x float64) float64 {
	sum := 1.0
	xP := 1.0
	sign := -1.0
	for k := 1; k <= e.CosineTerms; k++ {
		xP *= x * x
		sum += sign * xP / series.Factorial(2*k)
		sign = -sign
	}
	return sum
}
