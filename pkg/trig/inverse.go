package trig

import (
	"fmt"
	"math"

	"github.com/chrissnell/turngeometry/pkg/angle"
	"github.com/chrissnell/turngeometry/pkg/series"
	"github.com/chrissnell/turngeometry/pkg/turn"
)

// Arcsine returns the angle in degrees whose sine is value. Inputs outside
// [-1, 1], and NaN, fail with ErrDomain.
func (e Engine) Arcsine(value float64) (float64, error) {
	t, err := e.arcsineTurn(value)
	if err != nil {
		return 0, err
	}
	return angle.FromTurnRadian(t), nil
}

// Arccosine returns a quarter turn minus Arcsine(value), in degrees.
func (e Engine) Arccosine(value float64) (float64, error) {
	t, err := e.arccosineTurn(value)
	if err != nil {
		return 0, err
	}
	return angle.FromTurnRadian(t), nil
}

// Arctangent returns the angle in degrees whose tangent is value. For
// |value| > 1 the series is evaluated at 1/value and reflected about a
// quarter turn, so the result is odd in value and tends to ±90° at ±Inf.
func (e Engine) Arctangent(value float64) float64 {
	return angle.FromTurnRadian(e.arctangentTurn(value))
}

// ArcsineAngle is Arcsine returning an Angle.
func (e Engine) ArcsineAngle(value float64) (angle.Angle, error) {
	t, err := e.arcsineTurn(value)
	if err != nil {
		return angle.Angle{}, err
	}
	return angle.FromTurnRadians(t), nil
}

// ArccosineAngle is Arccosine returning an Angle.
func (e Engine) ArccosineAngle(value float64) (angle.Angle, error) {
	t, err := e.arccosineTurn(value)
	if err != nil {
		return angle.Angle{}, err
	}
	return angle.FromTurnRadians(t), nil
}

// ArctangentAngle is Arctangent returning an Angle.
func (e Engine) ArctangentAngle(value float64) angle.Angle {
	return angle.FromTurnRadians(e.arctangentTurn(value))
}

// arcsineTurn returns arcsine in turn-radians. The series
// x + Σ (2n−1)!!/(2ⁿ·n!) · x^(2n+1)/(2n+1) converges very slowly near ±1,
// so those two inputs are answered exactly.
func (e Engine) arcsineTurn(x float64) (float64, error) {
	if math.IsNaN(x) || x < -1 || x > 1 {
		return 0, fmt.Errorf("arcsine(%v): %w", x, ErrDomain)
	}
	switch x {
	case 1:
		return turn.Quarter, nil
	case -1:
		return -turn.Quarter, nil
	}

	sum := x
	xP := x
	for n := 1; n <= e.ArcsineTerms; n++ {
		xP *= x * x
		coef := series.DoubleFactorial(2*n-1) / (math.Pow(2, float64(n)) * series.Factorial(n))
		sum += coef * xP / float64(2*n+1)
	}
	return sum * radianScale, nil
}

func (e Engine) arccosineTurn(x float64) (float64, error) {
	s, err := e.arcsineTurn(x)
	if err != nil {
		return 0, fmt.Errorf("arccosine: %w", err)
	}
	return turn.Quarter - s, nil
}

// arctangentTurn returns arctangent in turn-radians, using
// atan(v) = sign(v)·quarter − atan(1/v) when |v| > 1.
func (e Engine) arctangentTurn(x float64) float64 {
	if math.Abs(x) > 1 {
		return math.Copysign(turn.Quarter, x) - e.arctangentTurn(1/x)
	}
	return e.arctangentSeries(x) * radianScale
}

// arctangentSeries sums x − x³/3 + x⁵/5 − … in true radians.
func (e Engine) arctangentSeries(x float64) float64 {
	sum := x
	xP := x
	sign := -1.0
	for k := 1; k <= e.ArctangentTerms; k++ {
		xP *= x * x
		sum += sign * xP / float64(2*k+1)
		sign = -sign
	}
	return sum
}
