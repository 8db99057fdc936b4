// Package angle represents an angle in two synchronized units: degrees, where
// a full turn is 360, and turn-radians, where a full turn is turn.Full.
package angle

import (
	"github.com/chrissnell/turngeometry/pkg/turn"
	"github.com/soniakeys/unit"
)

// Angle is an immutable angle value. Degree and TurnRadian always describe the
// same angle; build one with FromDegrees or FromTurnRadians rather than by
// setting the fields directly. The zero value is a zero angle.
type Angle struct {
	Degree     float64 `json:"degree"`
	TurnRadian float64 `json:"turnRadian"`
}

// ToTurnRadian converts degrees to turn-radians.
func ToTurnRadian(degree float64) float64 {
	return degree * turn.Full / turn.DegreesPerTurn
}

// FromTurnRadian converts turn-radians to degrees.
func FromTurnRadian(turnRadian float64) float64 {
	return turnRadian * turn.DegreesPerTurn / turn.Full
}

// DegreesToTurnUnits is ToTurnRadian under its external name.
func DegreesToTurnUnits(degree float64) float64 { return ToTurnRadian(degree) }

// TurnUnitsToDegrees is FromTurnRadian under its external name.
func TurnUnitsToDegrees(units float64) float64 { return FromTurnRadian(units) }

// FromDegrees builds an Angle from a degree value.
func FromDegrees(degree float64) Angle {
	return Angle{Degree: degree, TurnRadian: ToTurnRadian(degree)}
}

// FromTurnRadians builds an Angle from a turn-radian value.
func FromTurnRadians(turnRadian float64) Angle {
	return Angle{Degree: FromTurnRadian(turnRadian), TurnRadian: turnRadian}
}

// FromConventional builds an Angle from a conventional angle, mapping a
// conventional full revolution onto turn.Full.
func FromConventional(a unit.Angle) Angle {
	return FromDegrees(a.Deg())
}

// Conventional returns the same fraction of a revolution as a conventional
// angle (full turn = 2π radians), for handing to code that works in true radians.
func (a Angle) Conventional() unit.Angle {
	return unit.AngleFromDeg(a.Degree)
}

// Fraction returns the angle as a fraction of a full turn.
func (a Angle) Fraction() float64 {
	return a.TurnRadian / turn.Full
}

// Add returns a new Angle that is the sum of a and b.
func (a Angle) Add(b Angle) Angle {
	return FromDegrees(a.Degree + b.Degree)
}

// Neg returns the angle with its sign flipped.
func (a Angle) Neg() Angle {
	return Angle{Degree: -a.Degree, TurnRadian: -a.TurnRadian}
}
