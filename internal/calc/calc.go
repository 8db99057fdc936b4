// Package calc maps operation names onto the angle, trig and shape APIs so
// the REST server, the gRPC service and the CLI share one dispatch table.
package calc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/chrissnell/turngeometry/pkg/angle"
	"github.com/chrissnell/turngeometry/pkg/responseformat"
	"github.com/chrissnell/turngeometry/pkg/shape"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"github.com/chrissnell/turngeometry/pkg/turn"
)

// Units reported with each result.
const (
	UnitTurnRadian = "turn-radian"
	UnitDegree     = "degree"
	UnitRatio      = "ratio"
	UnitLength     = "length"
	UnitArea       = "area"
	UnitVolume     = "volume"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrArity            = errors.New("wrong number of arguments")
)

// Result is the outcome of one evaluation.
type Result struct {
	Operation string                  `json:"operation"`
	Args      []responseformat.Number `json:"args"`
	Value     responseformat.Number   `json:"value"`
	Unit      string                  `json:"unit"`
}

type operation struct {
	minArgs int
	maxArgs int
	unit    string
	eval    func(e trig.Engine, args []float64) (float64, error)
}

func constant(v float64) func(trig.Engine, []float64) (float64, error) {
	return func(trig.Engine, []float64) (float64, error) { return v, nil }
}

func unary(f func(float64) float64) func(trig.Engine, []float64) (float64, error) {
	return func(_ trig.Engine, args []float64) (float64, error) { return f(args[0]), nil }
}

var operations = map[string]operation{
	"full-turn":       {0, 0, UnitTurnRadian, constant(turn.Full)},
	"half-turn":       {0, 0, UnitTurnRadian, constant(turn.Half)},
	"quarter-turn":    {0, 0, UnitTurnRadian, constant(turn.Quarter)},
	"degrees-to-turn": {1, 1, UnitTurnRadian, unary(angle.DegreesToTurnUnits)},
	"turn-to-degrees": {1, 1, UnitDegree, unary(angle.TurnUnitsToDegrees)},

	"sine": {1, 1, UnitRatio, func(e trig.Engine, a []float64) (float64, error) {
		return e.Sine(a[0]), nil
	}},
	"cosine": {1, 1, UnitRatio, func(e trig.Engine, a []float64) (float64, error) {
		return e.Cosine(a[0]), nil
	}},
	"tangent": {1, 1, UnitRatio, func(e trig.Engine, a []float64) (float64, error) {
		return e.Tangent(a[0]), nil
	}},
	"arcsine": {1, 1, UnitDegree, func(e trig.Engine, a []float64) (float64, error) {
		return e.Arcsine(a[0])
	}},
	"arccosine": {1, 1, UnitDegree, func(e trig.Engine, a []float64) (float64, error) {
		return e.Arccosine(a[0])
	}},
	"arctangent": {1, 1, UnitDegree, func(e trig.Engine, a []float64) (float64, error) {
		return e.Arctangent(a[0]), nil
	}},

	"circle-circumference": {1, 1, UnitLength, unary(shape.CircleCircumference)},
	"circle-area": {1, 2, UnitArea, func(_ trig.Engine, a []float64) (float64, error) {
		if len(a) == 2 {
			return shape.CircleSectorArea(a[0], a[1]), nil
		}
		return shape.CircleArea(a[0]), nil
	}},
	"sphere-volume": {1, 1, UnitVolume, unary(shape.SphereVolume)},
	"cone-volume": {2, 2, UnitVolume, func(_ trig.Engine, a []float64) (float64, error) {
		return shape.ConeVolume(a[0], a[1]), nil
	}},
	"cap-volume": {2, 2, UnitVolume, func(e trig.Engine, a []float64) (float64, error) {
		return shape.SphericalCap{SphereRadius: a[0], CapRadius: a[1]}.VolumeWith(e)
	}},
}

// Operations returns the supported operation names, sorted.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculator evaluates operations with a fixed engine.
type Calculator struct {
	engine trig.Engine
}

// New returns a Calculator for e, or an error if e is not valid.
func New(e trig.Engine) (*Calculator, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{engine: e}, nil
}

// Engine returns the engine the calculator evaluates with.
func (c *Calculator) Engine() trig.Engine {
	return c.engine
}

// Evaluate runs the named operation. Domain failures wrap trig.ErrDomain.
func (c *Calculator) Evaluate(name string, args ...float64) (Result, error) {
	op, ok := operations[name]
	if !ok {
		return Result{}, fmt.Errorf("%q: %w", name, ErrUnknownOperation)
	}
	if len(args) < op.minArgs || len(args) > op.maxArgs {
		return Result{}, fmt.Errorf("%s takes %s, got %d: %w", name, arityString(op), len(args), ErrArity)
	}

	v, err := op.eval(c.engine, args)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", name, err)
	}

	res := Result{
		Operation: name,
		Args:      make([]responseformat.Number, len(args)),
		Value:     responseformat.Number(v),
		Unit:      op.unit,
	}
	for i, a := range args {
		res.Args[i] = responseformat.Number(a)
	}
	return res, nil
}

func arityString(op operation) string {
	if op.minArgs == op.maxArgs {
		return fmt.Sprintf("%d argument(s)", op.minArgs)
	}
	return fmt.Sprintf("%d to %d arguments", op.minArgs, op.maxArgs)
}
