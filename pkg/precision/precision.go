// Package precision measures how far the truncated trig series drift from the
// untruncated sine and cosine of the same turn-radian argument over a sweep
// of angles. It backs the documented precision contract of package trig with
// numbers, and cross-checks the engine's term-by-term accumulation against the
// same polynomial evaluated in Horner form.
package precision

import (
	"errors"
	"fmt"
	"math"

	"github.com/chrissnell/turngeometry/pkg/angle"
	"github.com/chrissnell/turngeometry/pkg/responseformat"
	"github.com/chrissnell/turngeometry/pkg/series"
	"github.com/chrissnell/turngeometry/pkg/trig"
	"github.com/soniakeys/meeus/v3/base"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MaxSamples caps the number of angles a single sweep may evaluate.
const MaxSamples = 100000

// DefaultTolerance is the error accepted when Options.Tolerance is zero.
const DefaultTolerance = 1e-10

// ErrInvalidRange is returned for an empty, inverted or oversized sweep.
var ErrInvalidRange = errors.New("invalid sweep range")

// Options describes a sweep from From to To degrees inclusive, in Step increments.
type Options struct {
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Step      float64 `json:"step"`
	Tolerance float64 `json:"tolerance"`
}

// Sample is the engine output and error at one angle. Far outside
// ConvergenceLimit the partial sums overflow, so the engine-derived fields
// may be ±Inf or NaN.
type Sample struct {
	Degree      float64               `json:"degree"`
	TurnRadian  float64               `json:"turnRadian"`
	Sine        responseformat.Number `json:"sine"`
	SineError   responseformat.Number `json:"sineError"`
	Cosine      responseformat.Number `json:"cosine"`
	CosineError responseformat.Number `json:"cosineError"`
	HornerDelta responseformat.Number `json:"hornerDelta"`
}

// Report summarizes a sweep.
type Report struct {
	Options         Options               `json:"options"`
	Engine          trig.Engine           `json:"engine"`
	Samples         []Sample              `json:"samples"`
	MaxSineError    responseformat.Number `json:"maxSineError"`
	MeanSineError   responseformat.Number `json:"meanSineError"`
	WorstSineDegree float64               `json:"worstSineDegree"`
	MaxCosineError  responseformat.Number `json:"maxCosineError"`
	MeanCosineError responseformat.Number `json:"meanCosineError"`
	MaxHornerDelta  responseformat.Number `json:"maxHornerDelta"`

	// AccurateWithin is the largest |degree| up to which every sample is
	// within tolerance, or -1 when none is.
	AccurateWithin float64 `json:"accurateWithin"`
}

// Analyze sweeps the engine over opts and returns the error report.
func Analyze(e trig.Engine, opts Options) (*Report, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	if !isFinite(opts.Step) || opts.Step <= 0 || !isFinite(opts.From) || !isFinite(opts.To) || opts.From > opts.To {
		return nil, fmt.Errorf("from=%v to=%v step=%v: %w", opts.From, opts.To, opts.Step, ErrInvalidRange)
	}
	span := math.Floor((opts.To-opts.From)/opts.Step) + 1
	if span > MaxSamples {
		return nil, fmt.Errorf("%.6g samples exceeds %d: %w", span, MaxSamples, ErrInvalidRange)
	}
	n := int(span)
	if opts.Tolerance <= 0 {
		opts.Tolerance = DefaultTolerance
	}

	sineCoeffs := sineCoefficients(e.SineTerms)
	cosineCoeffs := cosineCoefficients(e.CosineTerms)

	r := &Report{
		Options: opts,
		Engine:  e,
		Samples: make([]Sample, 0, n),
	}
	sineErrs := make([]float64, 0, n)
	cosineErrs := make([]float64, 0, n)
	hornerDeltas := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		d := opts.From + float64(i)*opts.Step
		x := angle.ToTurnRadian(d)
		s := e.Sine(d)
		c := e.Cosine(d)

		hs := x * base.Horner(x*x, sineCoeffs...)
		hc := base.Horner(x*x, cosineCoeffs...)

		sineErr := math.Abs(s - math.Sin(x))
		cosineErr := math.Abs(c - math.Cos(x))
		delta := math.Max(math.Abs(s-hs), math.Abs(c-hc))

		r.Samples = append(r.Samples, Sample{
			Degree:      d,
			TurnRadian:  x,
			Sine:        responseformat.Number(s),
			SineError:   responseformat.Number(sineErr),
			Cosine:      responseformat.Number(c),
			CosineError: responseformat.Number(cosineErr),
			HornerDelta: responseformat.Number(delta),
		})
		sineErrs = append(sineErrs, sineErr)
		cosineErrs = append(cosineErrs, cosineErr)
		hornerDeltas = append(hornerDeltas, delta)
	}

	worst := floats.MaxIdx(sineErrs)
	r.MaxSineError = responseformat.Number(sineErrs[worst])
	r.WorstSineDegree = r.Samples[worst].Degree
	r.MeanSineError = responseformat.Number(stat.Mean(sineErrs, nil))
	r.MaxCosineError = responseformat.Number(floats.Max(cosineErrs))
	r.MeanCosineError = responseformat.Number(stat.Mean(cosineErrs, nil))
	r.MaxHornerDelta = responseformat.Number(floats.Max(hornerDeltas))
	r.AccurateWithin = accurateWithin(r.Samples, opts.Tolerance)

	return r, nil
}

// accurateWithin returns the largest |degree| below the smallest failing
// |degree|, or -1 when no sample passes. Non-finite errors count as failures.
func accurateWithin(samples []Sample, tol float64) float64 {
	limit := math.Inf(1)
	for _, s := range samples {
		if !(float64(s.SineError) <= tol && float64(s.CosineError) <= tol) {
			limit = math.Min(limit, math.Abs(s.Degree))
		}
	}
	best := -1.0
	for _, s := range samples {
		if a := math.Abs(s.Degree); a < limit && a > best {
			best = a
		}
	}
	return best
}

// sineCoefficients returns c such that sin x ≈ x·Σ c[k]·(x²)^k.
func sineCoefficients(terms int) []float64 {
	c := make([]float64, terms+1)
	for k := range c {
		c[k] = alternate(k) / series.Factorial(2*k+1)
	}
	return c
}

// cosineCoefficients returns c such that cos x ≈ Σ c[k]·(x²)^k.
func cosineCoefficients(terms int) []float64 {
	c := make([]float64, terms+1)
	for k := range c {
		c[k] = alternate(k) / series.Factorial(2*k)
	}
	return c
}

func alternate(k int) float64 {
	if k%2 == 0 {
		return 1
	}
	return -1
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
