package trig

import "github.com/chrissnell/turngeometry/pkg/angle"

// Sine is Engine.Sine with the default term counts.
func Sine(degree float64) float64 { return Default().Sine(degree) }

// Cosine is Engine.Cosine with the default term counts.
func Cosine(degree float64) float64 { return Default().Cosine(degree) }

// Tangent is Engine.Tangent with the default term counts.
func Tangent(degree float64) float64 { return Default().Tangent(degree) }

// Arcsine is Engine.Arcsine with the default term counts.
func Arcsine(value float64) (float64, error) { return Default().Arcsine(value) }

// Arccosine is Engine.Arccosine with the default term counts.
func Arccosine(value float64) (float64, error) { return Default().Arccosine(value) }

// Arctangent is Engine.Arctangent with the default term counts.
func Arctangent(value float64) float64 { return Default().Arctangent(value) }

// SineOf is Sine for an Angle value.
func SineOf(a angle.Angle) float64 { return Default().SineOf(a) }

// CosineOf is Cosine for an Angle value.
func CosineOf(a angle.Angle) float64 { return Default().CosineOf(a) }
