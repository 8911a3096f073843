package complexity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Formula maps an input size to an operation count.
type Formula func(n float64) float64

// Curve is one growth function evaluated over an InputRange.
type Curve struct {
	Label string
	X     []float64
	Y     []float64
	// Dashed curves are drawn with a dashed stroke.
	Dashed bool
	// Dominant curves are drawn but never contribute to the y-axis scale.
	Dominant bool
}

// Max returns the largest Y value, or NaN for an empty curve.
func (c Curve) Max() float64 {
	if len(c.Y) == 0 {
		return math.NaN()
	}
	return floats.Max(c.Y)
}

// Min returns the smallest Y value, or NaN for an empty curve.
func (c Curve) Min() float64 {
	if len(c.Y) == 0 {
		return math.NaN()
	}
	return floats.Min(c.Y)
}

type definition struct {
	label    string
	formula  Formula
	dashed   bool
	dominant bool
}

var definitions = []definition{
	{label: "n^(3/2)", formula: func(n float64) float64 { return math.Pow(n, 1.5) }},
	{label: "n^(4/3)", formula: func(n float64) float64 { return math.Pow(n, 4.0/3.0) }},
	{label: "n log n", formula: func(n float64) float64 { return n * math.Log2(n) }},
	{label: "n log^2 n", formula: func(n float64) float64 {
		l := math.Log2(n)
		return n * l * l
	}},
	// n^2 dwarfs the others and is kept out of the axis scale.
	{label: "n^2", formula: func(n float64) float64 { return n * n }, dashed: true, dominant: true},
}

// Labels lists the curve labels in plotting order.
func Labels() []string {
	out := make([]string, len(definitions))
	for i, d := range definitions {
		out[i] = d.label
	}
	return out
}

// Curves evaluates every growth function over r, dominant curves last.
func Curves(r InputRange) []Curve {
	xs := r.Values()
	out := make([]Curve, 0, len(definitions))
	for _, d := range definitions {
		ys := make([]float64, len(xs))
		for i, n := range xs {
			ys[i] = d.formula(n)
		}
		x := make([]float64, len(xs))
		copy(x, xs)
		out = append(out, Curve{
			Label:    d.label,
			X:        x,
			Y:        ys,
			Dashed:   d.dashed,
			Dominant: d.dominant,
		})
	}
	return out
}
