// Package chart turns sampled growth curves into rendered PNG charts.
package chart

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"

	"growthplot/internal/complexity"
)

const (
	defaultWidthInches  = 10
	defaultHeightInches = 6
	defaultDPI          = 300

	// autoscaleMargin pads each side of the data range by this fraction.
	autoscaleMargin = 0.05
)

// Layout holds the physical size of a rendered figure.
type Layout struct {
	WidthInches  float64
	HeightInches float64
	DPI          int
}

// DefaultLayout is a 10x6 inch figure at 300 DPI.
func DefaultLayout() Layout {
	return Layout{WidthInches: defaultWidthInches, HeightInches: defaultHeightInches, DPI: defaultDPI}
}

func (l Layout) validate() error {
	if l.WidthInches <= 0 || l.HeightInches <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g in", l.WidthInches, l.HeightInches)
	}
	if l.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", l.DPI)
	}
	return nil
}

// Limits is a closed axis interval.
type Limits struct {
	Min float64
	Max float64
}

// Chart is everything a Renderer needs to draw one figure.
type Chart struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Curves []complexity.Curve
	Layout Layout
}

// Build samples b and assembles the chart for it.
func Build(b complexity.Bounds, layout Layout) (Chart, error) {
	if err := layout.validate(); err != nil {
		return Chart{}, err
	}
	r, err := complexity.NewInputRange(b)
	if err != nil {
		return Chart{}, err
	}
	return Chart{
		Name:   b.Name,
		Title:  fmt.Sprintf("Time Complexity Growth (n %s-%s)", formatBound(b.Start), formatBound(b.End)),
		XLabel: "n",
		YLabel: "Operations",
		Curves: complexity.Curves(r),
		Layout: layout,
	}, nil
}

// FileName is the PNG name used for bounds b.
func FileName(b complexity.Bounds) string {
	return "time_complexity_growth_" + b.Name + ".png"
}

// ScaleLimits returns the padded x and y limits of the non-dominant curves.
func ScaleLimits(curves []complexity.Curve) (x, y Limits) {
	x = Limits{Min: math.Inf(1), Max: math.Inf(-1)}
	y = x
	for _, c := range curves {
		if c.Dominant || len(c.X) == 0 || len(c.Y) == 0 {
			continue
		}
		x.Min = math.Min(x.Min, floats.Min(c.X))
		x.Max = math.Max(x.Max, floats.Max(c.X))
		y.Min = math.Min(y.Min, floats.Min(c.Y))
		y.Max = math.Max(y.Max, floats.Max(c.Y))
	}
	return withMargin(x), withMargin(y)
}

func withMargin(l Limits) Limits {
	if math.IsInf(l.Min, 0) || math.IsInf(l.Max, 0) {
		return Limits{Min: 0, Max: 1}
	}
	span := l.Max - l.Min
	if span == 0 {
		span = math.Max(math.Abs(l.Max), 1)
	}
	pad := span * autoscaleMargin
	return Limits{Min: l.Min - pad, Max: l.Max + pad}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
