// Package complexity samples input sizes and evaluates the growth functions
// compared on the charts.
package complexity

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DefaultSamples is the number of points drawn for every range.
const DefaultSamples = 1000

// Bounds describes one sampled range of n.
type Bounds struct {
	Name    string
	Start   float64
	End     float64
	Samples int
}

var (
	// Small covers n in [1, 100].
	Small = Bounds{Name: "small", Start: 1, End: 100, Samples: DefaultSamples}
	// Large covers n in [1, 100000].
	Large = Bounds{Name: "large", Start: 1, End: 100000, Samples: DefaultSamples}
)

func (b Bounds) validate() error {
	if b.Samples < 2 {
		return fmt.Errorf("range %q needs at least 2 samples, got %d", b.Name, b.Samples)
	}
	if b.Start <= 0 {
		return fmt.Errorf("range %q must start above 0, got %g", b.Name, b.Start)
	}
	if b.End <= b.Start {
		return fmt.Errorf("range %q end %g must exceed start %g", b.Name, b.End, b.Start)
	}
	return nil
}

// InputRange is an immutable, evenly spaced sample of n.
type InputRange struct {
	bounds Bounds
	values []float64
}

// NewInputRange samples b.
func NewInputRange(b Bounds) (InputRange, error) {
	if err := b.validate(); err != nil {
		return InputRange{}, err
	}
	return InputRange{bounds: b, values: Linspace(b.Start, b.End, b.Samples)}, nil
}

// Bounds returns the bounds the range was sampled from.
func (r InputRange) Bounds() Bounds { return r.bounds }

// Len returns the number of samples.
func (r InputRange) Len() int { return len(r.values) }

// Values returns a copy of the samples.
func (r InputRange) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// Linspace returns count evenly spaced values over [start, end]. The last
// value is exactly end.
func Linspace(start, end float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	out := make([]float64, count)
	if count == 1 {
		out[0] = start
		return out
	}
	floats.Span(out, start, end)
	out[count-1] = end
	return out
}
