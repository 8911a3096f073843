package chart

import (
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
)

func TestSciNotation(t *testing.T) {
	sci := regexp.MustCompile(`^-?\d\.\de[+-]\d{2,}$`)

	assert.Equal(t, "0", SciNotation(0))

	cases := map[float64]string{
		10000:   "1.0e+04",
		25000:   "2.5e+04",
		-10000:  "-1.0e+04",
		1.5e9:   "1.5e+09",
		0.0005:  "5.0e-04",
		-0.0002: "-2.0e-04",
	}
	for in, want := range cases {
		got := SciNotation(in)
		assert.Equal(t, want, got, "x=%g", in)
		assert.Regexp(t, sci, got)
	}

	for _, x := range []float64{0.001, 0.4, 1, 42.4, 999.5, 2000, 9999.4, -500} {
		got := SciNotation(x)
		assert.False(t, strings.Contains(got, "."), "x=%g gave %q", x, got)
		assert.False(t, strings.Contains(got, "e"), "x=%g gave %q", x, got)
	}
	assert.Equal(t, "2000", SciNotation(2000))
	assert.Equal(t, "42", SciNotation(42.4))
}

func TestSciTickerLabelsMajorTicksOnly(t *testing.T) {
	ticker := sciTicker{Ticker: plot.DefaultTicks{}}
	ticks := ticker.Ticks(-1000, 40000)
	var majors int
	for _, tk := range ticks {
		if tk.IsMinor() {
			continue
		}
		majors++
		if math.Abs(tk.Value) < 1e-6 {
			assert.Equal(t, "0", tk.Label)
			continue
		}
		assert.Equal(t, SciNotation(tk.Value), tk.Label)
	}
	assert.Greater(t, majors, 1)
}

func TestSciTickerSnapsZero(t *testing.T) {
	ticker := sciTicker{Ticker: plot.ConstantTicks{{Value: 1e-13, Label: "x"}, {Value: 5000, Label: "y"}}}
	ticks := ticker.Ticks(-100, 5000)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "5000", ticks[1].Label)
}
