package chart

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
)

// SciNotation formats a y-axis tick value. Zero is "0", very large or very
// small magnitudes use one-decimal scientific notation and everything else
// is rounded to an integer.
func SciNotation(x float64) string {
	if x == 0 {
		return "0"
	}
	if abs := math.Abs(x); abs >= 1e4 || abs < 1e-3 {
		return fmt.Sprintf("%.1e", x)
	}
	return fmt.Sprintf("%.0f", x)
}

// sciNotationJS mirrors SciNotation for the echarts axis formatter. It is
// embedded verbatim in JSON, so it avoids backslashes and double quotes.
const sciNotationJS = `function (x) {
  if (x === 0) { return '0'; }
  var a = Math.abs(x);
  if (a >= 1e4 || a < 1e-3) {
    var s = x.toExponential(1);
    return s.replace(/e([+-])([0-9])$/, function (m, sign, d) { return 'e' + sign + '0' + d; });
  }
  return x.toFixed(0);
}`

// sciTicker relabels the major ticks of the wrapped ticker.
type sciTicker struct {
	plot.Ticker
}

func (t sciTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	eps := (max - min) * 1e-9
	for i := range ticks {
		if ticks[i].IsMinor() {
			continue
		}
		v := ticks[i].Value
		if math.Abs(v) < eps {
			v = 0
		}
		ticks[i].Label = SciNotation(v)
	}
	return ticks
}
