package chart

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"growthplot/internal/complexity"
)

func TestBuildTitlesAndCurves(t *testing.T) {
	small, err := Build(complexity.Small, DefaultLayout())
	require.NoError(t, err)
	assert.Equal(t, "Time Complexity Growth (n 1-100)", small.Title)
	assert.Equal(t, "n", small.XLabel)
	assert.Equal(t, "Operations", small.YLabel)
	assert.Len(t, small.Curves, 5)

	large, err := Build(complexity.Large, DefaultLayout())
	require.NoError(t, err)
	assert.Equal(t, "Time Complexity Growth (n 1-100000)", large.Title)

	_, err = Build(complexity.Small, Layout{WidthInches: 10, HeightInches: 6})
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "time_complexity_growth_small.png", FileName(complexity.Small))
	assert.Equal(t, "time_complexity_growth_large.png", FileName(complexity.Large))
}

func TestScaleLimitsIgnoreDominantCurve(t *testing.T) {
	c, err := Build(complexity.Small, DefaultLayout())
	require.NoError(t, err)

	x, y := ScaleLimits(c.Curves)
	// n log^2 n peaks at 100*log2(100)^2 for n = 100; n log n starts at 0.
	peak := 100 * math.Pow(math.Log2(100), 2)
	span := peak
	assert.InDelta(t, -span*autoscaleMargin, y.Min, 1e-9)
	assert.InDelta(t, peak+span*autoscaleMargin, y.Max, 1e-9)
	assert.Less(t, y.Max, 10000.0, "n^2 must not widen the axis")
	assert.InDelta(t, 1-99*autoscaleMargin, x.Min, 1e-9)
	assert.InDelta(t, 100+99*autoscaleMargin, x.Max, 1e-9)
}

func TestScaleLimitsFallbacks(t *testing.T) {
	_, y := ScaleLimits(nil)
	assert.Equal(t, Limits{Min: 0, Max: 1}, y)

	flat := []complexity.Curve{{Label: "flat", X: []float64{1, 2}, Y: []float64{5, 5}}}
	_, y = ScaleLimits(flat)
	assert.Less(t, y.Min, 5.0)
	assert.Greater(t, y.Max, 5.0)

	withEmpty := append([]complexity.Curve{{Label: "empty"}}, flat...)
	x, y := ScaleLimits(withEmpty)
	assert.Less(t, x.Min, 1.0)
	assert.Greater(t, x.Max, 2.0)
	assert.Less(t, y.Min, 5.0)
}

func TestBuildPlotPreservesScale(t *testing.T) {
	for _, b := range []complexity.Bounds{complexity.Small, complexity.Large} {
		c, err := Build(b, DefaultLayout())
		require.NoError(t, err)

		p, captured, err := buildPlot(c)
		require.NoError(t, err)

		assert.Equal(t, captured.Min, p.Y.Min, b.Name)
		assert.Equal(t, captured.Max, p.Y.Max, b.Name)

		_, want := ScaleLimits(c.Curves)
		assert.InDelta(t, want.Min, captured.Min, 1e-6, b.Name)
		assert.InDelta(t, want.Max, captured.Max, 1e-6*math.Abs(want.Max), b.Name)

		dominant := c.Curves[len(c.Curves)-1]
		require.True(t, dominant.Dominant)
		assert.Greater(t, dominant.Max(), p.Y.Max, b.Name)
	}
}

func TestLegendBackdropSitsBetweenCurvesAndLabels(t *testing.T) {
	c, err := Build(complexity.Small, DefaultLayout())
	require.NoError(t, err)
	p, _, err := buildPlot(c)
	require.NoError(t, err)

	rec := &recorder.Canvas{}
	p.Draw(draw.Canvas{Canvas: rec, Rectangle: vg.Rectangle{Max: vg.Point{X: 10 * vg.Inch, Y: 6 * vg.Inch}}})

	backdrop, firstLabel := -1, -1
	for i, a := range rec.Actions {
		switch act := a.(type) {
		case *recorder.Fill:
			if i == 0 || firstLabel >= 0 {
				continue
			}
			if sc, ok := rec.Actions[i-1].(*recorder.SetColor); ok && isWhite(sc.Color) {
				backdrop = i
			}
		case *recorder.FillString:
			if act.String == "n^(3/2)" && firstLabel < 0 {
				firstLabel = i
			}
		}
	}
	require.Positive(t, firstLabel, "legend label not drawn")
	require.Positive(t, backdrop, "no white fill before the legend")

	// The dashed n^2 curve is stroked before the backdrop covers it.
	dashedBefore := false
	for _, a := range rec.Actions[:backdrop] {
		if d, ok := a.(*recorder.SetLineDash); ok && len(d.Dashes) > 0 {
			dashedBefore = true
		}
	}
	assert.True(t, dashedBefore, "backdrop must be drawn over the curves")
}

func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff
}

func TestGonumRendererWritesPNG(t *testing.T) {
	c, err := Build(complexity.Small, Layout{WidthInches: 4, HeightInches: 3, DPI: 50})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, GonumRenderer{}.Render(context.Background(), c, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer("", 0)
	require.NoError(t, err)
	assert.IsType(t, GonumRenderer{}, r)

	r, err = NewRenderer(" ECharts ", 0)
	require.NoError(t, err)
	assert.IsType(t, EChartsRenderer{}, r)

	_, err = NewRenderer("svg", 0)
	assert.Error(t, err)
}
