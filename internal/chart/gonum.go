package chart

import (
	"context"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"growthplot/internal/complexity"
)

var (
	palette = []color.Color{
		color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	}
	gridColor   = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0x4d}
	legendFrame = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

const (
	titleFontPt  = 14
	labelFontPt  = 12
	legendFontPt = 11
	lineWidthPt  = 2
	legendPadPt  = 4
)

// GonumRenderer draws charts with gonum/plot and encodes them as PNG.
type GonumRenderer struct{}

// Render implements Renderer.
func (GonumRenderer) Render(_ context.Context, c Chart, w io.Writer) error {
	if err := c.Layout.validate(); err != nil {
		return err
	}
	p, _, err := buildPlot(c)
	if err != nil {
		return err
	}
	width := vg.Length(c.Layout.WidthInches) * vg.Inch
	height := vg.Length(c.Layout.HeightInches) * vg.Inch
	canvas := vgimg.NewWith(vgimg.UseWH(width, height), vgimg.UseDPI(c.Layout.DPI))
	p.Draw(draw.New(canvas))
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png for %s chart: %w", c.Name, err)
	}
	return nil
}

// buildPlot lays out every curve of c. The returned limits are the y-axis
// bounds taken before any dominant curve was added; the plot's y-axis is
// left at exactly those bounds.
func buildPlot(c Chart) (*plot.Plot, Limits, error) {
	p := plot.New()
	p.Title.Text = c.Title
	p.Title.TextStyle.Font.Size = vg.Points(titleFontPt)
	p.X.Label.Text = c.XLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(labelFontPt)
	p.Y.Label.Text = c.YLabel
	p.Y.Label.TextStyle.Font.Size = vg.Points(labelFontPt)
	p.Y.Tick.Marker = sciTicker{Ticker: plot.DefaultTicks{}}
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = vg.Points(legendFontPt)

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	var deferred []int
	for i, curve := range c.Curves {
		if curve.Dominant {
			deferred = append(deferred, i)
			continue
		}
		if err := addCurve(p, curve, palette[i%len(palette)]); err != nil {
			return nil, Limits{}, err
		}
	}

	xLim := withMargin(Limits{Min: p.X.Min, Max: p.X.Max})
	yLim := withMargin(Limits{Min: p.Y.Min, Max: p.Y.Max})

	for _, i := range deferred {
		if err := addCurve(p, c.Curves[i], palette[i%len(palette)]); err != nil {
			return nil, Limits{}, err
		}
	}

	// Drawn after every curve and before the legend itself.
	p.Add(legendBackdrop{})

	p.X.Min, p.X.Max = xLim.Min, xLim.Max
	p.Y.Min, p.Y.Max = yLim.Min, yLim.Max
	return p, yLim, nil
}

// legendBackdrop paints an opaque box under the legend so curves running
// through the legend corner do not cross its labels.
type legendBackdrop struct{}

func (legendBackdrop) Plot(c draw.Canvas, plt *plot.Plot) {
	r := plt.Legend.Rectangle(c)
	if r.Size().X <= 0 || r.Size().Y <= 0 {
		return
	}
	pad := vg.Points(legendPadPt)
	box := []vg.Point{
		{X: r.Min.X - pad, Y: r.Min.Y - pad},
		{X: r.Max.X + pad, Y: r.Min.Y - pad},
		{X: r.Max.X + pad, Y: r.Max.Y + pad},
		{X: r.Min.X - pad, Y: r.Max.Y + pad},
	}
	c.FillPolygon(color.White, box)
	c.StrokeLines(draw.LineStyle{Color: legendFrame, Width: vg.Points(0.8)}, append(box, box[0]))
}

func addCurve(p *plot.Plot, curve complexity.Curve, col color.Color) error {
	if len(curve.X) != len(curve.Y) {
		return fmt.Errorf("curve %s: %d x values for %d y values", curve.Label, len(curve.X), len(curve.Y))
	}
	pts := make(plotter.XYs, len(curve.X))
	for i := range pts {
		pts[i].X = curve.X[i]
		pts[i].Y = curve.Y[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("curve %s: %w", curve.Label, err)
	}
	line.LineStyle.Width = vg.Points(lineWidthPt)
	line.LineStyle.Color = col
	if curve.Dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(7.4), vg.Points(3.2)}
	}
	p.Add(line)
	p.Legend.Add(curve.Label, line)
	return nil
}
