package chart

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	cssDPI             = 96
	defaultRenderLimit = 30 * time.Second
	settleDelay        = 1500 * time.Millisecond

	colorBackground = "#ffffff"
	colorText       = "#262626"
	colorGrid       = "#b0b0b0"
)

var seriesColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd"}

// EChartsRenderer builds an echarts page and screenshots it with headless
// Chrome.
type EChartsRenderer struct {
	Timeout time.Duration
}

// Render implements Renderer.
func (r EChartsRenderer) Render(ctx context.Context, c Chart, w io.Writer) error {
	if err := c.Layout.validate(); err != nil {
		return err
	}
	if err := ensureHeadlessAvailable(ctx); err != nil {
		return fmt.Errorf("headless chrome unavailable: %w", err)
	}
	html, err := buildHTML(c)
	if err != nil {
		return err
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = defaultRenderLimit
	}
	png, err := renderHTMLToPNG(ctx, html, c.Layout, timeout)
	if err != nil {
		return fmt.Errorf("screenshot %s chart: %w", c.Name, err)
	}
	_, err = w.Write(png)
	return err
}

var (
	headlessMu      sync.Mutex
	headlessChecked bool
	headlessErr     error

	headlessCheck = func(ctx context.Context) error {
		parent, cancel := chromedp.NewContext(ctx)
		defer cancel()
		return chromedp.Run(parent)
	}
)

// ensureHeadlessAvailable starts Chrome once and remembers the outcome.
// Failures caused by ctx being cancelled or timing out are not remembered.
func ensureHeadlessAvailable(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	headlessMu.Lock()
	defer headlessMu.Unlock()
	if headlessChecked {
		return headlessErr
	}
	err := headlessCheck(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	headlessChecked, headlessErr = true, err
	return err
}

func pixelSize(l Layout) (width, height int) {
	return int(l.WidthInches * cssDPI), int(l.HeightInches * cssDPI)
}

func buildHTML(c Chart) ([]byte, error) {
	if len(c.Curves) == 0 {
		return nil, fmt.Errorf("no curves to render for %s chart", c.Name)
	}
	xLim, yLim := ScaleLimits(c.Curves)
	width, height := pixelSize(c.Layout)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:           fmt.Sprintf("%dpx", width),
			Height:          fmt.Sprintf("%dpx", height),
			BackgroundColor: colorBackground,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      c.Title,
			Left:       "center",
			TitleStyle: &opts.TextStyle{Color: colorText, FontSize: titleFontPt * cssDPI / 72},
		}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			Left:      "80",
			Top:       "50",
			Orient:    "vertical",
			TextStyle: &opts.TextStyle{Color: colorText, FontSize: legendFontPt * cssDPI / 72},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      c.XLabel,
			Type:      "value",
			Min:       xLim.Min,
			Max:       xLim.Max,
			SplitLine: &opts.SplitLine{Show: opts.Bool(true), LineStyle: &opts.LineStyle{Color: colorGrid, Opacity: opts.Float(0.3)}},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      c.YLabel,
			Type:      "value",
			Min:       yLim.Min,
			Max:       yLim.Max,
			AxisLabel: &opts.AxisLabel{Formatter: opts.FuncOpts(sciNotationJS)},
			SplitLine: &opts.SplitLine{Show: opts.Bool(true), LineStyle: &opts.LineStyle{Color: colorGrid, Opacity: opts.Float(0.3)}},
		}),
	)

	for i, curve := range c.Curves {
		style := opts.LineStyle{Color: seriesColors[i%len(seriesColors)], Width: lineWidthPt}
		if curve.Dashed {
			style.Type = "dashed"
		}
		line.AddSeries(curve.Label, toLineData(curve.X, curve.Y),
			charts.WithLineStyleOpts(style),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: style.Color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toLineData(xs, ys []float64) []opts.LineData {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	data := make([]opts.LineData, n)
	for i := 0; i < n; i++ {
		data[i] = opts.LineData{Value: []float64{xs[i], ys[i]}}
	}
	return data
}

func renderHTMLToPNG(ctx context.Context, html []byte, layout Layout, timeout time.Duration) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	parent, cancel := chromedp.NewContext(ctx)
	defer cancel()

	timeoutCtx, cancelTimeout := context.WithTimeout(parent, timeout)
	defer cancelTimeout()

	width, height := pixelSize(layout)
	scale := float64(layout.DPI) / cssDPI
	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)
	var screenshot []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(width), int64(height), chromedp.EmulateScale(scale)),
		chromedp.Navigate(dataURI),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		// quality 100 selects PNG encoding.
		chromedp.FullScreenshot(&screenshot, 100),
	}
	if err := chromedp.Run(timeoutCtx, tasks...); err != nil {
		return nil, err
	}
	return screenshot, nil
}
