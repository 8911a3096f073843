package chart

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// Engine names accepted by NewRenderer.
const (
	EngineGonum   = "gonum"
	EngineECharts = "echarts"
)

// Engines lists every engine name NewRenderer accepts, default first.
func Engines() []string {
	return []string{EngineGonum, EngineECharts}
}

// Renderer encodes a chart as PNG into w.
type Renderer interface {
	Render(ctx context.Context, c Chart, w io.Writer) error
}

// NewRenderer returns the renderer registered under engine. timeout only
// applies to engines that drive an external browser.
func NewRenderer(engine string, timeout time.Duration) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineGonum:
		return GonumRenderer{}, nil
	case EngineECharts:
		return EChartsRenderer{Timeout: timeout}, nil
	default:
		return nil, fmt.Errorf("unknown render engine %q", engine)
	}
}
