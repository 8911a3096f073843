package chart

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"growthplot/internal/complexity"
	"growthplot/internal/logger"
)

// Generator renders charts to files and reports each saved path.
type Generator struct {
	renderer Renderer
	layout   Layout
	console  io.Writer
}

// NewGenerator builds a Generator. A nil console discards confirmations.
func NewGenerator(renderer Renderer, layout Layout, console io.Writer) *Generator {
	if renderer == nil {
		renderer = GonumRenderer{}
	}
	if console == nil {
		console = io.Discard
	}
	return &Generator{renderer: renderer, layout: layout, console: console}
}

// Generate renders the chart for b and writes it to outputPath, creating
// the parent directory when missing.
func (g *Generator) Generate(ctx context.Context, b complexity.Bounds, outputPath string) error {
	c, err := Build(b, g.layout)
	if err != nil {
		return fmt.Errorf("build %s chart: %w", b.Name, err)
	}
	log := logger.FromContext(ctx).With("chart", b.Name)
	log.Debugf("%s chart: %d curves, %d samples over [%g, %g]", b.Name, len(c.Curves), b.Samples, b.Start, b.End)

	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outputPath, err)
	}
	if err := g.renderer.Render(ctx, c, f); err != nil {
		f.Close()
		return fmt.Errorf("render %s chart: %w", b.Name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outputPath, err)
	}

	fmt.Fprintf(g.console, "%s n plot saved to: %s\n", displayName(b.Name), outputPath)
	log.Infof("saved %s chart to %s", b.Name, outputPath)
	return nil
}

func displayName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
