// Package app wires configuration, rendering and the chart generator into
// a single run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"growthplot/internal/chart"
	"growthplot/internal/complexity"
	"growthplot/internal/config"
	"growthplot/internal/logger"
)

// App renders the small and large growth charts into one output directory.
type App struct {
	cfg       *config.Config
	runID     string
	outputDir string
	ranges    []complexity.Bounds
	generator *chart.Generator
	Summary   *StartupSummary
}

// NewApp builds an App from cfg. Confirmation lines go to console.
func NewApp(cfg *config.Config, console io.Writer) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	logger.SetLevel(cfg.App.LogLevel)
	return buildApp(cfg, console)
}

// chartDir is the resolved, absolute chart directory.
type chartDir string

func provideRenderer(cfg *config.Config) (chart.Renderer, error) {
	return chart.NewRenderer(cfg.Render.Engine, cfg.Render.Timeout())
}

func provideLayout(cfg *config.Config) chart.Layout {
	return chart.Layout{
		WidthInches:  cfg.Output.WidthInches,
		HeightInches: cfg.Output.HeightInches,
		DPI:          cfg.Output.DPI,
	}
}

func provideOutputDir(cfg *config.Config) (chartDir, error) {
	dir, err := resolveOutputDir(cfg.Output.Dir)
	if err != nil {
		return "", fmt.Errorf("resolve output dir: %w", err)
	}
	return chartDir(dir), nil
}

func newApp(cfg *config.Config, dir chartDir, layout chart.Layout, generator *chart.Generator) *App {
	a := &App{
		cfg:       cfg,
		runID:     uuid.NewString(),
		outputDir: string(dir),
		ranges:    []complexity.Bounds{complexity.Small, complexity.Large},
		generator: generator,
	}
	a.Summary = &StartupSummary{
		RunID:     a.runID,
		Env:       cfg.App.Env,
		Engine:    cfg.Render.Engine,
		OutputDir: a.outputDir,
		Layout:    layout,
		Ranges:    a.ranges,
	}
	return a
}

// OutputDir is the resolved directory charts are written to.
func (a *App) OutputDir() string { return a.outputDir }

// Run creates the output directory and renders every chart in order. The
// first failure stops the run.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.cfg == nil || a.generator == nil {
		return errors.New("app not initialized")
	}
	ctx = logger.NewContext(ctx, "run_id", a.runID)
	log := logger.FromContext(ctx)
	if a.Summary != nil {
		a.Summary.Log(log)
	}
	if err := os.MkdirAll(a.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, b := range a.ranges {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(a.outputDir, chart.FileName(b))
		if err := a.generator.Generate(ctx, b, path); err != nil {
			log.Errorf("%s chart failed: %v", b.Name, err)
			return err
		}
	}
	log.Infof("finished: %d charts in %s", len(a.ranges), a.outputDir)
	return nil
}

func resolveOutputDir(dir string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		exe = ""
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return resolveOutputDirFrom(dir, exe, cwd, os.TempDir()), nil
}

// resolveOutputDirFrom anchors a relative dir next to the executable, or in
// cwd when the executable is unknown or lives in a go-build* directory under
// tmp (a `go run` binary).
func resolveOutputDirFrom(dir, exe, cwd, tmp string) string {
	dir = strings.TrimSpace(dir)
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	base := cwd
	if exe != "" {
		exeDir := filepath.Dir(exe)
		if !isGoRunBuild(exeDir, tmp) {
			base = exeDir
		}
	}
	return filepath.Join(base, dir)
}

func isGoRunBuild(path, tmp string) bool {
	if tmp == "" {
		return false
	}
	rel, err := filepath.Rel(filepath.Clean(tmp), filepath.Clean(path))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	first, _, _ := strings.Cut(rel, string(filepath.Separator))
	return strings.HasPrefix(first, "go-build")
}
