package app

import (
	"fmt"
	"strings"

	"growthplot/internal/chart"
	"growthplot/internal/complexity"
	"growthplot/internal/logger"
)

// StartupSummary describes what a run is about to produce.
type StartupSummary struct {
	RunID     string
	Env       string
	Engine    string
	OutputDir string
	Layout    chart.Layout
	Ranges    []complexity.Bounds
}

// Lines renders the summary one setting per line.
func (s *StartupSummary) Lines() []string {
	ranges := make([]string, 0, len(s.Ranges))
	for _, b := range s.Ranges {
		ranges = append(ranges, fmt.Sprintf("%s=[%g, %g]x%d", b.Name, b.Start, b.End, b.Samples))
	}
	return []string{
		fmt.Sprintf("run id: %s", s.RunID),
		fmt.Sprintf("env: %s", s.Env),
		fmt.Sprintf("engine: %s", s.Engine),
		fmt.Sprintf("output: %s", s.OutputDir),
		fmt.Sprintf("figure: %gx%g in @ %d dpi", s.Layout.WidthInches, s.Layout.HeightInches, s.Layout.DPI),
		fmt.Sprintf("ranges: %s", formatList(ranges)),
	}
}

// Log writes the summary at debug level.
func (s *StartupSummary) Log(log logger.Entry) {
	for _, line := range s.Lines() {
		log.Debugf("%s", line)
	}
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
