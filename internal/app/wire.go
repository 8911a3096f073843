//go:build wireinject

package app

import (
	"io"

	"github.com/google/wire"

	"growthplot/internal/chart"
	"growthplot/internal/config"
)

func buildApp(cfg *config.Config, console io.Writer) (*App, error) {
	wire.Build(
		provideRenderer,
		provideLayout,
		provideOutputDir,
		chart.NewGenerator,
		newApp,
	)
	return nil, nil
}
