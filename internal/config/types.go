package config

import (
	"strings"
	"time"
)

// Config is the root of growthplot's configuration file.
type Config struct {
	Include []string     `toml:"include" yaml:"include"`
	App     AppConfig    `toml:"app" yaml:"app"`
	Output  OutputConfig `toml:"output" yaml:"output"`
	Render  RenderConfig `toml:"render" yaml:"render"`
}

type AppConfig struct {
	Env      string `toml:"env" yaml:"env"`
	LogLevel string `toml:"log_level" yaml:"log_level"`
	LogPath  string `toml:"log_path" yaml:"log_path"`
}

// OutputConfig controls where charts land and how large they are.
// A relative Dir is resolved against the executable's directory, except for
// `go run` binaries (built under a go-build* temp dir), which resolve it
// against the working directory.
type OutputConfig struct {
	Dir          string  `toml:"dir" yaml:"dir"`
	WidthInches  float64 `toml:"width_inches" yaml:"width_inches"`
	HeightInches float64 `toml:"height_inches" yaml:"height_inches"`
	DPI          int     `toml:"dpi" yaml:"dpi"`
}

type RenderConfig struct {
	Engine         string `toml:"engine" yaml:"engine"`
	TimeoutSeconds int    `toml:"timeout_seconds" yaml:"timeout_seconds"`
}

// Timeout converts TimeoutSeconds to a duration.
func (r RenderConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// keySet tracks the dotted paths set explicitly in config files.
type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	_, ok := k[strings.ToLower(strings.TrimSpace(path))]
	return ok
}

// fieldDefault describes how a single field falls back to its default.
type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}
