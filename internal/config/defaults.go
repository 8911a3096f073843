package config

import (
	"strings"

	"growthplot/internal/chart"
)

const (
	defaultAppEnv         = "dev"
	defaultAppLogLevel    = "info"
	defaultOutputDir      = "outputs"
	defaultWidthInches    = 10
	defaultHeightInches   = 6
	defaultDPI            = 300
	defaultRenderEngine   = chart.EngineGonum
	defaultRenderTimeoutS = 30
)

func (c *Config) applyDefaults(keys keySet) {
	c.App.applyDefaults(keys)
	c.Output.applyDefaults(keys)
	c.Render.applyDefaults(keys)
}

func (a *AppConfig) applyDefaults(keys keySet) {
	applyFieldDefaults(keys,
		stringFieldDefault("app.env", &a.Env, defaultAppEnv),
		stringFieldDefault("app.log_level", &a.LogLevel, defaultAppLogLevel),
	)
}

func (o *OutputConfig) applyDefaults(keys keySet) {
	applyFieldDefaults(keys,
		stringFieldDefault("output.dir", &o.Dir, defaultOutputDir),
		fieldDefault{
			key:   "output.width_inches",
			need:  func() bool { return o.WidthInches <= 0 },
			apply: func() { o.WidthInches = defaultWidthInches },
		},
		fieldDefault{
			key:   "output.height_inches",
			need:  func() bool { return o.HeightInches <= 0 },
			apply: func() { o.HeightInches = defaultHeightInches },
		},
		fieldDefault{
			key:   "output.dpi",
			need:  func() bool { return o.DPI <= 0 },
			apply: func() { o.DPI = defaultDPI },
		},
	)
}

func (r *RenderConfig) applyDefaults(keys keySet) {
	applyFieldDefaults(keys,
		stringFieldDefault("render.engine", &r.Engine, defaultRenderEngine),
		fieldDefault{
			key:   "render.timeout_seconds",
			need:  func() bool { return r.TimeoutSeconds <= 0 },
			apply: func() { r.TimeoutSeconds = defaultRenderTimeoutS },
		},
	)
	r.Engine = strings.ToLower(strings.TrimSpace(r.Engine))
}

func applyFieldDefaults(keys keySet, defs ...fieldDefault) {
	for _, def := range defs {
		if def.apply == nil {
			continue
		}
		if def.key != "" && keys.isSet(def.key) {
			continue
		}
		if def.need != nil && !def.need() {
			continue
		}
		def.apply()
	}
}

func stringFieldDefault(key string, target *string, def string) fieldDefault {
	return fieldDefault{
		key: key,
		need: func() bool {
			return target != nil && strings.TrimSpace(*target) == ""
		},
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}
