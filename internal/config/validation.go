package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"growthplot/internal/chart"
)

//go:embed schema.json
var schemaJSON string

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", strings.NewReader(schemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schemaCompiled, schemaErr = compiler.Compile("config.schema.json")
	})
	return schemaCompiled, schemaErr
}

// validateSchema checks merged settings against the embedded JSON schema.
func validateSchema(settings map[string]any) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config settings: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("decode config settings: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// checkKnownKeys rejects files carrying keys Config does not declare.
func checkKnownKeys(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file failed (%s): %w", path, err)
	}
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config file failed (%s): %w", path, err)
	}
	return nil
}

func validate(c *Config) error {
	if err := c.Output.validate(); err != nil {
		return err
	}
	return c.Render.validate()
}

func (o *OutputConfig) validate() error {
	if strings.TrimSpace(o.Dir) == "" {
		return errors.New("output.dir cannot be empty")
	}
	if o.WidthInches <= 0 || o.HeightInches <= 0 {
		return fmt.Errorf("output size must be positive, got %gx%g", o.WidthInches, o.HeightInches)
	}
	if o.DPI <= 0 {
		return fmt.Errorf("output.dpi must be > 0")
	}
	return nil
}

func (r *RenderConfig) validate() error {
	if engines := chart.Engines(); !slices.Contains(engines, r.Engine) {
		return fmt.Errorf("render.engine must be one of %s, got %q", strings.Join(engines, ", "), r.Engine)
	}
	if r.TimeoutSeconds < 0 {
		return fmt.Errorf("render.timeout_seconds must be >= 0")
	}
	return nil
}
