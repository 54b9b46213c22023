// Package config loads geomkit settings from YAML or JSON files layered over
// the built-in defaults.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/echoflaresat/geomkit/batch"
	"github.com/echoflaresat/geomkit/colors"
	"github.com/echoflaresat/geomkit/render"
	"github.com/soniakeys/unit"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var DEFAULT []byte

var ErrInvalidConfig = errors.New("invalid config")

const maxSize = 8192

func decodeYAML(r io.Reader, c *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	if err := decodeYAML(bytes.NewReader(DEFAULT), &c); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}
	return c
}

// readFile overlays the file at path onto c. Keys the file omits keep
// their current value.
func readFile(path string, c *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return decodeYAML(bytes.NewReader(data), c)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(c)
	}
	return fmt.Errorf("not in a valid format")
}

// Process reads the provided configuration files in order on top of the
// defaults and validates the result.
func Process(configPaths []string) (*Config, error) {
	c := Default()
	for _, path := range configPaths {
		if err := readFile(path, &c); err != nil {
			return nil, fmt.Errorf(
				"could not process config file %s: %w",
				path,
				err,
			)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Eval.Workers >= 0, "eval.workers must not be negative")
	check(c.Eval.CacheSize >= 0, "eval.cache-size must not be negative")
	if _, err := batch.ParseFormat(c.Eval.Format); err != nil {
		errs = append(errs, fmt.Errorf("eval.format: %w", err))
	}

	r := c.Render
	check(r.Size > 0 && r.Size <= maxSize, "render.size must be in (0, %d]", maxSize)
	check(r.Distance >= 0, "render.distance must not be negative")
	check(r.FOV > 0 && r.FOV < 180, "render.fov must be in (0, 180)")
	check(r.LineWidth > 0, "render.line-width must be positive")
	check(r.MarkerSize > 0, "render.marker-size must be positive")
	if _, err := r.Style(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Style converts the colour strings and sizes into a render.Style.
func (r RenderConfig) Style() (render.Style, error) {
	s := render.Style{LineWidth: r.LineWidth, MarkerSize: r.MarkerSize}
	for _, f := range []struct {
		name string
		hex  string
		dst  *colors.Color4
	}{
		{"background", r.Colors.Background, &s.Background},
		{"segment", r.Colors.Segment, &s.Segment},
		{"orb", r.Colors.Orb, &s.Orb},
		{"hexahedron", r.Colors.Hexahedron, &s.Hexahedron},
		{"hit", r.Colors.Hit, &s.Hit},
	} {
		c, err := colors.ParseHex(f.hex)
		if err != nil {
			return render.Style{}, fmt.Errorf("render.colors.%s: %w", f.name, err)
		}
		*f.dst = c
	}
	return s, nil
}

// Angles returns yaw, pitch and field of view.
func (r RenderConfig) Angles() (yaw, pitch, fov unit.Angle) {
	return unit.AngleFromDeg(r.Yaw), unit.AngleFromDeg(r.Pitch), unit.AngleFromDeg(r.FOV)
}
