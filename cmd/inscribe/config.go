package main

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/inscribe/animate"
	"github.com/osuushi/inscribe/internal"
)

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PolygonConfig struct {
	Sides    int         `yaml:"sides"`
	Radius   float64     `yaml:"radius"`
	Rotation float64     `yaml:"rotation"`
	Center   PointConfig `yaml:"center"`
}

type FramesConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
	Steps int `yaml:"steps"`
}

type OutputConfig struct {
	Dir    string  `yaml:"dir"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	SVG    bool    `yaml:"svg"`
}

// Scenario for one run. The outer polygon's rotation and center come from the
// sampler, so only its side count and starting radius are configurable.
type Config struct {
	Inner  PolygonConfig `yaml:"inner"`
	Outer  PolygonConfig `yaml:"outer"`
	Frames FramesConfig  `yaml:"frames"`
	// Go duration syntax, like "250ms"
	Delay  string       `yaml:"delay"`
	Output OutputConfig `yaml:"output"`
}

// A square swinging around a triangle. This pair converges at every
// orientation, which makes it a good looking default.
func DefaultConfig() Config {
	return Config{
		Inner:  PolygonConfig{Sides: 3, Radius: 100},
		Outer:  PolygonConfig{Sides: 4, Radius: 150},
		Frames: FramesConfig{Start: 0, End: animate.DefaultSteps, Steps: animate.DefaultSteps},
		Delay:  animate.DefaultDelay.String(),
		Output: OutputConfig{Dir: "out", Width: 600, Height: 600, Scale: 1},
	}
}

// Read a YAML file over the defaults. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing %s", path)
	}
	return config, nil
}

func (c Config) DelayDuration() (time.Duration, error) {
	if c.Delay == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Delay)
	if err != nil {
		return 0, errors.Wrap(err, "delay")
	}
	if d < 0 {
		return 0, errors.Errorf("delay must not be negative, got %s", d)
	}
	return d, nil
}

func (c Config) Validate() error {
	if _, err := c.InnerPolygon(); err != nil {
		return err
	}
	if c.Outer.Sides < 3 {
		return errors.Wrapf(internal.ErrInvalidGeometry, "outer polygon needs at least 3 sides, got %d", c.Outer.Sides)
	}
	if c.Outer.Radius <= 0 {
		return errors.Wrapf(internal.ErrInvalidGeometry, "outer radius must be positive, got %v", c.Outer.Radius)
	}
	if c.Frames.End < c.Frames.Start {
		return errors.Errorf("frame range %d..%d is backwards", c.Frames.Start, c.Frames.End)
	}
	if c.Frames.Steps <= 0 {
		return errors.Errorf("frame steps must be positive, got %d", c.Frames.Steps)
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 || c.Output.Scale <= 0 {
		return errors.Errorf("output size %dx%d at scale %v is not drawable", c.Output.Width, c.Output.Height, c.Output.Scale)
	}
	_, err := c.DelayDuration()
	return err
}

func (c Config) InnerPolygon() (*internal.RegularPolygon, error) {
	center := internal.Point{X: c.Inner.Center.X, Y: c.Inner.Center.Y}
	poly, err := internal.NewRegularPolygon(center, c.Inner.Sides, c.Inner.Radius, c.Inner.Rotation)
	return poly, errors.Wrap(err, "inner polygon")
}

func (c Config) Sampler() (*animate.Sampler, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	inner, err := c.InnerPolygon()
	if err != nil {
		return nil, err
	}
	return &animate.Sampler{
		Inner:       inner,
		OuterSides:  c.Outer.Sides,
		OuterRadius: c.Outer.Radius,
		Start:       c.Frames.Start,
		End:         c.Frames.End,
		Steps:       c.Frames.Steps,
	}, nil
}
