// Package config loads driver parameters and sweep settings from YAML.
package config

import (
	"bytes"
	"io"
	"os"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-driver/measure/sweep"
	"github.com/cwbudde/algo-driver/transducer"
)

// SweepConfig is the on-disk form of a frequency grid. Zero fields fall back
// to the default grid derived from the driver's center frequency.
type SweepConfig struct {
	Start   float64 `yaml:"start,omitempty" json:"start,omitempty"`
	End     float64 `yaml:"end,omitempty" json:"end,omitempty"`
	Points  int     `yaml:"points,omitempty" json:"points,omitempty"`
	Spacing string  `yaml:"spacing,omitempty" json:"spacing,omitempty"`
}

// File is a complete simulation input.
type File struct {
	Parameters transducer.Parameters `yaml:"parameters" json:"parameters"`
	Sweep      SweepConfig           `yaml:"sweep" json:"sweep"`
}

// Default returns the reference driver with an empty sweep section.
func Default() *File {
	return &File{Parameters: transducer.DefaultParameters()}
}

// Load reads a YAML file. Parameters missing from the file keep their
// default values.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to open config file %s", path)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to load config file %s", path)
	}
	return c, nil
}

// Decode parses YAML from r on top of [Default] and validates the result.
// Unknown keys are rejected so typos in parameter names do not silently
// fall back to defaults.
func Decode(r io.Reader) (*File, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, pkgerrors.Wrap(err, "failed to decode config")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the parameters and the sweep grid.
func (c *File) Validate() error {
	if err := c.Parameters.Validate(); err != nil {
		return pkgerrors.Wrap(err, "invalid parameters")
	}

	g, err := c.Grid()
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return pkgerrors.Wrap(err, "invalid sweep")
	}
	return nil
}

// Grid resolves the sweep section against the default grid.
func (c *File) Grid() (*sweep.Grid, error) {
	return c.Sweep.Resolve(c.Parameters.CenterFreq)
}

// Resolve fills unset fields from sweep.Default(f0, sweep.DefaultPoints).
func (s SweepConfig) Resolve(f0 float64) (*sweep.Grid, error) {
	g := sweep.Default(f0, sweep.DefaultPoints)

	if s.Start != 0 {
		g.StartFreq = s.Start
	}
	if s.End != 0 {
		g.EndFreq = s.End
	}
	if s.Points != 0 {
		g.Points = s.Points
	}

	spacing, err := sweep.ParseSpacing(s.Spacing)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "invalid sweep")
	}
	g.Spacing = spacing

	return g, nil
}

// Encode writes c as YAML.
func (c *File) Encode(w io.Writer) error {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return pkgerrors.Wrap(err, "failed to encode config")
	}
	if err := enc.Close(); err != nil {
		return pkgerrors.Wrap(err, "failed to encode config")
	}

	_, err := w.Write(buf.Bytes())
	return pkgerrors.Wrap(err, "failed to write config")
}
