package main

import (
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/thinfilm/dispersion"
	"github.com/katalvlaran/thinfilm/tmm"
)

// Scenario is the YAML description of one solver run: the beam grid,
// the stack from ambient to substrate, and the output files to write.
type Scenario struct {
	Wavelength struct {
		From   float64 `yaml:"from"`
		To     float64 `yaml:"to"`
		Points int     `yaml:"points"`
		Unit   string  `yaml:"unit"` // nm (default) or um
	} `yaml:"wavelength"`
	Angles       []float64 `yaml:"angles"`       // degrees; default [0]
	Polarization string    `yaml:"polarization"` // s (default) or p
	Reference    float64   `yaml:"reference"`    // design wavelength for quarter-wave layers
	Field        struct {
		Enable bool `yaml:"enable"`
		Points int  `yaml:"points"`
	} `yaml:"field"`
	Layers []LayerSpec `yaml:"layers"`
	Output struct {
		Spectra  string `yaml:"spectra"`  // CSV path
		Plot     string `yaml:"plot"`     // spectra PNG path
		FieldMap string `yaml:"fieldmap"` // field heat map PNG path
	} `yaml:"output"`
}

// LayerSpec names one layer. The first and last entries are the
// semi-infinite media and carry no thickness; interior entries give
// either a geometric thickness or a quarter-wave fraction.
type LayerSpec struct {
	Material    string  `yaml:"material"`
	N           float64 `yaml:"n"` // dummy material only
	K           float64 `yaml:"k"`
	Temperature float64 `yaml:"temperature"` // silicontemperature only, °C
	Thickness   float64 `yaml:"thickness"`   // same unit as the wavelength grid
	Quarter     float64 `yaml:"quarter"`     // fraction of the reference wavelength
}

func loadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	w := s.Wavelength
	if w.Points < 2 || w.To <= w.From || w.From <= 0 {
		return fmt.Errorf("scenario: wavelength grid needs from < to and at least 2 points")
	}
	if len(s.Layers) < 2 {
		return fmt.Errorf("scenario: need at least ambient and substrate layers")
	}
	for _, edge := range []int{0, len(s.Layers) - 1} {
		if s.Layers[edge].Thickness != 0 || s.Layers[edge].Quarter != 0 {
			return fmt.Errorf("scenario: layer %d is a semi-infinite medium and takes no thickness", edge)
		}
	}
	for i, l := range s.Layers[1 : len(s.Layers)-1] {
		if l.Thickness <= 0 && l.Quarter <= 0 {
			return fmt.Errorf("scenario: layer %d needs thickness or quarter", i+1)
		}
		if l.Quarter > 0 && s.Reference <= 0 {
			return fmt.Errorf("scenario: quarter-wave layer %d needs a reference wavelength", i+1)
		}
	}
	return nil
}

func (s *Scenario) unit() (dispersion.Unit, error) {
	switch strings.ToLower(s.Wavelength.Unit) {
	case "", "nm":
		return dispersion.Nanometer, nil
	case "um":
		return dispersion.Micrometer, nil
	}
	return 0, fmt.Errorf("scenario: unknown wavelength unit %q", s.Wavelength.Unit)
}

func (s *Scenario) pol() (tmm.Polarization, error) {
	switch strings.ToLower(s.Polarization) {
	case "", "s":
		return tmm.PolS, nil
	case "p":
		return tmm.PolP, nil
	}
	return 0, fmt.Errorf("scenario: unknown polarization %q", s.Polarization)
}

func (s *Scenario) grid() []float64 {
	g := make([]float64, s.Wavelength.Points)
	floats.Span(g, s.Wavelength.From, s.Wavelength.To)
	return g
}

func (s *Scenario) angles() []float64 {
	if len(s.Angles) == 0 {
		return []float64{0}
	}
	return s.Angles
}

// materialFor maps a layer entry onto the dispersion surface: the
// analytic names, the parametric silicon model, and everything else by
// catalog lookup.
func materialFor(l LayerSpec) (dispersion.Material, error) {
	name := strings.ToLower(l.Material)
	switch name {
	case "air":
		return dispersion.Air(), nil
	case "dummy":
		if l.N <= 0 {
			return dispersion.Material{}, fmt.Errorf("scenario: dummy layer needs n > 0")
		}
		return dispersion.Dummy(l.N, l.K), nil
	case "glass":
		return dispersion.Glass(), nil
	case "fusedsilicauv":
		return dispersion.FusedSilicaUV(), nil
	case "etoh":
		return dispersion.Ethanol(), nil
	case "silicontemperature":
		return dispersion.SiliconT(l.Temperature), nil
	case "":
		return dispersion.Material{}, fmt.Errorf("scenario: layer without material name")
	}
	return dispersion.Tabulated(name), nil
}

// buildStack resolves every layer on the grid and assembles the solver
// input. Quarter-wave layers take their reference index from a
// single-point resolve at the reference wavelength.
func (s *Scenario) buildStack(res *dispersion.Resolver, grid []float64, unit dispersion.Unit) (tmm.Stack, error) {
	stack := make(tmm.Stack, 0, len(s.Layers))
	for i, l := range s.Layers {
		mat, err := materialFor(l)
		if err != nil {
			return nil, err
		}
		index, err := res.Resolve(mat, grid, unit)
		if err != nil {
			return nil, fmt.Errorf("layer %d (%s): %w", i, mat.Name(), err)
		}

		switch {
		case i == 0 || i == len(s.Layers)-1:
			stack = append(stack, tmm.Ambient(index))
		case l.Quarter > 0:
			ref, err := res.Resolve(mat, []float64{s.Reference}, unit)
			if err != nil {
				return nil, fmt.Errorf("layer %d (%s) at reference: %w", i, mat.Name(), err)
			}
			stack = append(stack, tmm.QuarterWave(index, ref[0], l.Quarter))
		default:
			stack = append(stack, tmm.Slab(index, l.Thickness))
		}
	}
	return stack, nil
}
