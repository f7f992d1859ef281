// Command tfsolve runs the multilayer solver over a YAML scenario and
// writes reflectance/transmittance spectra as CSV, with optional PNG
// plots of the spectra and of the internal field map.
//
// Usage:
//
//	tfsolve -scenario stack.yaml [-v]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/thinfilm/dispersion"
	"github.com/katalvlaran/thinfilm/tmm"
)

func main() {
	scenario := flag.String("scenario", "", "path to the YAML scenario")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *scenario == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*scenario); err != nil {
		log.Fatal(err)
	}
}

func run(path string) error {
	s, err := loadScenario(path)
	if err != nil {
		return err
	}
	unit, err := s.unit()
	if err != nil {
		return err
	}
	pol, err := s.pol()
	if err != nil {
		return err
	}

	grid := s.grid()
	stack, err := s.buildStack(dispersion.Default(), grid, unit)
	if err != nil {
		return err
	}

	beam := tmm.Beam{Wavelengths: grid, Angles: s.angles(), Pol: pol}
	opts := tmm.DefaultOptions()
	opts.RefWavelength = s.Reference
	opts.Field = s.Field.Enable
	if s.Field.Points > 0 {
		opts.FieldPoints = s.Field.Points
	}

	log.WithFields(log.Fields{
		"layers":      len(stack),
		"wavelengths": len(grid),
		"angles":      len(beam.Angles),
		"pol":         pol.String(),
	}).Info("solving")

	res, err := tmm.Solve(beam, stack, opts)
	if err != nil {
		return err
	}

	if out := s.Output.Spectra; out != "" {
		if err := writeSpectra(out, res); err != nil {
			return err
		}
		log.WithField("path", out).Info("spectra written")
	}
	if out := s.Output.Plot; out != "" {
		if err := plotSpectra(out, res); err != nil {
			return err
		}
		log.WithField("path", out).Info("plot written")
	}
	if out := s.Output.FieldMap; out != "" {
		if !opts.Field {
			return fmt.Errorf("scenario: fieldmap output needs field.enable")
		}
		if err := plotFieldMap(out, res); err != nil {
			return err
		}
		log.WithField("path", out).Info("field map written")
	}
	return nil
}

// writeSpectra lays the result out as one row per wavelength with an
// R/T column pair per angle.
func writeSpectra(path string, res *tmm.Result) error {
	cols := []series.Series{series.New(res.Wavelengths, series.Float, "lambda")}
	for j, ang := range res.Angles {
		r := make([]float64, len(res.Wavelengths))
		t := make([]float64, len(res.Wavelengths))
		for i := range res.Wavelengths {
			r[i] = res.R[i][j]
			t[i] = res.T[i][j]
		}
		cols = append(cols,
			series.New(r, series.Float, fmt.Sprintf("R_%g", ang)),
			series.New(t, series.Float, fmt.Sprintf("T_%g", ang)))
	}

	df := dataframe.New(cols...)
	if df.Err != nil {
		return df.Err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return df.WriteCSV(f)
}
