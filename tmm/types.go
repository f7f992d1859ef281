// SPDX-License-Identifier: MIT

package tmm

import "errors"

// Polarization selects the linear polarization of the incident plane
// wave.
type Polarization int

const (
	// PolS: electric field transverse to the plane of incidence (TE).
	PolS Polarization = iota
	// PolP: magnetic field transverse to the plane of incidence (TM).
	PolP
)

// String returns the conventional one-letter name.
func (p Polarization) String() string {
	if p == PolP {
		return "p"
	}
	return "s"
}

// Beam describes the incident illumination. Fields are read, never
// mutated; the same Beam may serve any number of concurrent solves.
type Beam struct {
	// Wavelengths is the grid the spectra are computed on. Any unit is
	// fine as long as layer thicknesses use the same one.
	Wavelengths []float64
	// Angles holds the angles of incidence in degrees.
	Angles []float64
	// Pol is the polarization mode.
	Pol Polarization
}

// Options tunes one Solve call.
type Options struct {
	// RefWavelength is the reference wavelength λ0, in the beam's unit,
	// used to realize optical-thickness layers. Required when the stack
	// contains any; ignored otherwise.
	RefWavelength float64
	// Field requests depth-resolved intensity reconstruction.
	Field bool
	// FieldPoints is the number of depth samples inside every finite
	// layer. Samples sit at cell centers, so interface positions are
	// never duplicated.
	FieldPoints int
	// Workers bounds the number of concurrent solver goroutines. Zero or
	// negative selects GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the options Solve is happiest with: no field
// reconstruction, 10 depth samples per layer once enabled, one worker
// per core.
func DefaultOptions() Options {
	return Options{FieldPoints: 10}
}

var (
	// ErrStructuralMismatch reports a stack or beam whose shapes do not
	// line up: fewer than two media, or a layer index array not aligned
	// with the wavelength grid.
	ErrStructuralMismatch = errors.New("tmm: structural mismatch between beam and stack")

	// ErrInvalidOption reports unusable solver options, such as a missing
	// reference wavelength for an optical-thickness layer.
	ErrInvalidOption = errors.New("tmm: invalid solver option")
)
