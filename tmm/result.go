// SPDX-License-Identifier: MIT

package tmm

// Result bundles the spectra of one Solve call. Every per-pair array is
// indexed [wavelength][angle], matching the beam's grids; Field adds a
// trailing depth-sample index. All arrays are plain numeric data,
// suitable for direct hand-off to plotting or export layers. Read-only
// downstream of Solve.
type Result struct {
	// Wavelengths and Angles echo the beam's grids.
	Wavelengths []float64
	Angles      []float64
	// Pol echoes the beam's polarization mode.
	Pol Polarization

	// RAmp and TAmp are the complex amplitude coefficients r and t.
	RAmp [][]complex128
	TAmp [][]complex128

	// R is the power reflectance |r|².
	R [][]float64
	// T is the power transmittance (Re η_sub / Re η_inc)·|t|².
	T [][]float64

	// Depth holds the cumulative physical depth of every field sample,
	// measured from the first interface. Empty unless Options.Field.
	Depth []float64
	// Boundaries holds the cumulative interface positions bracketing the
	// finite layers, starting at 0. Empty unless Options.Field.
	Boundaries []float64
	// Field is the normalized intensity |E(z)/E⁺|² per depth sample.
	// Nil unless Options.Field.
	Field [][][]float64
}

// Absorbance derives A = 1 - R - T per (wavelength, angle). The solver
// itself guarantees only R + T ≤ 1 for passive media; A is a
// convenience for callers, not a solver output.
func (res *Result) Absorbance() [][]float64 {
	out := make([][]float64, len(res.R))
	for i, row := range res.R {
		out[i] = make([]float64, len(row))
		for j, r := range row {
			out[i][j] = 1 - r - res.T[i][j]
		}
	}
	return out
}

// newResult allocates the result bundle for a validated solve, including
// the depth grid when field reconstruction is requested.
func newResult(beam Beam, thick []float64, opts Options) *Result {
	nw, na := len(beam.Wavelengths), len(beam.Angles)
	res := &Result{
		Wavelengths: beam.Wavelengths,
		Angles:      beam.Angles,
		Pol:         beam.Pol,
		RAmp:        make([][]complex128, nw),
		TAmp:        make([][]complex128, nw),
		R:           make([][]float64, nw),
		T:           make([][]float64, nw),
	}
	for i := 0; i < nw; i++ {
		res.RAmp[i] = make([]complex128, na)
		res.TAmp[i] = make([]complex128, na)
		res.R[i] = make([]float64, na)
		res.T[i] = make([]float64, na)
	}
	if !opts.Field {
		return res
	}

	finite := len(thick) - 2
	pts := opts.FieldPoints
	res.Depth = make([]float64, 0, finite*pts)
	res.Boundaries = make([]float64, 0, finite+1)
	res.Boundaries = append(res.Boundaries, 0)
	offset := 0.0
	for l := 1; l <= finite; l++ {
		for p := 0; p < pts; p++ {
			res.Depth = append(res.Depth, offset+(float64(p)+0.5)*thick[l]/float64(pts))
		}
		offset += thick[l]
		res.Boundaries = append(res.Boundaries, offset)
	}
	res.Field = make([][][]float64, nw)
	for i := 0; i < nw; i++ {
		res.Field[i] = make([][]float64, na)
		for j := 0; j < na; j++ {
			res.Field[i][j] = make([]float64, finite*pts)
		}
	}
	return res
}
