// SPDX-License-Identifier: MIT

package tmm

// layerMode discriminates the thickness specification of a Layer.
type layerMode int

const (
	modeAmbient layerMode = iota
	modeSlab
	modeQuarterWave
)

// Layer is one medium of a stack: a resolved complex index per beam
// wavelength plus a thickness specification. Layers are immutable value
// objects once constructed.
type Layer struct {
	// Index holds N = n + ik aligned index-for-index with the beam's
	// wavelength grid.
	Index []complex128

	// Thickness is the physical thickness in the beam's wavelength unit.
	// Zero for semi-infinite and optical-thickness layers.
	Thickness float64

	// Fraction is the optical path as a fraction of the reference
	// wavelength, for optical-thickness layers (0.25 = quarter wave).
	Fraction float64

	// RefIndex is the layer's index at the reference wavelength, used to
	// turn Fraction into a physical thickness.
	RefIndex complex128

	mode layerMode
}

// Ambient wraps a semi-infinite bounding medium (incident side or
// substrate). Its thickness is ignored by the solver.
func Ambient(index []complex128) Layer {
	return Layer{Index: index, mode: modeAmbient}
}

// Slab builds a finite layer of explicit physical thickness, in the
// beam's wavelength unit.
func Slab(index []complex128, thickness float64) Layer {
	return Layer{Index: index, Thickness: thickness, mode: modeSlab}
}

// QuarterWave builds a finite layer whose physical thickness is derived
// at solve time from the optical path fraction·λ0:
//
//	d = fraction · λ0 / Re(refIndex)
//
// refIndex is the layer's index at λ0, typically a one-point resolver
// call. fraction 0.25 yields the classic quarter-wave layer.
func QuarterWave(index []complex128, refIndex complex128, fraction float64) Layer {
	return Layer{Index: index, Fraction: fraction, RefIndex: refIndex, mode: modeQuarterWave}
}

// physicalThickness realizes the layer's thickness for a given reference
// wavelength. Semi-infinite layers have none.
func (l Layer) physicalThickness(lambda0 float64) float64 {
	switch l.mode {
	case modeQuarterWave:
		return l.Fraction * lambda0 / real(l.RefIndex)
	case modeSlab:
		return l.Thickness
	default:
		return 0
	}
}

// optical reports whether the layer needs a reference wavelength.
func (l Layer) optical() bool { return l.mode == modeQuarterWave }

// Stack is an ordered sequence of layers: incident medium first,
// substrate last, finite layers between. The solver requires at least
// the two bounding media.
type Stack []Layer

// Repeat concatenates n copies of unit, the building block of periodic
// multilayers such as Bragg mirrors.
func Repeat(unit []Layer, n int) []Layer {
	out := make([]Layer, 0, len(unit)*n)
	for i := 0; i < n; i++ {
		out = append(out, unit...)
	}
	return out
}
