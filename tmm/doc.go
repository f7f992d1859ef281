// SPDX-License-Identifier: MIT

// Package tmm computes the optical response of multilayer thin-film
// stacks with the transfer-matrix method.
//
// A Stack is an ordered sequence of Layers: the incident medium first,
// the substrate last, both semi-infinite, with any number of finite
// layers between them. A Beam supplies the wavelength grid, the angles
// of incidence in degrees and the polarization. Solve produces, for
// every (wavelength, angle) pair:
//
//   - complex reflection and transmission amplitudes r and t,
//   - power reflectance R = |r|² and transmittance
//     T = (Re η_sub / Re η_inc)·|t|²,
//   - optionally the depth-resolved intensity |E(z)/E⁺|² inside every
//     finite layer, with its depth grid and interface positions.
//
// Method: per pair, each layer's propagation cosine follows from the
// complex form of Snell's law; each finite layer contributes the 2×2
// characteristic matrix
//
//	| cos δ          -i·sin δ / η |
//	| -i·η·sin δ      cos δ       |
//
// with phase thickness δ = 2π·d·N·cosθ/λ and admittance η = N·cosθ
// (S polarization) or N/cosθ (P polarization). The matrices compose in
// stack order and the amplitudes follow from the composite matrix
// bracketed by the bounding admittances. Indices are written N = n + ik
// with k ≥ 0 for absorbing media; the off-diagonal signs above keep such
// layers attenuating.
//
// Wavelengths, thicknesses and the reference wavelength share one unit;
// the package never converts units. Zero-thickness layers contribute
// identity matrices and a stack with no finite layers reduces to the
// bare Fresnel interface, both without special casing.
//
// Pairs are independent, so Solve fans them out over Options.Workers
// goroutines writing disjoint result cells; the result is identical to a
// single-threaded run. Complexity per pair: O(layers) plus
// O(layers·FieldPoints) when field reconstruction is on.
//
// Non-finite indices (for example a dispersion query outside its table)
// propagate into non-finite spectra: the solver validates structure, not
// values. Structural defects (stack shorter than two media, index arrays
// not aligned with the grid) fail with ErrStructuralMismatch before any
// computation; unusable options fail with ErrInvalidOption.
package tmm
