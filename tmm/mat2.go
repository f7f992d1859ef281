// SPDX-License-Identifier: MIT

package tmm

import "math/cmplx"

// mat2 is a 2×2 complex matrix, the characteristic-matrix unit of the
// method. Value semantics keep the hot path allocation-free.
type mat2 struct {
	a, b complex128
	c, d complex128
}

// vec2 is the tangential field column [E; H].
type vec2 struct {
	x, y complex128
}

// apply returns m·v.
func (m mat2) apply(v vec2) vec2 {
	return vec2{
		x: m.a*v.x + m.b*v.y,
		y: m.c*v.x + m.d*v.y,
	}
}

// charMatrix builds the characteristic matrix of one layer from its
// phase thickness δ and admittance η. Both may be complex; δ = 0 yields
// the identity with no special casing. The off-diagonal minus signs pair
// with indices written N = n + ik, k ≥ 0 absorbing.
func charMatrix(delta, eta complex128) mat2 {
	c := cmplx.Cos(delta)
	s := cmplx.Sin(delta)
	return mat2{
		a: c, b: -1i * s / eta,
		c: -1i * eta * s, d: c,
	}
}

// admittance returns the polarization-dependent optical admittance of a
// medium with index n and propagation cosine cosT.
func admittance(n, cosT complex128, pol Polarization) complex128 {
	if pol == PolP {
		return n / cosT
	}
	return n * cosT
}

// propagationCosine solves the complex form of Snell's law for one
// layer: snell is the conserved N₀·sinθ₀ and n the layer index. Only the
// cosine is needed downstream; the principal square root keeps absorbing
// and evanescent cases on the attenuating branch.
func propagationCosine(snell, n complex128) complex128 {
	s := snell / n
	return cmplx.Sqrt(1 - s*s)
}
