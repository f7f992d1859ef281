// SPDX-License-Identifier: MIT

package tmm

// fieldPair reconstructs the depth-resolved intensity for one
// (wavelength, angle) pair from the interface field columns recorded
// during the matrix walk.
//
// sc.suffix[l] holds the tangential [E; H] at the back interface of
// finite layer l, normalized to the transmitted wave. Propagating that
// column by the layer's remaining thickness d-ζ yields the field at
// local depth ζ; dividing by the incident forward amplitude
// E⁺ = (B + C/η₀)/2 normalizes intensities to the incoming wave.
func (s *solver) fieldPair(i, j int, lam float64, bb, cc, eta0 complex128, sc *scratch) {
	einc := (bb + cc/eta0) / 2
	pts := s.opts.FieldPoints
	last := len(s.stack) - 1
	out := s.res.Field[i][j]

	for l := 1; l < last; l++ {
		n := s.stack[l].Index[i]
		eta := admittance(n, sc.cos[l], s.beam.Pol)
		phase := complex(twoPi/lam, 0) * n * sc.cos[l]
		for p := 0; p < pts; p++ {
			zeta := (float64(p) + 0.5) * s.thick[l] / float64(pts)
			m := charMatrix(phase*complex(s.thick[l]-zeta, 0), eta)
			e := (m.a*sc.suffix[l].x + m.b*sc.suffix[l].y) / einc
			out[(l-1)*pts+p] = real(e)*real(e) + imag(e)*imag(e)
		}
	}
}
