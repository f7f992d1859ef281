package dispersion

import "math/cmplx"

// airIndex is the constant refractive index used for ambient air.
const airIndex = 1.00029

// Three-term Sellmeier coefficient sets, λ in micrometers.
var (
	glassB = [3]float64{1.03961212, 0.231792344, 1.01046945}
	glassC = [3]float64{0.00600069867, 0.0200179144, 103.560653}

	silicaB = [3]float64{0.6961663, 0.4079426, 0.8974794}
	silicaC = [3]float64{0.004679148, 0.013512063, 97.934003}

	silica2B = [3]float64{0.473115591, 0.631038719, 0.906404498}
	silica2C = [3]float64{0.0129957170, 0.00412809220, 98.7685322}
)

// sellmeier evaluates n² = 1 + Σ Bᵢλ²/(λ²−Cᵢ) and takes the principal
// complex square root, so the value stays defined arbitrarily close to
// the resonance poles instead of producing NaN.
func sellmeier(b, c [3]float64, um float64) complex128 {
	l2 := um * um
	n2 := 1.0
	for i := 0; i < 3; i++ {
		n2 += b[i] * l2 / (l2 - c[i])
	}
	return cmplx.Sqrt(complex(n2, 0))
}

// ethanolIndex evaluates the empirical ethanol dispersion series, λ in
// micrometers.
func ethanolIndex(um float64) complex128 {
	l2 := um * um
	return complex(1.35265+0.00306/l2+0.00002/(l2*l2), 0)
}

// evalFormula dispatches one analytic model at a single wavelength in
// micrometers.
func evalFormula(m Material, um float64) complex128 {
	switch m.formula {
	case formulaAir:
		return complex(airIndex, 0)
	case formulaDummy:
		return complex(m.re, m.im)
	case formulaGlass:
		return sellmeier(glassB, glassC, um)
	case formulaFusedSilicaUV:
		return sellmeier(silicaB, silicaC, um)
	case formulaFusedSilicaUV2:
		return sellmeier(silica2B, silica2C, um)
	case formulaEthanol:
		return ethanolIndex(um)
	default:
		// Unreachable through the public constructors.
		return cmplx.NaN()
	}
}
