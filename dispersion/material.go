package dispersion

import "fmt"

// materialKind discriminates the three resolution families.
type materialKind int

const (
	kindInvalid materialKind = iota
	kindAnalytic
	kindTabulated
	kindParametric
)

// formulaID selects one closed-form model inside the analytic family.
type formulaID int

const (
	formulaNone formulaID = iota
	formulaAir
	formulaDummy
	formulaGlass
	formulaFusedSilicaUV
	formulaFusedSilicaUV2
	formulaEthanol
)

// Material identifies one dispersive medium plus any parameters its model
// needs. The zero value is not a usable material; build values with the
// constructors below. Materials are small and copied freely.
type Material struct {
	name    string
	kind    materialKind
	formula formulaID

	// Dummy constants.
	re, im float64

	// Dataset key for tabulated and parametric kinds.
	key string

	// SiliconT temperature, °C.
	tempC float64
}

// Air is the ambient medium: constant N = 1.00029 + 0i at every
// wavelength.
func Air() Material {
	return Material{name: "air", kind: kindAnalytic, formula: formulaAir}
}

// Dummy is an idealized non-dispersive medium with constant N = n + i·k.
func Dummy(n, k float64) Material {
	return Material{name: "dummy", kind: kindAnalytic, formula: formulaDummy, re: n, im: k}
}

// Glass is N-BK7 borosilicate crown glass via its three-term Sellmeier
// fit, lossless.
func Glass() Material {
	return Material{name: "glass", kind: kindAnalytic, formula: formulaGlass}
}

// FusedSilicaUV is UV-grade fused silica via the Malitson Sellmeier fit,
// lossless.
func FusedSilicaUV() Material {
	return Material{name: "fusedsilicauv", kind: kindAnalytic, formula: formulaFusedSilicaUV}
}

// FusedSilicaUV2 is the alternative analytic Sellmeier fit for fused
// silica. The identically named tabulated dataset is an independent
// material: reach it with Tabulated("fusedsilicauv2").
func FusedSilicaUV2() Material {
	return Material{name: "fusedsilicauv2", kind: kindAnalytic, formula: formulaFusedSilicaUV2}
}

// Ethanol is liquid ethanol via an empirical power series in 1/λ² and
// 1/λ⁴, lossless.
func Ethanol() Material {
	return Material{name: "etoh", kind: kindAnalytic, formula: formulaEthanol}
}

// Tabulated names a measured (λ, n, k) dataset from the catalog:
// aluminum, bk7, chrome, fusedsilicauv2, gold, h2o, silicon, silver,
// sno2f. Unknown keys fail at Resolve time with ErrMaterialNotFound.
func Tabulated(key string) Material {
	return Material{name: key, kind: kindTabulated, key: key}
}

// SiliconT is crystalline silicon at temperature tempC in °C, valid on
// the open interval (20, 450). The bound curves are blended by linear
// extrapolation in temperature at Resolve time.
func SiliconT(tempC float64) Material {
	return Material{
		name:  fmt.Sprintf("silicontemperature(%g)", tempC),
		kind:  kindParametric,
		key:   "silicontemperature",
		tempC: tempC,
	}
}

// Name returns the material's catalog-facing name.
func (m Material) Name() string { return m.name }

// String implements fmt.Stringer.
func (m Material) String() string {
	if m.formula == formulaDummy {
		return fmt.Sprintf("dummy(%g, %g)", m.re, m.im)
	}
	return m.name
}
