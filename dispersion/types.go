package dispersion

import "errors"

// Unit identifies the wavelength unit of a caller-supplied grid. Units are
// declared, never guessed: passing a grid in the wrong unit is a caller
// bug this package cannot detect.
type Unit int

const (
	// Nanometer marks grids expressed in nanometers.
	Nanometer Unit = iota
	// Micrometer marks grids expressed in micrometers.
	Micrometer
)

// String returns the conventional symbol for the unit.
func (u Unit) String() string {
	switch u {
	case Nanometer:
		return "nm"
	case Micrometer:
		return "um"
	default:
		return "unit(?)"
	}
}

var (
	// ErrMaterialNotFound reports a material or table key absent from the
	// catalog.
	ErrMaterialNotFound = errors.New("dispersion: material not found")

	// ErrInvalidParameter reports a resolver parameter outside its
	// documented domain.
	ErrInvalidParameter = errors.New("dispersion: parameter outside documented domain")

	// ErrUnitMismatch reports a wavelength unit this package does not
	// support.
	ErrUnitMismatch = errors.New("dispersion: unsupported wavelength unit")
)
