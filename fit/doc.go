// Package fit estimates stack parameters from measured reflectance
// spectra.
//
// An Objective pairs a measured spectrum with a Build function that maps
// a parameter vector to a candidate stack. Minimize walks the parameter
// space with Nelder-Mead and returns the best vector together with the
// residual sum of squares and the evaluation count.
//
// The residual compares model reflectance against Objective.Measured
// over the beam's wavelength grid at the first angle. Parameter vectors
// the Build function rejects score +Inf, which steers the simplex back
// into the feasible region without aborting the walk.
//
// What to import:
//
//	import "github.com/katalvlaran/thinfilm/fit"
package fit
