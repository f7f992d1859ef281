// Package dispersion resolves named materials to complex refractive
// indices N(λ) = n(λ) + i·k(λ) over caller-supplied wavelength grids.
//
// Three material families are supported:
//
//   - analytic: closed-form models evaluated per wavelength (Air, Dummy,
//     Glass, FusedSilicaUV, FusedSilicaUV2, Ethanol);
//   - tabulated: measured (λ, n, k) knots read from a store.Reader and
//     interpolated piecewise-linearly (Tabulated);
//   - parametric: tabulated anchor curves blended by a scalar parameter
//     (SiliconT, temperature in °C).
//
// Grids may have any length, including zero, and any ordering; the result
// is aligned index-for-index with the grid. The grid's unit is an explicit
// argument (Nanometer or Micrometer) and is never inferred from magnitude;
// an unsupported unit fails with ErrUnitMismatch.
//
// Outside a tabulated material's documented interval the interpolant
// clamps to its end knots: values there are not physical and staying
// in-domain is the caller's responsibility. Per-material intervals are
// published by the catalog (All, Lookup).
//
// A Resolver loads each table at most once and never mutates it
// afterwards, so one Resolver is safe for concurrent use from any number
// of goroutines. Default() returns a process-wide Resolver backed by the
// embedded dataset.
//
// Errors: ErrMaterialNotFound for unknown names, ErrInvalidParameter for
// parameters outside their documented domain, ErrUnitMismatch for
// unsupported units; store failures surface wrapped so that
// errors.Is(err, store.ErrUnavailable) holds.
package dispersion
