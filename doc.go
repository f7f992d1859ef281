// Package thinfilm bundles a dispersion resolver and a transfer-matrix
// solver for multilayer optical coatings: from refractive-index models
// to angle/wavelength reflectance maps and internal field profiles.
//
// 🚀 What is thinfilm?
//
//	A compact optics engine that brings together:
//		• Dispersion: Sellmeier and empirical formulas, tabulated n/k data,
//		  temperature-dependent silicon
//		• Transfer matrices: 2x2 characteristic matrices for S and P waves
//		  at any incidence angle, absorbing media included
//		• Spectra: reflectance, transmittance and absorbance over
//		  wavelength x angle grids, computed on a worker pool
//		• Fields: depth-resolved |E|² standing-wave maps inside the stack
//		• Fitting: parameter recovery from measured spectra
//
// ✨ Why choose thinfilm?
//
//   - Physical guarantees: energy accounting closes to float accuracy
//     for lossless stacks, absorbing media stay passive
//   - Embedded data: ten datasets ship inside the binary; external
//     collections load from directories or zip archives
//   - Concurrency: wavelength/angle pairs solve independently across
//     workers with bit-identical results
//
// Everything is organized under five subpackages:
//
//	dispersion/ — materials, the data catalog and the complex-index resolver
//	tmm/        — layers, beams, the multilayer solver and field reconstruction
//	store/      — embedded, directory and zip dataset containers
//	fit/        — Nelder-Mead fitting of stack parameters to measurements
//	cmd/        — the tfsolve scenario runner (YAML in, CSV and PNG out)
//
// Quick ASCII example:
//
//	  air │ TiO2 │ SiO2 │ TiO2 │ ... │ glass
//	      │ 67nm │108nm │ 67nm │     │
//	  ────┴──────┴──────┴──────┴─────┴──────→ depth
//
//	a quarter-wave mirror: every layer one quarter wave thick at λ0.
//
// Dive into examples/ for runnable scenarios: an antireflection
// coating, a Bragg mirror with its standing wave, and an absorbing
// metal film.
//
//	go get github.com/katalvlaran/thinfilm
package thinfilm
