// SPDX-License-Identifier: MIT

package tmm_test

import (
	"fmt"

	"github.com/katalvlaran/thinfilm/tmm"
)

// ExampleSolve computes normal-incidence reflectance of a bare
// air/glass interface.
func ExampleSolve() {
	index := func(n complex128) []complex128 { return []complex128{n} }

	stack := tmm.Stack{
		tmm.Ambient(index(1.00029)),
		tmm.Ambient(index(1.5)),
	}
	beam := tmm.Beam{Wavelengths: []float64{550}, Angles: []float64{0}, Pol: tmm.PolS}

	res, err := tmm.Solve(beam, stack, tmm.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("R = %.4f\n", res.R[0][0])
	// Output:
	// R = 0.0399
}

// ExampleRepeat builds a five-period Bragg mirror and reports its peak
// reflectance at the design wavelength.
func ExampleRepeat() {
	index := func(n complex128) []complex128 { return []complex128{n} }

	unit := []tmm.Layer{
		tmm.QuarterWave(index(2.35), 2.35, 0.25),
		tmm.QuarterWave(index(1.46), 1.46, 0.25),
	}
	stack := tmm.Stack{tmm.Ambient(index(1.00029))}
	stack = append(stack, tmm.Repeat(unit, 5)...)
	stack = append(stack, tmm.Ambient(index(1.52)))

	beam := tmm.Beam{Wavelengths: []float64{633}, Angles: []float64{0}, Pol: tmm.PolS}
	res, err := tmm.Solve(beam, stack, tmm.Options{RefWavelength: 633})
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	fmt.Printf("R = %.2f\n", res.R[0][0])
	// Output:
	// R = 0.99
}
