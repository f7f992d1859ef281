// SPDX-License-Identifier: MIT

package tmm

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

const twoPi = 2 * math.Pi

// Solve computes the stack's response for every combination of beam
// wavelength and angle. The returned Result is complete: no partial
// output is ever produced, and any structural defect fails before the
// first pair is computed.
//
// Complexity: O(wavelengths·angles·layers), spread over Options.Workers
// goroutines.
func Solve(beam Beam, stack Stack, opts Options) (*Result, error) {
	if err := validate(beam, stack, opts); err != nil {
		return nil, err
	}

	thick := make([]float64, len(stack))
	for l, layer := range stack {
		if l == 0 || l == len(stack)-1 {
			continue
		}
		thick[l] = layer.physicalThickness(opts.RefWavelength)
	}

	s := &solver{beam: beam, stack: stack, thick: thick, opts: opts,
		res: newResult(beam, thick, opts)}

	pairs := len(beam.Wavelengths) * len(beam.Angles)
	if pairs == 0 {
		return s.res, nil
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > pairs {
		workers = pairs
	}

	// Fan pair ranges out to a fixed pool; every pair writes its own
	// result cells, so workers never contend.
	tasks := make(chan [2]int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sc := newScratch(len(stack))
			for t := range tasks {
				for p := t[0]; p < t[1]; p++ {
					s.pair(p, sc)
				}
			}
		}()
	}
	chunk := (pairs + workers - 1) / workers
	for start := 0; start < pairs; start += chunk {
		end := start + chunk
		if end > pairs {
			end = pairs
		}
		tasks <- [2]int{start, end}
	}
	close(tasks)
	wg.Wait()
	return s.res, nil
}

// validate rejects structural defects and unusable options before any
// computation begins.
func validate(beam Beam, stack Stack, opts Options) error {
	if len(stack) < 2 {
		return fmt.Errorf("%w: stack has %d media, need incident and substrate",
			ErrStructuralMismatch, len(stack))
	}
	nw := len(beam.Wavelengths)
	for l, layer := range stack {
		if len(layer.Index) != nw {
			return fmt.Errorf("%w: layer %d has %d index values for %d wavelengths",
				ErrStructuralMismatch, l, len(layer.Index), nw)
		}
		if layer.optical() {
			if opts.RefWavelength <= 0 {
				return fmt.Errorf("%w: layer %d uses optical thickness but RefWavelength is %g",
					ErrInvalidOption, l, opts.RefWavelength)
			}
			if real(layer.RefIndex) <= 0 {
				return fmt.Errorf("%w: layer %d optical thickness needs Re(RefIndex) > 0, have %g",
					ErrInvalidOption, l, real(layer.RefIndex))
			}
		}
	}
	if opts.Field && opts.FieldPoints < 1 {
		return fmt.Errorf("%w: field reconstruction needs FieldPoints >= 1, have %d",
			ErrInvalidOption, opts.FieldPoints)
	}
	return nil
}

// solver carries the immutable inputs and the shared output of one Solve
// call. Workers share it read-only except for disjoint res cells.
type solver struct {
	beam  Beam
	stack Stack
	thick []float64
	opts  Options
	res   *Result
}

// scratch is per-worker reusable storage, one allocation per worker
// instead of two per pair.
type scratch struct {
	cos    []complex128
	suffix []vec2
}

func newScratch(layers int) *scratch {
	return &scratch{
		cos:    make([]complex128, layers),
		suffix: make([]vec2, layers),
	}
}

// pair computes one flattened (wavelength, angle) pair.
func (s *solver) pair(p int, sc *scratch) {
	na := len(s.beam.Angles)
	i, j := p/na, p%na
	lam := s.beam.Wavelengths[i]
	theta := s.beam.Angles[j] * math.Pi / 180
	last := len(s.stack) - 1

	// Complex Snell: N₀·sinθ₀ is conserved across the stack.
	snell := s.stack[0].Index[i] * complex(math.Sin(theta), 0)
	for l := range s.stack {
		sc.cos[l] = propagationCosine(snell, s.stack[l].Index[i])
	}

	// Walk the finite layers back to front, accumulating the composite
	// matrix applied to the substrate's field column. The intermediate
	// columns are exactly the interface fields needed for profile
	// reconstruction, so they are recorded on the way when asked for.
	eta0 := admittance(s.stack[0].Index[i], sc.cos[0], s.beam.Pol)
	etaS := admittance(s.stack[last].Index[i], sc.cos[last], s.beam.Pol)
	v := vec2{x: 1, y: etaS}
	for l := last - 1; l >= 1; l-- {
		if s.opts.Field {
			sc.suffix[l] = v
		}
		n := s.stack[l].Index[i]
		delta := complex(twoPi*s.thick[l]/lam, 0) * n * sc.cos[l]
		eta := admittance(n, sc.cos[l], s.beam.Pol)
		v = charMatrix(delta, eta).apply(v)
	}

	bb, cc := v.x, v.y
	den := eta0*bb + cc
	r := (eta0*bb - cc) / den
	t := 2 * eta0 / den
	s.res.RAmp[i][j] = r
	s.res.TAmp[i][j] = t
	s.res.R[i][j] = real(r)*real(r) + imag(r)*imag(r)
	s.res.T[i][j] = real(etaS) / real(eta0) * (real(t)*real(t) + imag(t)*imag(t))

	if s.opts.Field {
		s.fieldPair(i, j, lam, bb, cc, eta0, sc)
	}
}
