package fit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/thinfilm/fit"
	"github.com/katalvlaran/thinfilm/tmm"
)

func constIndex(n complex128, count int) []complex128 {
	out := make([]complex128, count)
	for i := range out {
		out[i] = n
	}
	return out
}

// syntheticObjective builds a one-parameter objective: a 120 nm film
// (n = 1.46) on an absorbing substrate, measured over 420-780 nm, with
// the film thickness as the free parameter.
func syntheticObjective(t *testing.T) fit.Objective {
	t.Helper()

	grid := make([]float64, 73)
	floats.Span(grid, 420, 780)
	count := len(grid)

	ambient := constIndex(1.00029, count)
	film := constIndex(1.46, count)
	substrate := constIndex(3.9+0.02i, count)

	build := func(p []float64) (tmm.Stack, error) {
		if p[0] <= 0 || p[0] > 5000 {
			return nil, fmt.Errorf("thickness %g out of range", p[0])
		}
		return tmm.Stack{
			tmm.Ambient(ambient),
			tmm.Slab(film, p[0]),
			tmm.Ambient(substrate),
		}, nil
	}

	beam := tmm.Beam{Wavelengths: grid, Angles: []float64{0}, Pol: tmm.PolS}
	stack, err := build([]float64{120})
	require.NoError(t, err)
	res, err := tmm.Solve(beam, stack, tmm.DefaultOptions())
	require.NoError(t, err)

	measured := make([]float64, count)
	for i := range measured {
		measured[i] = res.R[i][0]
	}
	return fit.Objective{Beam: beam, Measured: measured, Build: build}
}

// TestMinimize_RecoversKnownThickness: starting 10 nm off, the fit
// finds the thickness the synthetic spectrum was generated with.
func TestMinimize_RecoversKnownThickness(t *testing.T) {
	obj := syntheticObjective(t)

	sum, err := fit.Minimize(obj, []float64{110}, nil)
	require.NoError(t, err)

	require.Len(t, sum.X, 1)
	assert.InDelta(t, 120.0, sum.X[0], 0.5)
	assert.Less(t, sum.SSE, 1e-6)
	assert.Greater(t, sum.Evaluations, 0)
	assert.LessOrEqual(t, sum.Evaluations, 2000)
}

// TestMinimize_HonorsEvaluationBudget: a small explicit budget caps the
// evaluation count.
func TestMinimize_HonorsEvaluationBudget(t *testing.T) {
	obj := syntheticObjective(t)

	sum, err := fit.Minimize(obj, []float64{110}, &fit.Config{MaxEvaluations: 25})
	require.NoError(t, err)
	assert.LessOrEqual(t, sum.Evaluations, 25+2) // method may finish its step
}

// TestMinimize_ValidatesObjective: malformed objectives are rejected
// before any solve.
func TestMinimize_ValidatesObjective(t *testing.T) {
	good := syntheticObjective(t)

	noBuild := good
	noBuild.Build = nil
	_, err := fit.Minimize(noBuild, []float64{110}, nil)
	assert.ErrorIs(t, err, fit.ErrBadObjective)

	_, err = fit.Minimize(good, nil, nil)
	assert.ErrorIs(t, err, fit.ErrBadObjective)

	noAngles := good
	noAngles.Beam.Angles = nil
	_, err = fit.Minimize(noAngles, []float64{110}, nil)
	assert.ErrorIs(t, err, fit.ErrBadObjective)

	short := good
	short.Measured = short.Measured[:10]
	_, err = fit.Minimize(short, []float64{110}, nil)
	assert.ErrorIs(t, err, fit.ErrBadObjective)
}

// TestMinimize_StartPointFailureSurfaces: a Build or solver failure at
// the start point is reported as an error, not swallowed as +Inf.
func TestMinimize_StartPointFailureSurfaces(t *testing.T) {
	errInfeasible := errors.New("infeasible")

	obj := syntheticObjective(t)
	obj.Build = func(p []float64) (tmm.Stack, error) { return nil, errInfeasible }
	_, err := fit.Minimize(obj, []float64{110}, nil)
	assert.ErrorIs(t, err, errInfeasible)

	broken := syntheticObjective(t)
	broken.Build = func(p []float64) (tmm.Stack, error) {
		return tmm.Stack{
			tmm.Ambient(constIndex(1.0, 1)), // one value for a 73-point grid
			tmm.Ambient(constIndex(1.5, 1)),
		}, nil
	}
	_, err = fit.Minimize(broken, []float64{110}, nil)
	assert.ErrorIs(t, err, tmm.ErrStructuralMismatch)
}
