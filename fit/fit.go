package fit

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/thinfilm/tmm"
)

// ErrBadObjective reports an objective that cannot be evaluated:
// missing Build function, empty parameter vector, or a measured
// spectrum that does not line up with the beam grid.
var ErrBadObjective = errors.New("fit: malformed objective")

// Objective couples a measured spectrum with a parameterized stack
// model.
type Objective struct {
	// Beam is the illumination the measurement was taken under. The
	// residual is evaluated at the first angle.
	Beam tmm.Beam

	// Measured holds reflectance per beam wavelength.
	Measured []float64

	// Build maps a parameter vector to a candidate stack. Returning an
	// error marks the vector as infeasible.
	Build func(p []float64) (tmm.Stack, error)

	// Options is passed through to the solver on every evaluation.
	Options tmm.Options
}

// sse is the scalar objective: the residual sum of squares, or +Inf for
// infeasible parameter vectors.
func (o Objective) sse(p []float64) float64 {
	stack, err := o.Build(p)
	if err != nil {
		return math.Inf(1)
	}
	res, err := tmm.Solve(o.Beam, stack, o.Options)
	if err != nil {
		return math.Inf(1)
	}
	var sum float64
	for i, want := range o.Measured {
		d := res.R[i][0] - want
		sum += d * d
	}
	return sum
}

// Config bounds the minimization. The zero value of any field selects
// the default for that field.
type Config struct {
	// MaxEvaluations caps objective evaluations. Default 2000.
	MaxEvaluations int

	// Tolerance is the absolute function-convergence threshold.
	// Default 1e-10.
	Tolerance float64
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{MaxEvaluations: 2000, Tolerance: 1e-10}
}

// Summary reports the outcome of a minimization.
type Summary struct {
	// X is the best parameter vector found.
	X []float64

	// SSE is the residual sum of squares at X.
	SSE float64

	// Evaluations counts objective evaluations spent.
	Evaluations int
}

// Minimize fits the objective's parameters starting from x0 using
// Nelder-Mead. A nil cfg selects DefaultConfig. The start point is
// evaluated once up front so that structural problems (a Build failure
// or a solver rejection at x0) surface as errors rather than as a
// silent +Inf wall.
func Minimize(obj Objective, x0 []float64, cfg *Config) (*Summary, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	maxEval := cfg.MaxEvaluations
	if maxEval <= 0 {
		maxEval = 2000
	}
	tol := cfg.Tolerance
	if tol <= 0 {
		tol = 1e-10
	}

	switch {
	case obj.Build == nil:
		return nil, fmt.Errorf("%w: nil Build", ErrBadObjective)
	case len(x0) == 0:
		return nil, fmt.Errorf("%w: empty start vector", ErrBadObjective)
	case len(obj.Beam.Angles) == 0:
		return nil, fmt.Errorf("%w: beam has no angles", ErrBadObjective)
	case len(obj.Measured) != len(obj.Beam.Wavelengths):
		return nil, fmt.Errorf("%w: %d measured values for %d wavelengths",
			ErrBadObjective, len(obj.Measured), len(obj.Beam.Wavelengths))
	}

	if stack, err := obj.Build(x0); err != nil {
		return nil, fmt.Errorf("fit: evaluate start point: %w", err)
	} else if _, err := tmm.Solve(obj.Beam, stack, obj.Options); err != nil {
		return nil, fmt.Errorf("fit: evaluate start point: %w", err)
	}

	problem := optimize.Problem{Func: obj.sse}
	settings := &optimize.Settings{
		FuncEvaluations: maxEval,
		Converger: &optimize.FunctionConverge{
			Absolute:   tol,
			Iterations: 50,
		},
	}

	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("fit: minimize: %w", err)
	}
	return &Summary{
		X:           result.X,
		SSE:         result.F,
		Evaluations: result.Stats.FuncEvaluations,
	}, nil
}
