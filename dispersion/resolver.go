package dispersion

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/thinfilm/store"
)

// Temperature model constants, °C. The anchor curves are measured at 20
// and 450; the blend switches anchors at 215 and is intentionally not
// continuous there (the anchor curves differ).
const (
	siliconTMin  = 20.0
	siliconTMax  = 450.0
	siliconTKnee = 215.0
	siliconTSpan = siliconTMax - siliconTMin
)

// fitted holds the two interpolants of one (λ, n, k) dataset, knots in
// nanometers. Immutable after construction.
type fitted struct {
	n, k interp.PiecewiseLinear
}

// siliconFit holds the four anchor-curve interpolants of the temperature
// model. Immutable after construction.
type siliconFit struct {
	n20, k20, n450, k450 interp.PiecewiseLinear
}

// Resolver turns Materials into complex index arrays. It owns a
// load-once cache of fitted interpolants: the lock guards first
// population only, reads afterwards see immutable values. Safe for
// concurrent use.
type Resolver struct {
	src store.Reader

	mu     sync.RWMutex
	tables map[string]*fitted
	si     *siliconFit
}

// NewResolver builds a Resolver over src. The source is read lazily, one
// dataset per distinct material, on first use.
func NewResolver(src store.Reader) *Resolver {
	return &Resolver{src: src, tables: make(map[string]*fitted)}
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(store.Embedded())
})

// Default returns the shared process-wide Resolver backed by the embedded
// dataset.
func Default() *Resolver { return defaultResolver() }

// Resolve returns one complex refractive index per grid point, aligned
// index-for-index with grid. The grid may have any length and ordering;
// unit declares whether its values are nanometers or micrometers.
func (r *Resolver) Resolve(m Material, grid []float64, unit Unit) ([]complex128, error) {
	if unit != Nanometer && unit != Micrometer {
		return nil, fmt.Errorf("resolve %s: %w: %d", m.Name(), ErrUnitMismatch, int(unit))
	}
	switch m.kind {
	case kindAnalytic:
		return resolveAnalytic(m, grid, unit), nil
	case kindTabulated:
		return r.resolveTabulated(m, grid, unit)
	case kindParametric:
		return r.resolveSiliconT(m, grid, unit)
	default:
		return nil, fmt.Errorf("resolve: zero-value material: %w", ErrMaterialNotFound)
	}
}

// Resolve is the package-level convenience over Default().
func Resolve(m Material, grid []float64, unit Unit) ([]complex128, error) {
	return Default().Resolve(m, grid, unit)
}

// toNanometers converts one grid value to nanometers.
func toNanometers(w float64, unit Unit) float64 {
	if unit == Micrometer {
		return w * 1e3
	}
	return w
}

// toMicrometers converts one grid value to micrometers.
func toMicrometers(w float64, unit Unit) float64 {
	if unit == Nanometer {
		return w * 1e-3
	}
	return w
}

func resolveAnalytic(m Material, grid []float64, unit Unit) []complex128 {
	out := make([]complex128, len(grid))
	for i, w := range grid {
		out[i] = evalFormula(m, toMicrometers(w, unit))
	}
	return out
}

func (r *Resolver) resolveTabulated(m Material, grid []float64, unit Unit) ([]complex128, error) {
	tab, err := r.table(m.key)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, len(grid))
	for i, w := range grid {
		nm := toNanometers(w, unit)
		out[i] = complex(tab.n.Predict(nm), tab.k.Predict(nm))
	}
	return out, nil
}

func (r *Resolver) resolveSiliconT(m Material, grid []float64, unit Unit) ([]complex128, error) {
	if m.tempC <= siliconTMin || m.tempC >= siliconTMax {
		return nil, fmt.Errorf("silicon at %g °C: %w: need %g < T < %g",
			m.tempC, ErrInvalidParameter, siliconTMin, siliconTMax)
	}
	fit, err := r.silicon()
	if err != nil {
		return nil, err
	}
	dT := m.tempC - siliconTMin
	out := make([]complex128, len(grid))
	for i, w := range grid {
		nm := toNanometers(w, unit)
		n20 := fit.n20.Predict(nm)
		k20 := fit.k20.Predict(nm)
		n450 := fit.n450.Predict(nm)
		k450 := fit.k450.Predict(nm)
		dndt := (n450 - n20) / siliconTSpan
		dkdt := (k450 - k20) / siliconTSpan
		var n, k float64
		if m.tempC < siliconTKnee {
			n = n20 * (1 + dndt*dT)
			k = k20 * (1 + dkdt*dT)
		} else {
			n = n450 * (1 + dndt*dT)
			k = k450 * (1 + dkdt*dT)
		}
		out[i] = complex(n, k)
	}
	return out, nil
}

// table returns the fitted interpolants for key, loading and caching them
// on first use.
func (r *Resolver) table(key string) (*fitted, error) {
	r.mu.RLock()
	t := r.tables[key]
	r.mu.RUnlock()
	if t != nil {
		return t, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t := r.tables[key]; t != nil {
		return t, nil
	}

	info, err := Lookup(key)
	if err != nil {
		return nil, err
	}
	if info.Kind != "tabulated" {
		return nil, fmt.Errorf("material %q has no tabulated dataset: %w", key, ErrMaterialNotFound)
	}
	lam, n, k, err := r.columns(info, "n", "k")
	if err != nil {
		return nil, err
	}
	t = &fitted{}
	if err := t.n.Fit(lam, n); err != nil {
		return nil, fmt.Errorf("material %q: fit n: %w: %v", key, store.ErrUnavailable, err)
	}
	if err := t.k.Fit(lam, k); err != nil {
		return nil, fmt.Errorf("material %q: fit k: %w: %v", key, store.ErrUnavailable, err)
	}
	r.tables[key] = t
	return t, nil
}

// silicon returns the temperature-model interpolants, loading and caching
// them on first use. The outermost λ knots are nudged one representable
// value outward so a query exactly at a boundary still interpolates.
func (r *Resolver) silicon() (*siliconFit, error) {
	r.mu.RLock()
	f := r.si
	r.mu.RUnlock()
	if f != nil {
		return f, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.si != nil {
		return r.si, nil
	}

	info, err := Lookup("silicontemperature")
	if err != nil {
		return nil, err
	}
	raw, err := r.src.Read(info.File)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", info.Name, err)
	}
	lam, err := scaledKnots(raw, info)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", info.Name, err)
	}
	lam[0] = math.Nextafter(lam[0], math.Inf(-1))
	lam[len(lam)-1] = math.Nextafter(lam[len(lam)-1], math.Inf(1))

	f = &siliconFit{}
	for _, c := range []struct {
		name string
		dst  *interp.PiecewiseLinear
	}{
		{"n20", &f.n20}, {"k20", &f.k20}, {"n450", &f.n450}, {"k450", &f.k450},
	} {
		col, err := raw.Column(c.name)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", info.Name, err)
		}
		if len(col) != len(lam) {
			return nil, fmt.Errorf("material %q: column %s length %d, knots %d: %w",
				info.Name, c.name, len(col), len(lam), store.ErrUnavailable)
		}
		if err := c.dst.Fit(lam, col); err != nil {
			return nil, fmt.Errorf("material %q: fit %s: %w: %v", info.Name, c.name, store.ErrUnavailable, err)
		}
	}
	r.si = f
	return f, nil
}

// columns reads a dataset and returns its λ knots scaled to nanometers
// plus the two named value columns, length-checked.
func (r *Resolver) columns(info Info, names ...string) (lam []float64, a, b []float64, err error) {
	raw, err := r.src.Read(info.File)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("material %q: %w", info.Name, err)
	}
	lam, err = scaledKnots(raw, info)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("material %q: %w", info.Name, err)
	}
	cols := make([][]float64, len(names))
	for i, name := range names {
		col, cerr := raw.Column(name)
		if cerr != nil {
			return nil, nil, nil, fmt.Errorf("material %q: %w", info.Name, cerr)
		}
		if len(col) != len(lam) {
			return nil, nil, nil, fmt.Errorf("material %q: column %s length %d, knots %d: %w",
				info.Name, name, len(col), len(lam), store.ErrUnavailable)
		}
		cols[i] = col
	}
	return lam, cols[0], cols[1], nil
}

// scaledKnots extracts the λ column and applies the catalog's
// to-nanometer scale.
func scaledKnots(raw store.Table, info Info) ([]float64, error) {
	lam, err := raw.Column("lambda")
	if err != nil {
		return nil, err
	}
	if len(lam) < 2 {
		return nil, fmt.Errorf("dataset %s: need at least 2 knots, have %d: %w",
			info.File, len(lam), store.ErrUnavailable)
	}
	out := make([]float64, len(lam))
	for i, v := range lam {
		out[i] = v * info.Scale
	}
	return out, nil
}
