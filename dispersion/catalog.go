package dispersion

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/ini.v1"
)

//go:embed catalog.ini
var catalogINI []byte

// Info describes one cataloged material: identity, data provenance and
// the wavelength interval over which its values are trustworthy. Info is
// metadata only; it takes part in no computation beyond locating and
// scaling tabulated datasets.
type Info struct {
	// Name is the material key used by Tabulated and Lookup.
	Name string
	// Kind is "analytic", "tabulated" or "parametric".
	Kind string
	// File is the dataset key inside the store; empty for analytic kinds.
	File string
	// Scale multiplies stored λ knots into nanometers.
	Scale float64
	// MinNm and MaxNm bound the documented validity interval.
	MinNm, MaxNm float64
	// Source cites the published data or fit.
	Source string
	// Notes carries free-form caveats.
	Notes string
}

// catalog parses the embedded INI once. The file ships inside the binary,
// so a parse failure is a build defect, not a runtime condition.
var catalog = sync.OnceValue(func() map[string]Info {
	f, err := ini.Load(catalogINI)
	if err != nil {
		panic("dispersion: embedded catalog corrupted: " + err.Error())
	}
	m := make(map[string]Info)
	for _, sec := range f.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		m[sec.Name()] = Info{
			Name:   sec.Name(),
			Kind:   sec.Key("kind").String(),
			File:   sec.Key("file").String(),
			Scale:  sec.Key("scale").MustFloat64(1e9),
			MinNm:  sec.Key("min_nm").MustFloat64(0),
			MaxNm:  sec.Key("max_nm").MustFloat64(0),
			Source: sec.Key("source").String(),
			Notes:  sec.Key("notes").String(),
		}
	}
	return m
})

// All enumerates every cataloged material sorted by name.
func All() []Info {
	m := catalog()
	out := make([]Info, 0, len(m))
	for _, info := range m {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the catalog entry for name, or ErrMaterialNotFound.
func Lookup(name string) (Info, error) {
	info, ok := catalog()[name]
	if !ok {
		return Info{}, fmt.Errorf("lookup %q: %w", name, ErrMaterialNotFound)
	}
	return info, nil
}
