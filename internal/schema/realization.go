package schema

import "fmt"

// Realization selects how the variant enumerator lays out its sequence.
type Realization int

const (
	// RealizationDefault defers to the run configuration.
	RealizationDefault Realization = iota
	// RealizationArray materializes the ordered list; the iterator indexes into it.
	RealizationArray
	// RealizationChain walks a generated successor function; no list is kept.
	RealizationChain
)

// String returns the directive spelling of r.
func (r Realization) String() string {
	switch r {
	case RealizationArray:
		return "array"
	case RealizationChain:
		return "chain"
	default:
		return "default"
	}
}

// ParseRealization parses "array" or "chain". An empty string yields
// RealizationDefault.
func ParseRealization(s string) (Realization, error) {
	switch s {
	case "":
		return RealizationDefault, nil
	case "array":
		return RealizationArray, nil
	case "chain":
		return RealizationChain, nil
	default:
		return RealizationDefault, fmt.Errorf("unknown variants layout %q (want array or chain)", s)
	}
}

// Or returns r, or fallback when r is RealizationDefault.
func (r Realization) Or(fallback Realization) Realization {
	if r == RealizationDefault {
		return fallback
	}

	return r
}
