package bqm

// Vartype encodes the domain of a model's variables. It is a global,
// model-wide tag: the per-variable accessor VartypeOf exists for
// interface symmetry with heterogeneous-domain models and always
// returns the single model-wide value.
type Vartype uint8

const (
	// Binary variables take values in {0, 1}.
	Binary Vartype = iota

	// Spin variables take values in {-1, +1}.
	Spin

	// Integer variables are integer valued. The tag is declared for
	// completeness but has no arithmetic support in this core: it cannot
	// participate in self-loop routing or domain conversion.
	Integer
)

// String returns the lower-case tag name, or "unknown" for values
// outside the declared set.
func (vt Vartype) String() string {
	switch vt {
	case Binary:
		return "binary"
	case Spin:
		return "spin"
	case Integer:
		return "integer"
	default:
		return "unknown"
	}
}

// hasArithmetic reports whether vt participates in vartype arithmetic
// (self-loop routing, domain conversion).
func (vt Vartype) hasArithmetic() bool {
	return vt == Binary || vt == Spin
}
