package value

// Kind identifies which variant a Value holds.
type Kind uint8

// The closed set of value variants the engine operates on.
const (
	Real Kind = iota
	Complex
	Vector
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Real:
		return "Real"
	case Complex:
		return "Complex"
	case Vector:
		return "Vector"
	default:
		return "Unknown"
	}
}

// Scalar reports whether the kind is one of the two scalar variants.
func (k Kind) Scalar() bool {
	return k == Real || k == Complex
}
