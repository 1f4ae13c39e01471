package msethash

import "encoding"

// Marshaling is the set of encoding methods group elements implement.
type Marshaling interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler

	// String returns a human readable representation of the element.
	String() string

	// MarshalSize returns the length in bytes of the element's encoding.
	MarshalSize() int
}

// Point is an element of a prime-order abelian group.
//
// Methods with a Point receiver follow the set-and-return convention: they
// store the result of the operation into the receiver and return the
// receiver, so calls can be chained and points reused without allocation.
// Operands may alias the receiver. Points of different groups must not be
// mixed; implementations panic when handed a point from a foreign group.
type Point interface {
	Marshaling

	// Equal reports whether the receiver and q represent the same
	// group element.
	Equal(q Point) bool

	// Null sets the receiver to the identity element and returns it.
	Null() Point

	// Clone returns a new point holding the same element as the receiver.
	Clone() Point

	// Add sets the receiver to the group sum a + b and returns it.
	Add(a, b Point) Point

	// Mul sets the receiver to the n-fold sum q + q + ... + q and
	// returns it, in time logarithmic in n. The multiplier is reduced
	// modulo the group order; since the order of every supported group
	// exceeds 2^64, distinct uint64 multipliers act distinctly, and
	// Mul(0, q) yields the identity.
	Mul(n uint64, q Point) Point

	// FromUniformBytes sets the receiver to a group element derived
	// deterministically from 64 uniformly distributed bytes, such that
	// the resulting element is uniformly distributed over the group and
	// its discrete logarithm with respect to any fixed base is unknown.
	// It returns the receiver, and panics if b is not exactly 64 bytes.
	FromUniformBytes(b []byte) Point
}
