// Package msethash implements an incremental, commutative hash for multisets
// of byte strings: collections whose elements may repeat and carry no order.
// Two multisets produce the same digest exactly when they hold the same
// elements with the same multiplicities, no matter the order elements were
// fed in or how a multiplicity was split across calls. The digest of a
// collection can therefore be computed element by element, in any order,
// across several accumulators that are merged at the end, and without ever
// materializing the collection as a whole.
//
// The construction follows the homomorphic multiset hash of Clarke et al.
// ("Incremental multiset hash functions and their application to memory
// integrity checking", ASIACRYPT 2003): every element is mapped through a
// 512-bit digest to a uniformly distributed point of a prime-order abelian
// group, scaled by the element's multiplicity, and added into a running sum.
// Finalizing compresses the running sum to the group's canonical fixed-width
// point encoding. Collision resistance reduces to the collision resistance
// of the digest and the hardness of the discrete logarithm problem in the
// group. The hash is keyless.
//
// The accumulator is generic over its two primitives. Package
// group/ristretto255 provides the standard suite, producing 32-byte digests;
// package group/bls12381 provides an alternative over the BLS12-381 G1
// group for systems that already carry its arithmetic.
package msethash

import "hash"

// Group describes the prime-order abelian group an accumulator sums in.
type Group interface {
	// String returns the name of the group.
	String() string

	// PointLen returns the length in bytes of the canonical point
	// encoding, which is also the length of a finalized digest.
	PointLen() int

	// Point returns a new point set to the group's identity element.
	Point() Point
}

// HashFactory creates instances of the digest elements are absorbed with.
// The accumulator requires digests with 64-byte (512-bit) outputs: the
// hash-to-group map consumes exactly that much uniform input.
type HashFactory interface {
	Hash() hash.Hash
}

// Suite bundles the primitives an accumulator is built from.
type Suite interface {
	Group
	HashFactory
}
