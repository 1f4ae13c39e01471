package msethash

import (
	"errors"
	"hash"
	"io"
)

// uniformLen is the digest output width the hash-to-group map consumes.
const uniformLen = 64

var (
	// ErrPendingUpdate is returned when an operation that requires the
	// accumulator to sit on an element boundary is called while bytes
	// written through Write have not been committed yet.
	ErrPendingUpdate = errors.New("msethash: uncommitted element bytes pending")

	// ErrInvalidEncoding is returned by UnmarshalBinary when the input
	// is not a canonical accumulator state encoding.
	ErrInvalidEncoding = errors.New("msethash: invalid accumulator state encoding")
)

// Hash accumulates a multiset of byte strings into a running group sum.
//
// Elements are fed either whole, through Add, or in chunks through the
// io.Writer interface followed by Commit. The digest obtained from Finalize
// depends only on which elements were accumulated and how often, not on the
// order of calls or on how element bytes or multiplicities were split up.
//
// A Hash is not safe for concurrent use. To accumulate in parallel, give
// each goroutine its own Hash over the same suite and combine the results
// with Merge.
type Hash struct {
	suite   Suite
	sum     Point
	digest  hash.Hash
	pending bool
}

var _ io.Writer = (*Hash)(nil)

// New returns an empty accumulator over the given suite. It panics if the
// suite's digest does not produce 64-byte outputs, as the hash-to-group map
// requires exactly that much uniform input.
func New(s Suite) *Hash {
	d := s.Hash()
	if d.Size() != uniformLen {
		panic("msethash: suite digest must produce 64-byte outputs")
	}
	return &Hash{
		suite:  s,
		sum:    s.Point(),
		digest: d,
	}
}

// Add accumulates multiplicity copies of the element data in one call.
// Adding with multiplicity zero leaves the accumulator unchanged, and
// adding the same element n times with multiplicity one is equivalent to
// adding it once with multiplicity n.
//
// Add returns ErrPendingUpdate, leaving the accumulator untouched, if bytes
// written through Write have not been committed yet.
func (h *Hash) Add(data []byte, multiplicity uint64) error {
	if h.pending {
		return ErrPendingUpdate
	}
	h.digest.Write(data)
	h.commit(multiplicity)
	return nil
}

// Write appends p to the element currently being accumulated, starting a
// new element if none is in progress. The element is not part of the
// multiset until Commit is called. Write never fails; the returned error is
// always nil.
func (h *Hash) Write(p []byte) (int, error) {
	h.digest.Write(p)
	h.pending = true
	return len(p), nil
}

// Commit finishes the element begun by preceding Write calls and
// accumulates it with the given multiplicity. Calling Commit without a
// preceding Write accumulates the empty byte string, which is an ordinary
// element distinct from adding nothing.
func (h *Hash) Commit(multiplicity uint64) {
	h.commit(multiplicity)
}

func (h *Hash) commit(multiplicity uint64) {
	out := h.digest.Sum(nil)
	h.digest.Reset()
	p := h.suite.Point().FromUniformBytes(out)
	p.Mul(multiplicity, p)
	h.sum.Add(h.sum, p)
	h.pending = false
}

// Finalize returns the canonical fixed-width encoding of the accumulated
// multiset. The accumulator keeps its state, so elements can be added and
// Finalize called again afterwards.
//
// Finalize returns ErrPendingUpdate if bytes written through Write have not
// been committed yet.
func (h *Hash) Finalize() ([]byte, error) {
	if h.pending {
		return nil, ErrPendingUpdate
	}
	return h.sum.MarshalBinary()
}

// FinalizeAndReset returns the digest of the accumulated multiset and
// resets the accumulator to the empty multiset in one step.
//
// It returns ErrPendingUpdate, leaving the accumulator untouched, if bytes
// written through Write have not been committed yet.
func (h *Hash) FinalizeAndReset() ([]byte, error) {
	out, err := h.Finalize()
	if err != nil {
		return nil, err
	}
	h.Reset()
	return out, nil
}

// Reset restores the accumulator to the empty multiset, discarding any
// uncommitted element bytes.
func (h *Hash) Reset() {
	h.sum.Null()
	h.digest.Reset()
	h.pending = false
}

// Merge folds the multiset accumulated by other into h, so that h's digest
// afterwards covers the union of both multisets with multiplicities added.
// The other accumulator is left unchanged. Both accumulators must be built
// over the same group; merging across groups panics.
//
// Merge returns ErrPendingUpdate if either accumulator has bytes written
// through Write that have not been committed yet.
func (h *Hash) Merge(other *Hash) error {
	if h.pending || other.pending {
		return ErrPendingUpdate
	}
	h.sum.Add(h.sum, other.sum)
	return nil
}

// Clone returns an independent copy of the accumulator; elements added to
// the copy do not affect the original. Clone returns ErrPendingUpdate if
// bytes written through Write have not been committed yet, as the digest
// mid-element cannot be duplicated.
func (h *Hash) Clone() (*Hash, error) {
	if h.pending {
		return nil, ErrPendingUpdate
	}
	return &Hash{
		suite:  h.suite,
		sum:    h.sum.Clone(),
		digest: h.suite.Hash(),
	}, nil
}

// MarshalBinary encodes the accumulator state as the canonical point
// encoding of its running sum, the same bytes Finalize returns. It returns
// ErrPendingUpdate if bytes written through Write have not been committed
// yet.
func (h *Hash) MarshalBinary() ([]byte, error) {
	if h.pending {
		return nil, ErrPendingUpdate
	}
	return h.sum.MarshalBinary()
}

// UnmarshalBinary replaces the accumulator state with one previously
// produced by MarshalBinary over the same suite, discarding any uncommitted
// element bytes. It returns ErrInvalidEncoding, leaving the state
// unchanged, if data is not a canonical point encoding.
func (h *Hash) UnmarshalBinary(data []byte) error {
	if err := h.sum.UnmarshalBinary(data); err != nil {
		return ErrInvalidEncoding
	}
	h.digest.Reset()
	h.pending = false
	return nil
}

// Size returns the length in bytes of the digest Finalize produces.
func (h *Hash) Size() int {
	return h.suite.PointLen()
}
