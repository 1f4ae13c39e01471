// Package ristretto255 provides the standard multiset hash suite, summing
// element points in the ristretto255 prime-order group (RFC 9496).
//
// Elements are hashed with SHA-512 and mapped to the group the way the
// wider ristretto ecosystem derives points from uniform input: the 64-byte
// digest is split in halves, each half goes through the Elligator map, and
// the two resulting points are added. Finalized digests are 32 bytes, the
// group's canonical encoding width. A variant suite hashing with
// BLAKE2b-512 is available for callers that prefer its throughput.
package ristretto255

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"hash"
	"math/big"

	"github.com/bwesterb/go-ristretto"
	"github.com/corestario/msethash"
	"golang.org/x/crypto/blake2b"
)

// pointLen is the width of the canonical ristretto255 point encoding.
const pointLen = 32

var errInvalidEncoding = errors.New("ristretto255: not a canonical point encoding")

type point struct {
	p ristretto.Point
}

var _ msethash.Point = (*point)(nil)

func newPoint() *point {
	r := new(point)
	r.p.SetZero()
	return r
}

func (r *point) Equal(q msethash.Point) bool {
	return r.p.Equals(&q.(*point).p)
}

func (r *point) Null() msethash.Point {
	r.p.SetZero()
	return r
}

func (r *point) Clone() msethash.Point {
	q := *r
	return &q
}

func (r *point) Add(a, b msethash.Point) msethash.Point {
	r.p.Add(&a.(*point).p, &b.(*point).p)
	return r
}

func (r *point) Mul(n uint64, q msethash.Point) msethash.Point {
	var s ristretto.Scalar
	s.SetBigInt(new(big.Int).SetUint64(n))
	var out ristretto.Point
	out.ScalarMult(&q.(*point).p, &s)
	r.p = out
	return r
}

func (r *point) FromUniformBytes(b []byte) msethash.Point {
	if len(b) != 64 {
		panic("ristretto255: uniform input must be 64 bytes")
	}
	var lo, hi [32]byte
	copy(lo[:], b[:32])
	copy(hi[:], b[32:])
	var p1, p2 ristretto.Point
	p1.SetElligator(&lo)
	p2.SetElligator(&hi)
	r.p.Add(&p1, &p2)
	return r
}

func (r *point) MarshalBinary() ([]byte, error) {
	return r.p.Bytes(), nil
}

func (r *point) UnmarshalBinary(data []byte) error {
	if len(data) != pointLen {
		return errInvalidEncoding
	}
	var buf [32]byte
	copy(buf[:], data)
	var p ristretto.Point
	if !p.SetBytes(&buf) {
		return errInvalidEncoding
	}
	r.p = p
	return nil
}

func (r *point) MarshalSize() int {
	return pointLen
}

func (r *point) String() string {
	return "ristretto255: " + hex.EncodeToString(r.p.Bytes())
}

// Suite is a multiset hash suite over the ristretto255 group.
type Suite struct {
	name    string
	newHash func() hash.Hash
}

var _ msethash.Suite = (*Suite)(nil)

// NewSuite returns the standard suite, hashing elements with SHA-512.
func NewSuite() *Suite {
	return &Suite{name: "sha512_ristretto255", newHash: sha512.New}
}

// NewBlake2b512Suite returns a suite hashing elements with BLAKE2b-512.
func NewBlake2b512Suite() *Suite {
	return &Suite{name: "blake2b512_ristretto255", newHash: func() hash.Hash {
		h, _ := blake2b.New512(nil)
		return h
	}}
}

func (s *Suite) String() string {
	return s.name
}

func (s *Suite) PointLen() int {
	return pointLen
}

func (s *Suite) Point() msethash.Point {
	return newPoint()
}

func (s *Suite) Hash() hash.Hash {
	return s.newHash()
}
