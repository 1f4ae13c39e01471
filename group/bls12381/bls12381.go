// Package bls12381 provides a multiset hash suite over the G1 group of the
// BLS12-381 pairing curve, for systems that already carry its arithmetic.
// Elements are hashed with SHA3-512 and mapped to the group with the
// simplified SWU hash-to-curve construction. Finalized digests are 48
// bytes, the width of the compressed point encoding.
package bls12381

import (
	"encoding/hex"
	"errors"
	"hash"
	"math/big"

	"github.com/corestario/msethash"
	bls "github.com/kilic/bls12-381"
	"golang.org/x/crypto/sha3"
)

// domain separates this use of hash-to-curve from other protocols on the
// curve, in the ciphersuite tag format of the RFC of this name.
var domain = []byte("MSETHASH_BLS12381G1_XMD:SHA-256_SSWU_RO_")

// pointG1 is a msethash.Point holding a G1 point on BLS12-381 curve
type pointG1 struct {
	p *bls.PointG1
}

var _ msethash.Point = (*pointG1)(nil)

func newPointG1() *pointG1 {
	var p bls.PointG1
	return &pointG1{p: &p}
}

func (k *pointG1) Equal(q msethash.Point) bool {
	return bls.NewG1().Equal(k.p, q.(*pointG1).p)
}

func (k *pointG1) Null() msethash.Point {
	k.p.Set(bls.NewG1().Zero())
	return k
}

func (k *pointG1) Clone() msethash.Point {
	var p bls.PointG1
	p.Set(k.p)
	return &pointG1{p: &p}
}

func (k *pointG1) Add(a, b msethash.Point) msethash.Point {
	aa := a.(*pointG1)
	bb := b.(*pointG1)
	bls.NewG1().Add(k.p, aa.p, bb.p)
	return k
}

func (k *pointG1) Mul(n uint64, q msethash.Point) msethash.Point {
	bls.NewG1().MulScalar(k.p, q.(*pointG1).p, new(big.Int).SetUint64(n))
	return k
}

func (k *pointG1) FromUniformBytes(b []byte) msethash.Point {
	if len(b) != 64 {
		panic("bls12-381: uniform input must be 64 bytes")
	}
	p, _ := bls.NewG1().HashToCurve(b, domain)
	k.p = p
	return k
}

func (k *pointG1) MarshalBinary() ([]byte, error) {
	return bls.NewG1().ToCompressed(k.p), nil
}

func (k *pointG1) UnmarshalBinary(data []byte) error {
	if len(data) != 48 {
		return errors.New("bls12-381: invalid encoding length")
	}
	g := bls.NewG1()
	p, err := g.FromCompressed(data)
	if err != nil {
		return err
	}
	if !g.InCorrectSubgroup(p) {
		return errors.New("bls12-381: point not in the prime-order subgroup")
	}
	k.p = p
	return nil
}

func (k *pointG1) MarshalSize() int {
	return 48
}

func (k *pointG1) String() string {
	b, _ := k.MarshalBinary()
	return "bls12-381.G1: " + hex.EncodeToString(b)
}

// Suite is the multiset hash suite over BLS12-381 G1, hashing elements
// with SHA3-512.
type Suite struct{}

var _ msethash.Suite = Suite{}

// NewSuite returns the BLS12-381 G1 suite.
func NewSuite() Suite {
	return Suite{}
}

func (s Suite) String() string {
	return "sha3512_bls12381g1"
}

func (s Suite) PointLen() int {
	return 48
}

func (s Suite) Point() msethash.Point {
	return newPointG1()
}

func (s Suite) Hash() hash.Hash {
	return sha3.New512()
}
