package msethash_test

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/corestario/msethash"
	"github.com/corestario/msethash/group/ristretto255"
)

func TestMultisetProperties(t *testing.T) {
	suite := ristretto255.NewSuite()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("digest(xs) == digest(reverse(xs))", prop.ForAll(
		func(xs []string) bool {
			forward := msethash.New(suite)
			for _, x := range xs {
				forward.Add([]byte(x), 1)
			}
			backward := msethash.New(suite)
			for i := len(xs) - 1; i >= 0; i-- {
				backward.Add([]byte(xs[i]), 1)
			}
			a, _ := forward.Finalize()
			b, _ := backward.Finalize()
			return bytes.Equal(a, b)
		},
		gen.SliceOf(gen.AnyString()),
	))

	properties.Property("Add(x, n) == Add(x, 1) repeated n times", prop.ForAll(
		func(x string, n int) bool {
			folded := msethash.New(suite)
			folded.Add([]byte(x), uint64(n))
			unrolled := msethash.New(suite)
			for i := 0; i < n; i++ {
				unrolled.Add([]byte(x), 1)
			}
			a, _ := folded.Finalize()
			b, _ := unrolled.Finalize()
			return bytes.Equal(a, b)
		},
		gen.AnyString(),
		gen.IntRange(0, 30),
	))

	properties.Property("Add(x, 0) leaves the digest unchanged", prop.ForAll(
		func(x string) bool {
			h := msethash.New(suite)
			h.Add([]byte(x), 0)
			out, _ := h.Finalize()
			empty, _ := msethash.New(suite).Finalize()
			return bytes.Equal(out, empty)
		},
		gen.AnyString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCompositionProperties(t *testing.T) {
	suite := ristretto255.NewSuite()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("Write(a)+Write(b)+Commit == Add(a+b)", prop.ForAll(
		func(a, b string) bool {
			chunked := msethash.New(suite)
			chunked.Write([]byte(a))
			chunked.Write([]byte(b))
			chunked.Commit(1)
			whole := msethash.New(suite)
			whole.Add([]byte(a+b), 1)
			x, _ := chunked.Finalize()
			y, _ := whole.Finalize()
			return bytes.Equal(x, y)
		},
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("digest(xs) == Merge(digest(xs[:k]), digest(xs[k:]))", prop.ForAll(
		func(xs []string, k int) bool {
			k %= len(xs) + 1
			whole := msethash.New(suite)
			for _, x := range xs {
				whole.Add([]byte(x), 1)
			}
			head := msethash.New(suite)
			for _, x := range xs[:k] {
				head.Add([]byte(x), 1)
			}
			tail := msethash.New(suite)
			for _, x := range xs[k:] {
				tail.Add([]byte(x), 1)
			}
			if err := head.Merge(tail); err != nil {
				return false
			}
			a, _ := whole.Finalize()
			b, _ := head.Finalize()
			return bytes.Equal(a, b)
		},
		gen.SliceOf(gen.AnyString()),
		gen.IntRange(0, 64),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
