package ripemd160

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// The digest must not depend on how the input was split across Write calls.
func TestChunkingInvariance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("hash(S) == hash(any partition of S)", prop.ForAll(
		func(data []byte, seed uint64) bool {
			oneShot := Sum160(data)

			r := rand.New(rand.NewSource(int64(seed)))
			d := New()
			for rest := data; len(rest) > 0; {
				n := 1 + r.Intn(len(rest))
				d.Write(rest[:n])
				rest = rest[n:]
			}
			return cmp.Equal(oneShot[:], d.Sum(nil))
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSumResetMatchesFreshInstance(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("digest after SumReset is unaffected by the first stream", prop.ForAll(
		func(first, second []byte) bool {
			d := New()
			d.Write(first)
			pre := d.SumReset(nil)
			wantPre := Sum160(first)

			d.Write(second)
			want := Sum160(second)
			return cmp.Equal(pre, wantPre[:]) && cmp.Equal(d.Sum(nil), want[:])
		},
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestCloneForkProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("clone and original diverge independently", prop.ForAll(
		func(prefix, contA, contB []byte) bool {
			d := New()
			d.Write(prefix)
			c := d.Clone()

			d.Write(contA)
			c.Write(contB)

			wantA := Sum160(append(append([]byte{}, prefix...), contA...))
			wantB := Sum160(append(append([]byte{}, prefix...), contB...))
			return cmp.Equal(d.Sum(nil), wantA[:]) && cmp.Equal(c.Sum(nil), wantB[:])
		},
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
