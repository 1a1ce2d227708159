package ripemd160

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Instances share no state: hashing independent streams from many goroutines,
// each with its own Digest, must reproduce the single-threaded results.
func TestIndependentInstances(t *testing.T) {
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		msg := pattern(57 + 13*w)
		want := Sum160(msg)
		g.Go(func() error {
			d := New()
			for i := 0; i < 100; i++ {
				d.Write(msg)
				if got := d.SumReset(nil); !bytes.Equal(got, want[:]) {
					return fmt.Errorf("iteration %d: digest mismatch", i)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
