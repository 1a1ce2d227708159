package hash160

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

var vectors = []struct {
	in  string
	out string
}{
	{"", "b472a266d0bd89c13706a4132ccfb16f7c3b9fcb"},
	{"abc", "bb1be98c142444d7a56aa3981c3942a978e4dc33"},
	{"Hello world!", "621281c15fb62d5c6013ea29007491e8b174e1b9"},
}

func TestSum(t *testing.T) {
	for _, v := range vectors {
		sum := Sum([]byte(v.in))
		require.Equal(t, v.out, hex.EncodeToString(sum[:]), "input %q", v.in)
	}
}

func TestStreaming(t *testing.T) {
	h := New()
	for _, v := range vectors {
		h.Reset()
		for i := 0; i < len(v.in); i++ {
			h.Write([]byte{v.in[i]})
		}
		require.Equal(t, v.out, hex.EncodeToString(h.Sum(nil)), "input %q", v.in)
	}

	// Sum must not disturb the running state
	h.Reset()
	h.Write([]byte("abc"))
	first := h.Sum(nil)
	require.Equal(t, first, h.Sum(nil))
}

func TestSizes(t *testing.T) {
	h := New()
	require.Equal(t, Size, h.Size())
	require.Equal(t, BlockSize, h.BlockSize())
}
