package ripemd160

import (
	"encoding/binary"
	"math/bits"
)

// _seed is the initial state h0..h4 from the RIPEMD-160 paper.
var _seed = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// Message word permutation and per-step rotation amounts for the left line,
// 5 rounds of 16 steps.
var _perm = [80]uint{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
	7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8,
	3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12,
	1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2,
	4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13,
}

var _shift = [80]uint{
	11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8,
	7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12,
	11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5,
	11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12,
	9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6,
}

// Independent tables for the parallel right line.
var _permP = [80]uint{
	5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12,
	6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2,
	15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13,
	8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14,
	12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11,
}

var _shiftP = [80]uint{
	8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6,
	9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11,
	9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5,
	15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8,
	8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11,
}

// compress runs the RIPEMD-160 compression function over every complete
// 64-byte block in p and folds the results into dig.s. It returns the number
// of bytes consumed; a trailing partial block is left untouched.
//
// Each of the five rounds per line uses one boolean mixing function and one
// additive constant; the two lines walk the five functions in mirrored order
// with independent permutation and rotation tables. The per-step update is
// the 5-register cycle a,b,c,d,e = e,rol(t,s)+e,b,rol(c,10),d from the
// paper, written out with multiple assignment so the whole block stays
// allocation free.
func compress(dig *Digest, p []byte) int {
	n := 0
	var x [16]uint32

	for len(p) >= BlockSize {
		a, b, c, d, e := dig.s[0], dig.s[1], dig.s[2], dig.s[3], dig.s[4]
		aa, bb, cc, dd, ee := a, b, c, d, e

		for i := 0; i < 16; i++ {
			x[i] = binary.LittleEndian.Uint32(p[i*4:])
		}

		// round 1: left f = x^y^z, right f = x^(y|^z)
		i := 0
		for i < 16 {
			t := a + (b ^ c ^ d) + x[_perm[i]]
			t = bits.RotateLeft32(t, int(_shift[i])) + e
			a, b, c, d, e = e, t, b, bits.RotateLeft32(c, 10), d

			t = aa + (bb ^ (cc | ^dd)) + x[_permP[i]] + 0x50a28be6
			t = bits.RotateLeft32(t, int(_shiftP[i])) + ee
			aa, bb, cc, dd, ee = ee, t, bb, bits.RotateLeft32(cc, 10), dd

			i++
		}

		// round 2: left f = (x&y)|(^x&z), right f = (x&z)|(y&^z)
		for i < 32 {
			t := a + (b&c | ^b&d) + x[_perm[i]] + 0x5a827999
			t = bits.RotateLeft32(t, int(_shift[i])) + e
			a, b, c, d, e = e, t, b, bits.RotateLeft32(c, 10), d

			t = aa + (bb&dd | cc&^dd) + x[_permP[i]] + 0x5c4dd124
			t = bits.RotateLeft32(t, int(_shiftP[i])) + ee
			aa, bb, cc, dd, ee = ee, t, bb, bits.RotateLeft32(cc, 10), dd

			i++
		}

		// round 3: both lines f = (x|^y)^z
		for i < 48 {
			t := a + (b | ^c ^ d) + x[_perm[i]] + 0x6ed9eba1
			t = bits.RotateLeft32(t, int(_shift[i])) + e
			a, b, c, d, e = e, t, b, bits.RotateLeft32(c, 10), d

			t = aa + (bb | ^cc ^ dd) + x[_permP[i]] + 0x6d703ef3
			t = bits.RotateLeft32(t, int(_shiftP[i])) + ee
			aa, bb, cc, dd, ee = ee, t, bb, bits.RotateLeft32(cc, 10), dd

			i++
		}

		// round 4: left f = (x&z)|(y&^z), right f = (x&y)|(^x&z)
		for i < 64 {
			t := a + (b&d | c&^d) + x[_perm[i]] + 0x8f1bbcdc
			t = bits.RotateLeft32(t, int(_shift[i])) + e
			a, b, c, d, e = e, t, b, bits.RotateLeft32(c, 10), d

			t = aa + (bb&cc | ^bb&dd) + x[_permP[i]] + 0x7a6d76e9
			t = bits.RotateLeft32(t, int(_shiftP[i])) + ee
			aa, bb, cc, dd, ee = ee, t, bb, bits.RotateLeft32(cc, 10), dd

			i++
		}

		// round 5: left f = x^(y|^z), right f = x^y^z
		for i < 80 {
			t := a + (b ^ (c | ^d)) + x[_perm[i]] + 0xa953fd4e
			t = bits.RotateLeft32(t, int(_shift[i])) + e
			a, b, c, d, e = e, t, b, bits.RotateLeft32(c, 10), d

			t = aa + (bb ^ cc ^ dd) + x[_permP[i]]
			t = bits.RotateLeft32(t, int(_shiftP[i])) + ee
			aa, bb, cc, dd, ee = ee, t, bb, bits.RotateLeft32(cc, 10), dd

			i++
		}

		// cross-mix the two lines back into the running state
		dd += c + dig.s[1]
		dig.s[1] = dig.s[2] + d + ee
		dig.s[2] = dig.s[3] + e + aa
		dig.s[3] = dig.s[4] + a + bb
		dig.s[4] = dig.s[0] + b + cc
		dig.s[0] = dd

		p = p[BlockSize:]
		n += BlockSize
	}

	return n
}
