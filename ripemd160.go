package ripemd160

import (
	"encoding/binary"
	"errors"
)

// Size is the size of a RIPEMD-160 checksum in bytes.
const Size = 20

// BlockSize is the block size of RIPEMD-160 in bytes.
const BlockSize = 64

// marshaled state: five state words, pending block, buffered byte count,
// total length counter, finalized flag.
const marshaledSize = 5*4 + BlockSize + 8 + 8 + 1

var errMarshalLength = errors.New("ripemd160: invalid hash state size")

// Digest is the streaming state of a RIPEMD-160 computation. It satisfies
// hash.Hash and io.Writer.
//
// A Digest is finalized by the first call to Sum: further Write calls panic
// until Reset. Use SumReset to finalize and immediately start a new stream on
// the same instance. The zero value is not usable; call New.
type Digest struct {
	s    [5]uint32       // running state h0..h4
	x    [BlockSize]byte // pending partial block
	nx   int             // number of buffered bytes in x, 0..63
	len  uint64          // total bytes written, pre-padding
	done bool
}

// New returns a Digest computing the RIPEMD-160 checksum.
func New() *Digest {
	d := new(Digest)
	d.Reset()
	return d
}

// Reset restores the initial state: seed constants, empty pending block,
// zero length counter. It also re-arms a finalized Digest.
func (d *Digest) Reset() {
	d.s = _seed
	d.nx = 0
	d.len = 0
	d.done = false
}

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int { return BlockSize }

// Write absorbs more input. It never returns an error.
//
// Write panics if the Digest was finalized by Sum and not Reset since.
func (d *Digest) Write(p []byte) (nn int, err error) {
	if d.done {
		panic("ripemd160: write after Sum without Reset")
	}
	nn = len(p)
	d.len += uint64(nn)
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == BlockSize {
			compress(d, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	n := compress(d, p)
	p = p[n:]
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
	return
}

// Sum finalizes the hash and appends the 20-byte digest to in. The first
// call consumes the Digest: subsequent Write calls panic until Reset.
// Repeated Sum calls return the same digest.
func (d *Digest) Sum(in []byte) []byte {
	if !d.done {
		d.finalize()
	}
	var out [Size]byte
	for i, s := range d.s {
		binary.LittleEndian.PutUint32(out[i*4:], s)
	}
	return append(in, out[:]...)
}

// SumReset finalizes the hash, appends the 20-byte digest to in and restores
// the Digest to its initial state so it can immediately absorb an unrelated
// stream. The returned digest covers the bytes written before the reset.
func (d *Digest) SumReset(in []byte) []byte {
	out := d.Sum(in)
	d.Reset()
	return out
}

// finalize pads the pending input with 0x80, zero fill to 56 mod 64 and the
// 64-bit little-endian bit length, then runs the trailing block(s).
func (d *Digest) finalize() {
	tc := d.len
	var tmp [BlockSize]byte
	tmp[0] = 0x80
	if tc%64 < 56 {
		d.Write(tmp[0 : 56-tc%64])
	} else {
		d.Write(tmp[0 : 64+56-tc%64])
	}
	binary.LittleEndian.PutUint64(tmp[0:8], tc<<3)
	d.Write(tmp[0:8])
	if d.nx != 0 {
		panic("ripemd160: pending block not drained by padding")
	}
	d.done = true
}

// Clone returns an independent copy of the Digest. The copy and the original
// share no state; both may continue absorbing input, which serves
// checkpoint/fork use cases without re-hashing the common prefix.
func (d *Digest) Clone() *Digest {
	c := *d
	return &c
}

// String implements fmt.Stringer. The rendering is deliberately opaque:
// internal state is partial-hash material and must not end up in logs.
func (d *Digest) String() string { return "ripemd160.Digest" }

// MarshalBinary implements encoding.BinaryMarshaler. The encoding captures
// the mid-stream state, including whether the Digest was finalized.
func (d *Digest) MarshalBinary() ([]byte, error) {
	b := make([]byte, marshaledSize)
	for i, s := range d.s {
		binary.LittleEndian.PutUint32(b[i*4:], s)
	}
	copy(b[20:], d.x[:])
	binary.LittleEndian.PutUint64(b[20+BlockSize:], uint64(d.nx))
	binary.LittleEndian.PutUint64(b[28+BlockSize:], d.len)
	if d.done {
		b[36+BlockSize] = 1
	}
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Digest) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return errMarshalLength
	}
	nx := binary.LittleEndian.Uint64(data[20+BlockSize:])
	if nx >= BlockSize {
		return errors.New("ripemd160: corrupt hash state")
	}
	for i := range d.s {
		d.s[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	copy(d.x[:], data[20:])
	d.nx = int(nx)
	d.len = binary.LittleEndian.Uint64(data[28+BlockSize:])
	d.done = data[36+BlockSize] == 1
	return nil
}

// Sum160 returns the RIPEMD-160 checksum of data.
func Sum160(data []byte) [Size]byte {
	var d Digest
	d.Reset()
	d.Write(data)
	var sum [Size]byte
	d.Sum(sum[:0])
	return sum
}
