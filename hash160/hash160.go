// Package hash160 implements the Hash160 construction used by Bitcoin-style
// address derivation: Sum(data) is RIPEMD160(SHA256(data)).
package hash160

import (
	"crypto/sha256"
	"hash"

	"github.com/consensys/ripemd160"
)

// Size is the size of a Hash160 checksum in bytes.
const Size = ripemd160.Size

// BlockSize is the block size of Hash160 in bytes. Input is absorbed by the
// inner SHA-256, so its block size is the one that matters to callers.
const BlockSize = sha256.BlockSize

type digest struct {
	inner hash.Hash
	outer *ripemd160.Digest
}

// New returns a new hash.Hash computing the Hash160 checksum.
func New() hash.Hash {
	return &digest{inner: sha256.New(), outer: ripemd160.New()}
}

func (d *digest) Size() int      { return Size }
func (d *digest) BlockSize() int { return BlockSize }

func (d *digest) Reset() {
	d.inner.Reset()
	d.outer.Reset()
}

func (d *digest) Write(p []byte) (int, error) {
	return d.inner.Write(p)
}

func (d *digest) Sum(in []byte) []byte {
	d.outer.Reset()
	d.outer.Write(d.inner.Sum(nil))
	return d.outer.SumReset(in)
}

// Sum returns the Hash160 checksum of data.
func Sum(data []byte) [Size]byte {
	sh := sha256.Sum256(data)
	return ripemd160.Sum160(sh[:])
}
