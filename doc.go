// Package ripemd160 implements the RIPEMD-160 hash algorithm, as defined in
// "RIPEMD-160: A Strengthened Version of RIPEMD" (Dobbertin, Bosselaers,
// Preneel, 1996).
//
// RIPEMD-160 is a legacy 160-bit hash. It remains in wide use for
// interoperability with Bitcoin-style address derivation (see the hash160
// subpackage) but should not be selected for new designs.
//
// The implementation is streaming: input may be written in arbitrary chunks
// and finalized once with Sum, or finalized-and-reused with SumReset. A
// Digest can be cloned mid-stream to fork a computation, and its state can be
// checkpointed with MarshalBinary.
package ripemd160

import "github.com/blang/semver/v4"

// Version of the module
var Version = semver.MustParse("0.1.0")
