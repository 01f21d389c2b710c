package siphash

import (
	"fmt"
	"math/bits"
)

// Rotation amounts of the published SipRound.
const (
	rotV1First  = 13
	rotV3First  = 16
	rotHalf     = 32
	rotV1Second = 17
	rotV3Second = 21
)

// finalizationXor is folded into v2 between the compression and the
// finalization rounds.
const finalizationXor = 0xff

// Keys holds the four 64-bit words used as the initial SipHash state v0..v3.
type Keys [4]uint64

// String renders the keys as fixed-width hex words, e.g. for log fields.
func (k Keys) String() string {
	return fmt.Sprintf("[%#016x %#016x %#016x %#016x]", k[0], k[1], k[2], k[3])
}

// Hash24 returns SipHash-2-4 of the single block nonce under keys k.
//
// The caller owns k; it is taken by pointer only to avoid copying 32 bytes on
// every call in hot loops.
func Hash24(k *Keys, nonce uint64) uint64 {
	v0, v1, v2, v3 := k[0], k[1], k[2], k[3]

	// Compression: absorb the single message block.
	v3 ^= nonce
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0 ^= nonce

	// Finalization.
	v2 ^= finalizationXor
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0, v1, v2, v3 = round(v0, v1, v2, v3)
	v0, v1, v2, v3 = round(v0, v1, v2, v3)

	return v0 ^ v1 ^ v2 ^ v3
}

// round is one SipRound. Kept as a value-in/value-out function so the
// compiler can inline it and keep the state in registers.
func round(v0, v1, v2, v3 uint64) (uint64, uint64, uint64, uint64) {
	v0 += v1
	v2 += v3
	v1 = bits.RotateLeft64(v1, rotV1First)
	v3 = bits.RotateLeft64(v3, rotV3First)
	v1 ^= v0
	v3 ^= v2
	v0 = bits.RotateLeft64(v0, rotHalf)
	v2 += v1
	v0 += v3
	v1 = bits.RotateLeft64(v1, rotV1Second)
	v3 = bits.RotateLeft64(v3, rotV3Second)
	v1 ^= v2
	v3 ^= v0
	v2 = bits.RotateLeft64(v2, rotHalf)

	return v0, v1, v2, v3
}
