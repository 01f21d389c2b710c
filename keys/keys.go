// SPDX-License-Identifier: MIT

// Package keys derives the four SipHash keys that seed a Cuckatoo graph from
// a block header and a nonce.
//
// The derivation is BLAKE2b-256 over header || LE64(nonce); the 32-byte
// digest is read as four little-endian 64-bit words.
package keys

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/cuckatoo/siphash"
)

// HeaderSize is the length of the pre-PoW header used when tuning the solver
// without a real block template.
const HeaderSize = 238

// nonceSize is the number of bytes appended to the header.
const nonceSize = 8

// Derive returns the graph keys for header and nonce.
// header is not modified; any length is accepted.
func Derive(header []byte, nonce uint64) siphash.Keys {
	buf := make([]byte, len(header)+nonceSize)
	copy(buf, header)
	binary.LittleEndian.PutUint64(buf[len(header):], nonce)

	sum := blake2b.Sum256(buf)

	var k siphash.Keys
	for i := range k {
		k[i] = binary.LittleEndian.Uint64(sum[i*8:])
	}

	return k
}

// TuningHeader returns the fixed header used by the tuning mode: HeaderSize
// bytes, all zero except the first two, which carry a version marker.
func TuningHeader() []byte {
	h := make([]byte, HeaderSize)
	h[0] = 0x01
	h[1] = 0x02

	return h
}
