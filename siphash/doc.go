// Package siphash implements the keyed pseudorandom function that maps an
// edge nonce to a graph node.
//
// What:
//
//   - Hash24: SipHash-2-4 over a single 64-bit message block, with the
//     four-word internal state seeded directly from Keys (the Cuckatoo
//     convention). Two compression rounds, four finalization rounds.
//   - Keys: the four 64-bit words derived from a header and nonce by an
//     external collaborator (see package keys).
//
// Why:
//
//   - Every endpoint of every edge is re-derived on demand from its index, so
//     the function is called billions of times per graph. It is pure and
//     allocation-free so the trimmer can trade hash calls for memory.
//   - Bit-for-bit reproducibility is what makes a found cycle verifiable by
//     anyone holding the same header and nonce.
//
// Complexity:
//
//   - Hash24: O(1) time, O(1) space, zero allocations.
package siphash
