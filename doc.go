// Package cuckatoo is a lean-trimming solver for the Cuckatoo cycle
// proof-of-work: given keys derived from a block header and a nonce, it
// finds cycles of a fixed length in the implied bipartite graph.
//
// 🚀 What is in the box?
//
//   - siphash/  - the keyed SipHash-2-4 variant that names every edge endpoint
//   - keys/     - BLAKE2b key derivation from header ‖ nonce
//   - bitmap/   - fixed-size bitsets for the alive-set and degree marks
//   - edges/    - graph parameters, the lazy edge generator, explicit tables
//   - builder/  - synthetic tables with planted cycles, paths, pendants, noise
//   - trimmer/  - lean trimming of degree-1 edges to a fixpoint
//   - cycles/   - cycle search over the survivors, plus proof verification
//   - engine/   - one attempt end to end, with a memory guard and stats
//   - cmd/cuckatoo - tune, mine and verify from the command line
//
// Quick ASCII example (a 4-cycle, U on top, V below):
//
//	u0   u1
//	│ ╲ ╱ │
//	│  ╳  │
//	│ ╱ ╲ │
//	v0   v1
//
// Every edge i joins u = H(2i) and v = H(2i+1); an edge whose endpoint has
// no other incident edge can never lie on a cycle, so it is trimmed.
//
//	go install github.com/katalvlaran/cuckatoo/cmd/cuckatoo@latest
package cuckatoo
