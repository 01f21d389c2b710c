// Package edges defines the bipartite graph shape of a Cuckatoo instance and
// the lazily generated edges that populate it.
//
// What:
//
//   - Params: edgeBits and the quantities derived from it (NumEdges,
//     NumNodes per side, NodeMask).
//   - Side: the two partitions, U and V.
//   - Source: the read-only view every downstream stage consumes. An edge
//     is identified by its index; its two endpoints are obtained on demand.
//   - Generator: the keyed Source, endpoints computed by siphash.Hash24.
//   - Table: an explicit, in-memory Source for fixtures and synthetic graphs.
//
// Why:
//
//   - Edges are never stored by the solver. Recomputing an endpoint from an
//     index is cheaper than holding 2^edgeBits pairs in memory, and the same
//     recomputation is what lets a third party replay a proof.
//   - Consumers depend on Source, not Generator, so the trimmer and verifier
//     can be tested on small hand-built graphs.
//
// Complexity:
//
//   - Generator.Endpoint: O(1), one hash call.
//   - Table.Endpoint: O(1), one slice read.
//   - Collect: O(n) time and memory; guarded by an explicit limit.
package edges
