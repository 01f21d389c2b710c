// Package cycles finds and checks fixed-length cycles among the edges that
// survived trimming.
//
// What:
//
//   - Find builds a compact adjacency view of the alive edges, drops
//     connected components too small to hold a cycle of the target length,
//     and runs a depth-limited backtracking search from every remaining
//     start edge. Each candidate is replayed by Verify before it is
//     reported.
//   - Verify replays a cycle given as a walk of edge indices: endpoints are
//     recomputed from the Source, and alternation, closure, length and
//     node simplicity are checked from scratch.
//   - VerifyProof checks a cycle in its published form: edge indices in
//     strictly ascending order, each node touched exactly twice, forming one
//     cycle of the target length.
//
// Search invariants:
//
//   - A walk starting at edge s only extends through edges with index > s,
//     so every cycle is found exactly once, from its minimum edge.
//   - Per-side visited bitmaps over the compacted node ids keep the walk
//     simple.
//   - Before each start edge, a breadth-first pass labels nodes with their
//     distance back to the start node over eligible edges. A step is taken
//     only if the walk can still close in the edges it has left, so start
//     edges that lie on no cycle are abandoned at once.
//   - Cycles are handed out as the walk closes them. MaxSolutions and the
//     context stop the recursion where it stands.
//   - Found walks are stored in canonical form (minimal rotation over both
//     directions) so duplicates are rejected even if the search is changed.
//
// Complexity:
//
//   - Adjacency and components: O(A) time and space for A alive edges.
//   - Search: exponential in the worst case, bounded by L levels per start
//     edge, plus O(A) per start edge for the distance labels. Dense graphs
//     hold vastly more cycles than can be listed; bound them with
//     WithMaxSolutions or a context deadline. WithMaxEdges caps A.
//   - Verify, VerifyProof: O(L) time and space.
package cycles
