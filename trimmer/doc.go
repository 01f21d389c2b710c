// Package trimmer implements lean edge trimming: repeatedly discarding
// edges that cannot lie on any cycle because one of their endpoints has
// degree one.
//
// What:
//
//   - A Trimmer owns one alive bitmap over edge indices and two node bitmaps
//     (seenOnce, seenMulti) reused by every half-round.
//   - A half-round on side S counts, for every alive edge, whether its S-node
//     was seen once or more than once, then kills edges whose S-node was seen
//     exactly once.
//   - A full round is a U half-round followed by a V half-round. Run performs
//     up to N full rounds and stops early when a round removes nothing.
//
// Why:
//
//   - Memory is one bit per edge plus two bits per node; endpoints are
//     recomputed from the Source instead of stored.
//   - An edge on a cycle has both endpoints of degree ≥ 2 in any subgraph that
//     still contains the cycle, so trimming never removes a cycle edge.
//
// Complexity:
//
//   - HalfRound: O(alive + N/64) time, O(1) extra space.
//   - Run: O(rounds * (alive + N/64)) time, O(E + 2N) bits total.
package trimmer
