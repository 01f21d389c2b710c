// Package builder assembles deterministic synthetic edge tables with known
// cycle structure, for exercising the trimmer and the cycle verifier on
// graphs small enough to reason about by hand.
//
// The package offers the following key components:
//
//   - Orchestration:
//     BuildTable creates an edges.Table and applies constructors in order;
//     a Constructor is a function that appends edges to the table.
//   - Topologies:
//     PlantedCycle (a simple cycle of even length over fresh nodes),
//     Path (an acyclic alternating path), Pendants (degree-1 edges hanging
//     off existing nodes), CompleteBipartite (K_{n1,n2} over fresh nodes)
//     and RandomSparse (uniformly random edges over the whole node range).
//   - Configuration primitives:
//     BuilderOption values WithSeed, WithRand, WithShuffle.
//
// Guarantees:
//
//   - Disjointness: every constructor except RandomSparse draws its nodes
//     from a shared allocator, so components never touch one another.
//   - Determinism: same inputs, options, seed and constructor order give an
//     identical table, edge indices included.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; constructors themselves return sentinel errors.
//
// Without WithShuffle, edge indices are assigned in emission order, so a
// test can name the exact indices of a planted cycle: they are the
// NumEdges() values observed before and after its constructor runs.
package builder
