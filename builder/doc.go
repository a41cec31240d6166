// Package builder provides deterministic, functional-options style graph
// constructors used to generate Steiner tree instances for tests, benchmarks
// and the lvsteiner CLI.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a core.Graph and runs constructors in order.
//     – Constructor:       a single topology mutation.
//   - Topologies:
//     – Path, Cycle, Star, Complete, Grid, RandomSparse.
//   - Configuration (BuilderOption):
//     – WithIDScheme, WithPrefixIDs:   vertex naming.
//     – WithSeed, WithRand:            explicit randomness.
//     – WithConstantWeight, WithUniformWeight, WithWeightFn: edge weights.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless inputs; topology constructors
//     return sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed).
//   - Composing constructors never duplicates an existing pair unless the
//     graph is a multigraph.
package builder
