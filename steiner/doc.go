// Package steiner approximates Minimum Steiner Trees in undirected,
// non-negatively weighted core.Graph instances.
//
// Given a graph and a set of required terminal vertices, the solvers return
// a low-weight tree that spans every terminal, optionally routed through
// non-terminal Steiner points. Two contraction families are provided:
//
//   - RZLoss: the loss-contracting k-full-component algorithm of Robins and
//     Zelikovsky. Full components with up to MaxComponentSize terminals are
//     enumerated over a distance oracle that only relays through
//     non-terminals, scored by (gain - cost) / loss and greedily contracted.
//   - Zelikovsky: the 11/6 triple-contraction algorithm with configurable
//     generation (exhaustive, voronoi, onDemand), pruning, save-edge
//     structure (staticTree, staticLCATree, dynamicLCATree, hybrid), win
//     function (absolute, relative) and pass policy (onePass, multiPass).
//
// Both solvers finish with a reconstruction step that compares the
// contraction result against Kou-Markowsky-Berman and Takahashi-Matsuyama
// trees and keeps the lightest, so the answer is never worse than the
// terminal MST bound. Kou and Takahashi are exposed on their own as well,
// together with IsSteinerTree for validating any candidate tree.
//
// Determinism: with the same graph, terminals and options every solver
// produces the same tree. Ties are broken by vertex order (lexicographic IDs)
// and terminal order (as given by the caller).
//
// Time budget: Options.TimeLimit bounds the distance oracle, the candidate
// generation and the contraction rounds. Exhausting it is logged at Warn
// level and never reported as an error; the returned tree stays valid.
//
// Concurrency: a solver value must not be shared between goroutines while a
// call is running. The input graph is only read.
package steiner
