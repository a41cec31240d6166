// Package lvsteiner approximates Minimum Steiner Trees on in-memory graphs.
//
// Given an undirected graph with non-negative integer weights and a set of
// terminal vertices, lvsteiner finds a light tree that connects every
// terminal, routing through extra Steiner points where that pays off.
//
// What is inside:
//
//	core/         — thread-safe Graph, Vertex and Edge types, induced and edge subgraphs
//	builder/      — deterministic synthetic graphs: path, cycle, star, complete, grid, random
//	dijkstra/     — single-source shortest paths with path reconstruction
//	prim_kruskal/ — minimum spanning trees (Prim, Kruskal)
//	steiner/      — RZLoss and Zelikovsky contraction solvers, Kou and Takahashi heuristics
//	cmd/lvsteiner — CLI: build an instance, solve it, print a text or YAML report
//
// Quick example:
//
//	    a       b
//	     \     /
//	      (hub)        terminals a, b, c; every spoke weighs 1
//	        |
//	        c
//
//	z := steiner.NewZelikovsky()
//	w, tree, err := z.Call(g, []string{"a", "b", "c"}, nil)
//	// w == 3, tree holds the three spokes
//
//	go get github.com/katalvlaran/lvsteiner
package lvsteiner
