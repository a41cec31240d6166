package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
)

// errBadFlag reports an invalid flag combination.
var errBadFlag = errors.New("invalid flag")

// instanceFlags describe the synthetic graph and its terminal set.
type instanceFlags struct {
	topology  string
	n         int
	rows      int
	cols      int
	p         float64
	seed      int64
	minWeight int64
	maxWeight int64
	terminals int
	named     []string
}

// buildInstance returns the graph and the terminals described by f.
// Named terminals win over the random draw.
func buildInstance(f instanceFlags) (*core.Graph, []string, error) {
	if f.minWeight < 0 || f.maxWeight < f.minWeight {
		return nil, nil, fmt.Errorf("%w: weights [%d, %d]", errBadFlag, f.minWeight, f.maxWeight)
	}

	var cons []builder.Constructor
	switch f.topology {
	case "path":
		cons = append(cons, builder.Path(f.n))
	case "cycle":
		cons = append(cons, builder.Cycle(f.n))
	case "star":
		cons = append(cons, builder.Star(f.n))
	case "complete":
		cons = append(cons, builder.Complete(f.n))
	case "grid":
		cons = append(cons, builder.Grid(f.rows, f.cols))
	case "random":
		// The path keeps the sample connected.
		cons = append(cons, builder.Path(f.n), builder.RandomSparse(f.n, f.p))
	default:
		return nil, nil, fmt.Errorf("%w: topology %q (want path, cycle, star, complete, grid or random)", errBadFlag, f.topology)
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(f.seed), builder.WithUniformWeight(f.minWeight, f.maxWeight)},
		cons...,
	)
	if err != nil {
		return nil, nil, err
	}

	if len(f.named) > 0 {
		return g, f.named, nil
	}
	vs := g.Vertices()
	if f.terminals < 1 || f.terminals > len(vs) {
		return nil, nil, fmt.Errorf("%w: terminals=%d with %d vertices", errBadFlag, f.terminals, len(vs))
	}
	r := rand.New(rand.NewSource(f.seed))
	terms := make([]string, f.terminals)
	for i, j := range r.Perm(len(vs))[:f.terminals] {
		terms[i] = vs[j]
	}

	return g, terms, nil
}
