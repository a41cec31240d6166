package steiner_test

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dijkstra"
	"github.com/katalvlaran/lvsteiner/prim_kruskal"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// solver is the common shape of RZLoss and Zelikovsky.
type solver interface {
	Call(g *core.Graph, terminals []string, isTerminal map[string]bool) (int64, *core.Graph, error)
	Stats() steiner.Stats
}

// namedSolver pairs a solver with a label for subtests.
type namedSolver struct {
	name string
	s    solver
}

// allSolvers returns RZLoss for k = 3 and 4 and Zelikovsky for every
// option combination, each with extra applied last.
func allSolvers(extra ...steiner.Option) []namedSolver {
	with := func(opts ...steiner.Option) []steiner.Option { return append(opts, extra...) }
	out := []namedSolver{
		{"rzloss/k=3", steiner.NewRZLoss(with()...)},
		{"rzloss/k=4", steiner.NewRZLoss(with(steiner.WithMaxComponentSize(4))...)},
	}
	for _, win := range []steiner.WinCalculation{steiner.WinAbsolute, steiner.WinRelative} {
		for _, gen := range []steiner.TripleGeneration{steiner.GenerationExhaustive, steiner.GenerationVoronoi, steiner.GenerationOnDemand} {
			for _, red := range []steiner.TripleReducing{steiner.ReducingOn, steiner.ReducingOff} {
				for _, save := range []steiner.SaveCalculation{steiner.SaveStaticTree, steiner.SaveStaticLCATree, steiner.SaveDynamicLCATree, steiner.SaveHybrid} {
					for _, pass := range []steiner.Pass{steiner.PassOne, steiner.PassMulti} {
						out = append(out, namedSolver{
							name: fmt.Sprintf("zelikovsky/%s/%s/%s/%s/%s", win, gen, red, save, pass),
							s: steiner.NewZelikovsky(with(
								steiner.WithWinCalculation(win),
								steiner.WithTripleGeneration(gen),
								steiner.WithTripleReducing(red),
								steiner.WithSaveCalculation(save),
								steiner.WithPass(pass),
							)...),
						})
					}
				}
			}
		}
	}

	return out
}

// pathGraph builds the path 0-1-...-(n-1) with unit weights.
func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(1)},
		builder.Path(n),
	)
	require.NoError(t, err)

	return g
}

// randomInstance builds a connected random graph over n vertices ("0".."n-1")
// and picks nt terminals, all seeded.
func randomInstance(t *testing.T, seed int64, n, nt int, p float64) (*core.Graph, []string) {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 9)},
		builder.Path(n),
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(seed))
	perm := r.Perm(n)[:nt]
	terms := make([]string, nt)
	for i, v := range perm {
		terms[i] = strconv.Itoa(v)
	}

	return g, terms
}

// bruteForce returns the optimum Steiner tree weight as the lightest
// spanning tree of the subgraph induced by the terminals plus any subset
// of the other vertices.
func bruteForce(t *testing.T, g *core.Graph, terminals []string) int64 {
	t.Helper()
	isTerm := make(map[string]bool, len(terminals))
	for _, v := range terminals {
		isTerm[v] = true
	}
	var others []string
	for _, v := range g.Vertices() {
		if !isTerm[v] {
			others = append(others, v)
		}
	}
	require.LessOrEqual(t, len(others), 16, "instance too large for brute force")

	best := int64(-1)
	for mask := 0; mask < 1<<len(others); mask++ {
		keep := make(map[string]bool, len(g.Vertices()))
		for _, v := range terminals {
			keep[v] = true
		}
		for i, v := range others {
			if mask&(1<<i) != 0 {
				keep[v] = true
			}
		}
		_, w, err := prim_kruskal.Kruskal(core.InducedSubgraph(g, keep))
		if err != nil {
			continue
		}
		if best < 0 || w < best {
			best = w
		}
	}
	require.GreaterOrEqual(t, best, int64(0))

	return best
}

// terminalMST is the weight of the minimum spanning tree of the shortest
// path distance graph on the terminals.
func terminalMST(t *testing.T, g *core.Graph, terminals []string) int64 {
	t.Helper()
	dg := core.NewGraph(core.WithWeighted())
	for i, u := range terminals {
		require.NoError(t, dg.AddVertex(u))
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(u))
		require.NoError(t, err)
		for _, v := range terminals[i+1:] {
			_, err = dg.AddEdge(u, v, dist[v])
			require.NoError(t, err)
		}
	}
	_, w, err := prim_kruskal.Kruskal(dg)
	require.NoError(t, err)

	return w
}

// requireValidTree checks the tree against the input graph: a Steiner
// tree of the terminals whose edges exist in g with the same weight, and
// whose total matches the reported weight.
func requireValidTree(t *testing.T, g *core.Graph, terminals []string, w int64, tree *core.Graph) {
	t.Helper()
	require.True(t, steiner.IsSteinerTree(tree, terminals), "not a Steiner tree")
	var sum int64
	for _, e := range tree.Edges() {
		orig, err := g.GetEdge(e.ID)
		require.NoError(t, err)
		require.Equal(t, orig.Weight, e.Weight)
		sum += e.Weight
	}
	require.Equal(t, w, sum)
}

// treeWeights is a slog.Handler that keeps the "tree" attribute of every
// record, in order. Solvers log it for the initial terminal tree and after
// each contraction.
type treeWeights struct {
	got []int64
}

func (h *treeWeights) Enabled(context.Context, slog.Level) bool { return true }

func (h *treeWeights) Handle(_ context.Context, r slog.Record) error {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == "tree" {
			h.got = append(h.got, a.Value.Int64())
		}
		return true
	})

	return nil
}

func (h *treeWeights) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *treeWeights) WithGroup(string) slog.Handler      { return h }
