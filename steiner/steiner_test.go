package steiner_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/builder"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// starGraph builds hub h with unit spokes to every leaf.
func starGraph(t *testing.T, leaves ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, leaf := range leaves {
		_, err := g.AddEdge("h", leaf, 1)
		require.NoError(t, err)
	}

	return g
}

func TestSolvers_PathWithInnerTerminal(t *testing.T) {
	g := pathGraph(t, 5)
	terms := []string{"0", "2", "4"}
	for _, ns := range allSolvers() {
		t.Run(ns.name, func(t *testing.T) {
			w, tree, err := ns.s.Call(g, terms, nil)
			if strings.HasSuffix(ns.name, "k=4") {
				require.ErrorIs(t, err, steiner.ErrComponentSize)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), w)
			requireValidTree(t, g, terms, w, tree)
		})
	}
}

func TestSolvers_StarIsContracted(t *testing.T) {
	g := starGraph(t, "a", "b", "c", "d")
	terms := []string{"a", "b", "c", "d"}
	for _, ns := range allSolvers() {
		t.Run(ns.name, func(t *testing.T) {
			w, tree, err := ns.s.Call(g, terms, nil)
			require.NoError(t, err)
			assert.Equal(t, int64(4), w)
			requireValidTree(t, g, terms, w, tree)
			assert.True(t, tree.HasVertex("h"))

			st := ns.s.Stats()
			assert.GreaterOrEqual(t, st.Contracted, int64(1))
			assert.GreaterOrEqual(t, st.Elapsed, st.CoreTime)
		})
	}
}

func TestSolvers_AllTerminalsNeedNoContraction(t *testing.T) {
	g := pathGraph(t, 4)
	terms := []string{"3", "1", "0", "2"}
	for _, ns := range allSolvers() {
		t.Run(ns.name, func(t *testing.T) {
			w, tree, err := ns.s.Call(g, terms, nil)
			require.NoError(t, err)
			assert.Equal(t, int64(3), w)
			requireValidTree(t, g, terms, w, tree)
			assert.Equal(t, relativeContractionsOnPath4(ns.name), ns.s.Stats().Contracted)
		})
	}
}

// relativeContractionsOnPath4 is the number of contractions a solver makes
// on the unit path 0-1-2-3 with every vertex a terminal. Absolute scoring
// and RZLoss make none. Relative scoring accepts any positive gain: the
// pool maximum {1,2,3} (gain 2, cost 2) goes first, after which {0,1,2}
// still wins 1/2 on the remaining unit edge. Reducing against the dynamic
// structure drops every triple sharing a zero pair with the first one, and
// onDemand has no non-terminal to center on.
func relativeContractionsOnPath4(name string) int64 {
	parts := strings.Split(name, "/")
	if parts[0] != "zelikovsky" || parts[1] != "relative" {
		return 0
	}
	gen, red, save, pass := parts[2], parts[3], parts[4], parts[5]
	switch {
	case gen == "onDemand":
		return 0
	case pass == "multiPass" && red == "on" && (save == "dynamicLCATree" || save == "hybrid"):
		return 1
	default:
		return 2
	}
}

func TestSolvers_ContractionsNeverIncreaseTreeWeight(t *testing.T) {
	rec := &treeWeights{}
	solvers := allSolvers(steiner.WithLogger(slog.New(rec)))
	var contracted int64
	for seed := int64(1); seed <= 8; seed++ {
		g, terms := randomInstance(t, seed, 13, 5, 0.25)
		mst := terminalMST(t, g, terms)
		for _, ns := range solvers {
			rec.got = nil
			_, _, err := ns.s.Call(g, terms, nil)
			require.NoError(t, err, "seed=%d %s", seed, ns.name)

			st := ns.s.Stats()
			require.Len(t, rec.got, int(st.Contracted)+1, "seed=%d %s", seed, ns.name)
			assert.Equal(t, mst, rec.got[0], "seed=%d %s: initial tree", seed, ns.name)
			for i := 1; i < len(rec.got); i++ {
				assert.LessOrEqual(t, rec.got[i], rec.got[i-1], "seed=%d %s: step %d", seed, ns.name, i)
			}
			contracted += st.Contracted
		}
	}
	assert.Positive(t, contracted)
}

// Voronoi centers are a subset of the exhaustive ones. With the default
// absolute multiPass policy that narrows the pool without making the
// result lighter. Under relative onePass a smaller pool can change the
// contraction order and occasionally end lighter, so only the default is
// pinned here.
func TestZelikovsky_VoronoiNeverBeatsExhaustive(t *testing.T) {
	// Hub m is at distance 2 from every terminal and d-a is a shortcut.
	// d comes first, so m falls in d's Voronoi region and {a,b,c} loses
	// its only profitable center.
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"m", "a", 2}, {"m", "b", 2}, {"m", "c", 2}, {"m", "d", 2}, {"a", "d", 1},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	terms := []string{"d", "a", "b", "c"}

	exhaustive := steiner.NewZelikovsky(steiner.WithTripleGeneration(steiner.GenerationExhaustive))
	we, te, err := exhaustive.Call(g, terms, nil)
	require.NoError(t, err)
	requireValidTree(t, g, terms, we, te)

	voronoi := steiner.NewZelikovsky(steiner.WithTripleGeneration(steiner.GenerationVoronoi))
	wv, tv, err := voronoi.Call(g, terms, nil)
	require.NoError(t, err)
	requireValidTree(t, g, terms, wv, tv)

	assert.GreaterOrEqual(t, wv, we)
	assert.Equal(t, int64(7), we)
	assert.Equal(t, int64(2), exhaustive.Stats().Generated)
	assert.Equal(t, int64(1), voronoi.Stats().Generated)
	assert.Equal(t, int64(1), exhaustive.Stats().Contracted)
	assert.Equal(t, int64(1), voronoi.Stats().Contracted)
	assert.True(t, tv.HasVertex("m"))
}

func TestSolvers_RandomInstancesAgainstBruteForce(t *testing.T) {
	solvers := allSolvers()
	for seed := int64(1); seed <= 6; seed++ {
		g, terms := randomInstance(t, seed, 13, 5, 0.25)
		opt := bruteForce(t, g, terms)
		bound := terminalMST(t, g, terms)
		for _, ns := range solvers {
			w, tree, err := ns.s.Call(g, terms, nil)
			require.NoError(t, err, "seed=%d %s", seed, ns.name)
			requireValidTree(t, g, terms, w, tree)
			assert.GreaterOrEqual(t, w, opt, "seed=%d %s", seed, ns.name)
			assert.LessOrEqual(t, w, bound, "seed=%d %s", seed, ns.name)
			assert.LessOrEqual(t, w, 2*opt, "seed=%d %s", seed, ns.name)
		}
	}
}

func TestSolvers_Deterministic(t *testing.T) {
	g, terms := randomInstance(t, 11, 30, 9, 0.15)
	for _, ns := range []namedSolver{
		{"rzloss", steiner.NewRZLoss(steiner.WithMaxComponentSize(4))},
		{"zelikovsky", steiner.NewZelikovsky()},
		{"zelikovsky/onDemand", steiner.NewZelikovsky(steiner.WithTripleGeneration(steiner.GenerationOnDemand))},
	} {
		t.Run(ns.name, func(t *testing.T) {
			w1, t1, err := ns.s.Call(g, terms, nil)
			require.NoError(t, err)
			w2, t2, err := ns.s.Call(g, terms, nil)
			require.NoError(t, err)
			assert.Equal(t, w1, w2)
			assert.Equal(t, t1.Edges(), t2.Edges())
		})
	}
}

func TestSolvers_GridInstance(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithUniformWeight(1, 5)},
		builder.Grid(4, 4),
	)
	require.NoError(t, err)
	vs := g.Vertices()
	terms := []string{vs[0], vs[3], vs[12], vs[15], vs[6]}
	opt := bruteForce(t, g, terms)
	for _, ns := range allSolvers() {
		w, tree, err := ns.s.Call(g, terms, nil)
		require.NoError(t, err, ns.name)
		requireValidTree(t, g, terms, w, tree)
		assert.GreaterOrEqual(t, w, opt, ns.name)
		assert.LessOrEqual(t, w, 2*opt, ns.name)
	}
}

func TestSolvers_TinyTimeLimitStillReturnsATree(t *testing.T) {
	g, terms := randomInstance(t, 4, 40, 10, 0.1)
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	for _, ns := range []namedSolver{
		{"rzloss", steiner.NewRZLoss(steiner.WithTimeLimit(time.Nanosecond), steiner.WithLogger(log))},
		{"zelikovsky", steiner.NewZelikovsky(steiner.WithTimeLimit(time.Nanosecond), steiner.WithLogger(log))},
		{"zelikovsky/onDemand", steiner.NewZelikovsky(
			steiner.WithTimeLimit(time.Nanosecond),
			steiner.WithTripleGeneration(steiner.GenerationOnDemand),
			steiner.WithLogger(log))},
	} {
		t.Run(ns.name, func(t *testing.T) {
			buf.Reset()
			w, tree, err := ns.s.Call(g, terms, nil)
			require.NoError(t, err)
			requireValidTree(t, g, terms, w, tree)
			assert.LessOrEqual(t, w, terminalMST(t, g, terms))
			assert.Contains(t, buf.String(), "time budget exhausted")
		})
	}
}

func TestZelikovsky_FewTerminals(t *testing.T) {
	g := pathGraph(t, 4)
	z := steiner.NewZelikovsky()

	w, tree, err := z.Call(g, []string{"2"}, nil)
	require.NoError(t, err)
	assert.Zero(t, w)
	assert.Equal(t, []string{"2"}, tree.Vertices())
	assert.True(t, steiner.IsSteinerTree(tree, []string{"2"}))

	w, tree, err = z.Call(g, []string{"0", "3"}, map[string]bool{"0": true, "3": true, "1": false})
	require.NoError(t, err)
	assert.Equal(t, int64(3), w)
	requireValidTree(t, g, []string{"0", "3"}, w, tree)
	assert.Zero(t, z.Stats().Contracted)
}

func TestRZLoss_ComponentSizeExceedsTerminals(t *testing.T) {
	g := pathGraph(t, 4)
	_, _, err := steiner.NewRZLoss(steiner.WithMaxComponentSize(4)).Call(g, []string{"0", "1", "2"}, nil)
	assert.ErrorIs(t, err, steiner.ErrComponentSize)
	_, _, err = steiner.NewRZLoss().Call(g, []string{"0"}, nil)
	assert.ErrorIs(t, err, steiner.ErrComponentSize)
}

func TestSolvers_StatsAreReset(t *testing.T) {
	z := steiner.NewZelikovsky()
	_, _, err := z.Call(starGraph(t, "a", "b", "c"), []string{"a", "b", "c"}, nil)
	require.NoError(t, err)
	require.Positive(t, z.Stats().Contracted)
	require.Positive(t, z.Stats().Generated)

	_, _, err = z.Call(pathGraph(t, 4), []string{"0", "1", "2", "3"}, nil)
	require.NoError(t, err)
	assert.Zero(t, z.Stats().Contracted)
	assert.Zero(t, z.Stats().Generated)
}

func TestSolvers_InputErrors(t *testing.T) {
	path := pathGraph(t, 4)
	directed := core.NewGraph(core.WithWeighted(), core.WithDirected(true))
	_, _ = directed.AddEdge("0", "1", 1)
	unweighted := core.NewGraph()
	_, _ = unweighted.AddEdge("0", "1", 0)
	negative := core.NewGraph(core.WithWeighted())
	_, _ = negative.AddEdge("0", "1", 1)
	_, _ = negative.AddEdge("1", "2", -1)
	split := core.NewGraph(core.WithWeighted())
	_, _ = split.AddEdge("0", "1", 1)
	_, _ = split.AddEdge("2", "3", 1)

	all := []string{"0", "1", "2"}
	cases := []struct {
		name  string
		g     *core.Graph
		terms []string
		flags map[string]bool
		want  error
	}{
		{"nil graph", nil, all, nil, steiner.ErrNilGraph},
		{"directed", directed, []string{"0", "1", "0"}, nil, steiner.ErrInvalidGraph},
		{"unweighted", unweighted, all, nil, steiner.ErrInvalidGraph},
		{"negative weight", negative, all, nil, steiner.ErrNegativeWeight},
		{"no terminals", path, []string{}, nil, steiner.ErrComponentSize},
		{"unknown terminal", path, []string{"0", "1", "9"}, nil, steiner.ErrUnknownTerminal},
		{"duplicate terminal", path, []string{"0", "1", "1"}, nil, steiner.ErrDuplicateTerminal},
		{"flag missing", path, all, map[string]bool{"0": true, "1": true}, steiner.ErrTerminalFlags},
		{"flag extra", path, all, map[string]bool{"0": true, "1": true, "2": true, "3": true}, steiner.ErrTerminalFlags},
		{"flag unknown", path, all, map[string]bool{"0": true, "1": true, "2": true, "x": true}, steiner.ErrTerminalFlags},
		{"disconnected", split, []string{"0", "1", "3"}, nil, steiner.ErrDisconnected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := steiner.NewRZLoss().Call(tc.g, tc.terms, tc.flags)
			assert.ErrorIs(t, err, tc.want, "rzloss")

			want := tc.want
			if want == steiner.ErrComponentSize {
				want = steiner.ErrNoTerminals
			}
			_, _, err = steiner.NewZelikovsky().Call(tc.g, tc.terms, tc.flags)
			assert.ErrorIs(t, err, want, "zelikovsky")
		})
	}
}
