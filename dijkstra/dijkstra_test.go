package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _, err := dijkstra.Dijkstra(g)
	assert.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(core.NewGraph(), dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrUnweightedGraph)

	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("X"))
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _ = g.AddEdge("A", "B", -5)
	_, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestDijkstra_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	assert.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

// buildTriangle: A—B(1), B—C(2), A—C(5).
func buildTriangle() *core.Graph {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	return g
}

func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(buildTriangle(), dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
}

// The reverse walk exercises undirected edges stored as From=A, To=B being
// relaxed from B.
func TestDijkstra_UndirectedFromSecondEndpoint(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(buildTriangle(), dijkstra.Source("C"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, int64(3), dist["A"])
	assert.Equal(t, []string{"C", "B", "A"}, dijkstra.PathTo(prev, "C", "A"))
	assert.Equal(t, []string{"C"}, dijkstra.PathTo(prev, "C", "C"))
}

func TestDijkstra_DirectedRespectsOrientation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "B", 1)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, dijkstra.Unreachable, dist["C"])
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := buildTriangle()
	require.NoError(t, g.AddVertex("Z"))

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Unreachable, dist["Z"])
	assert.Nil(t, dijkstra.PathTo(prev, "A", "Z"))
}

func TestDijkstra_ThresholdsAndCaps(t *testing.T) {
	g := buildTriangle()

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, dijkstra.Unreachable, dist["C"])

	dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), dist["B"])
	assert.Equal(t, dijkstra.Unreachable, dist["C"])
}

func TestDijkstra_ParallelEdgesTakeLightest(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	_, _ = g.AddEdge("A", "B", 9)
	_, _ = g.AddEdge("B", "A", 4)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithTrustedWeights())
	require.NoError(t, err)
	assert.Equal(t, int64(4), dist["B"])
}
