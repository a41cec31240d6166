package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsteiner/core"
)

// buildSquare constructs the weighted square A-B-C-D-A with a diagonal A-C.
func buildSquare(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 3}, {"D", "A", 4}, {"A", "C", 5},
	} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B", 0)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 7)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 0)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestMultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges(), core.WithLoops())
	_, err := g.AddEdge("A", "B", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "A", 2)
	require.NoError(t, err)

	assert.Equal(t, 3, g.EdgeCount())
	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
	assert.Equal(t, int64(6), g.TotalWeight())
}

func TestNeighbors_UndirectedOtherEndpoint(t *testing.T) {
	g := buildSquare(t)

	edges, err := g.Neighbors("C")
	require.NoError(t, err)
	got := make([]string, 0, len(edges))
	for _, e := range edges {
		got = append(got, e.Other("C"))
	}
	assert.Equal(t, []string{"B", "D", "A"}, got)

	ids, err := g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, ids)

	_, err = g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighbors_DirectedOutgoingOnly(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("C", "A", 1)

	out, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, out)
	assert.True(t, g.HasDirectedEdges())

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestRemoveVertexAndEdge(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.RemoveVertex("A"))
	assert.False(t, g.HasVertex("A"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge("B", "A"))

	edges := g.Edges()
	require.Len(t, edges, 2)
	require.NoError(t, g.RemoveEdge(edges[0].ID))
	assert.ErrorIs(t, g.RemoveEdge(edges[0].ID), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("B", "C"))
	assert.True(t, g.HasEdge("D", "C"))
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)), int64(i))
		require.NoError(t, err)
	}
	edges := g.Edges()
	for i, e := range edges {
		assert.Equal(t, int64(i), e.Weight)
	}
}

func TestCloneAndSubgraphs(t *testing.T) {
	g := buildSquare(t)

	c := g.Clone()
	require.Equal(t, g.EdgeCount(), c.EdgeCount())
	_, err := c.AddEdge("B", "D", 9)
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 6, c.EdgeCount())

	empty := g.CloneEmpty()
	assert.Equal(t, 4, empty.VertexCount())
	assert.Zero(t, empty.EdgeCount())

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true, "C": true})
	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 3, sub.EdgeCount())
	assert.Equal(t, int64(8), sub.TotalWeight())

	edges := g.Edges()
	es, err := core.EdgeSubgraph(g, []string{edges[0].ID, edges[2].ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, es.Vertices())
	got, err := es.GetEdge(edges[2].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Weight)

	_, err = core.EdgeSubgraph(g, []string{"nope"})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}
