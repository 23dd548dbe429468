package query

import (
	"testing"

	"github.com/chway/ch-router/graph"
	"github.com/chway/ch-router/preproc"
	"github.com/chway/ch-router/weighting"
)

func buildChain(n int32) *graph.LevelGraph {
	edges := make([]graph.InputEdge, 0, n-1)
	for i := int32(0); i < n-1; i++ {
		edges = append(edges, graph.InputEdge{NodeA: i, NodeB: i + 1, Length: 1, Flags: graph.ScBothDir})
	}
	return graph.BuildGraph(n, edges)
}

func TestRouteOnSingleEdge(t *testing.T) {
	g := graph.BuildGraph(2, []graph.InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1, Flags: graph.ScBothDir},
	})
	w := weighting.NewShortestWeighting()
	c := preproc.NewContractor(g, w, nil)
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.GetLevel(0) == g.GetLevel(1) {
		t.Fatalf("expected two nodes to get distinct levels, both got %d", g.GetLevel(0))
	}

	q := NewCHQuery(g, w)
	res := q.Route(0, 1)
	if !res.Found {
		t.Fatalf("expected a path to be found")
	}
	if res.Weight != 1 {
		t.Fatalf("expected weight 1, got %d", res.Weight)
	}
	if len(res.Nodes) != 2 || res.Nodes[0] != 0 || res.Nodes[1] != 1 {
		t.Fatalf("expected path [0 1], got %v", res.Nodes)
	}
}

func TestRouteOnTriangleWithoutWitness(t *testing.T) {
	g := graph.BuildGraph(3, []graph.InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1, Flags: graph.ScOneDir},
		{NodeA: 1, NodeB: 2, Length: 1, Flags: graph.ScOneDir},
		{NodeA: 0, NodeB: 2, Length: 5, Flags: graph.ScOneDir},
	})
	w := weighting.NewShortestWeighting()
	c := preproc.NewContractor(g, w, nil)
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := NewCHQuery(g, w)
	res := q.Route(0, 2)
	if !res.Found {
		t.Fatalf("expected a path to be found")
	}
	if res.Weight != 2 {
		t.Fatalf("expected weight 2 (via the two-hop path 0->1->2, not the direct length-5 edge), got %d", res.Weight)
	}
	want := []int32{0, 1, 2}
	if len(res.Nodes) != len(want) {
		t.Fatalf("expected unrolled path %v, got %v", want, res.Nodes)
	}
	for i, n := range want {
		if res.Nodes[i] != n {
			t.Fatalf("expected unrolled path %v, got %v", want, res.Nodes)
		}
	}
}

func TestRouteAcrossChainUnrollsEveryShortcut(t *testing.T) {
	g := buildChain(5)
	w := weighting.NewShortestWeighting()
	c := preproc.NewContractor(g, w, nil)
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := NewCHQuery(g, w)
	res := q.Route(0, 4)
	if !res.Found {
		t.Fatalf("expected a path to be found")
	}
	if res.Weight != 4 {
		t.Fatalf("expected weight 4, got %d", res.Weight)
	}
	want := []int32{0, 1, 2, 3, 4}
	if len(res.Nodes) != len(want) {
		t.Fatalf("expected full unrolled chain %v, got %v", want, res.Nodes)
	}
	for i, n := range want {
		if res.Nodes[i] != n {
			t.Fatalf("expected full unrolled chain %v, got %v", want, res.Nodes)
		}
	}
}

func TestRouteSameSourceAndTarget(t *testing.T) {
	g := buildChain(3)
	w := weighting.NewShortestWeighting()
	c := preproc.NewContractor(g, w, nil)
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := NewCHQuery(g, w)
	res := q.Route(1, 1)
	if !res.Found || res.Weight != 0 || len(res.Nodes) != 1 || res.Nodes[0] != 1 {
		t.Fatalf("expected trivial zero-weight single-node path, got %+v", res)
	}
}

func TestRouteOnUncontractedGraphFindsNothing(t *testing.T) {
	g := graph.BuildGraph(2, []graph.InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1, Flags: graph.ScBothDir},
	})
	w := weighting.NewShortestWeighting()
	q := NewCHQuery(g, w)
	res := q.Route(0, 1)
	if res.Found {
		t.Fatalf("expected no path on a graph that was never contracted (every node at level 0, no upward edges), got %+v", res)
	}
}

func TestSetWeightingIsRejected(t *testing.T) {
	g := buildChain(2)
	w := weighting.NewShortestWeighting()
	q := NewCHQuery(g, w)
	if err := q.SetWeighting(weighting.NewFastestWeighting()); err != ErrUnsupportedReconfiguration {
		t.Fatalf("expected ErrUnsupportedReconfiguration, got %v", err)
	}
}

// bruteForceDijkstra is a plain, non-CH Dijkstra over the original edges
// only, used to check CHQuery.Route's weight against ground truth on graphs
// too irregular to hand-verify.
func bruteForceDijkstra(g *graph.LevelGraph, w weighting.WeightCalc, source, target int32) (int32, bool) {
	explorer := g.GetGraphExplorer()
	n := g.NodeCount()
	const inf = int32(1 << 30)
	dist := make([]int32, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[source] = 0

	for {
		u := int32(-1)
		best := inf
		for i := int32(0); i < n; i++ {
			if !visited[i] && dist[i] < best {
				best = dist[i]
				u = i
			}
		}
		if u < 0 {
			break
		}
		if u == target {
			break
		}
		visited[u] = true
		g.ForAdjacentEdges(u, graph.FORWARD, graph.ADJACENT_EDGES, func(ref graph.EdgeRef) bool {
			cand := dist[u] + explorer.GetEdgeWeight(ref)
			if cand < dist[ref.OtherID] {
				dist[ref.OtherID] = cand
			}
			return true
		})
	}
	if dist[target] >= inf {
		return 0, false
	}
	return dist[target], true
}

func TestRouteMatchesBruteForceDijkstra(t *testing.T) {
	edges := []graph.InputEdge{
		{NodeA: 0, NodeB: 1, Length: 4, Flags: graph.ScBothDir},
		{NodeA: 0, NodeB: 2, Length: 1, Flags: graph.ScBothDir},
		{NodeA: 2, NodeB: 1, Length: 1, Flags: graph.ScBothDir},
		{NodeA: 1, NodeB: 3, Length: 1, Flags: graph.ScBothDir},
		{NodeA: 2, NodeB: 3, Length: 7, Flags: graph.ScBothDir},
		{NodeA: 3, NodeB: 4, Length: 2, Flags: graph.ScBothDir},
		{NodeA: 2, NodeB: 4, Length: 9, Flags: graph.ScBothDir},
	}
	contracted := graph.BuildGraph(5, edges)
	plain := graph.BuildGraph(5, edges)
	w := weighting.NewShortestWeighting()

	c := preproc.NewContractor(contracted, w, nil)
	if err := c.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := NewCHQuery(contracted, w)

	for s := int32(0); s < 5; s++ {
		for tgt := int32(0); tgt < 5; tgt++ {
			if s == tgt {
				continue
			}
			want, ok := bruteForceDijkstra(plain, w, s, tgt)
			got := q.Route(s, tgt)
			if ok != got.Found {
				t.Fatalf("route(%d,%d): found mismatch, brute=%v ch=%v", s, tgt, ok, got.Found)
			}
			if ok && want != got.Weight {
				t.Fatalf("route(%d,%d): weight mismatch, brute=%d ch=%d", s, tgt, want, got.Weight)
			}
		}
	}
}
