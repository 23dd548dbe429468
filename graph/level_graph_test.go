package graph

import "testing"

func TestBuildGraphWiresBothDirections(t *testing.T) {
	g := BuildGraph(2, []InputEdge{
		{NodeA: 0, NodeB: 1, Length: 10, SpeedClass: 5, Flags: ScBothDir},
	})

	out := g.GetOutgoing(0)
	if out.Length() != 1 {
		t.Fatalf("expected 1 outgoing edge from node 0, got %d", out.Length())
	}
	in := g.GetIncoming(0)
	if in.Length() != 1 {
		t.Fatalf("expected 1 incoming edge into node 0 (bidirectional), got %d", in.Length())
	}
}

func TestBuildGraphOneDirection(t *testing.T) {
	g := BuildGraph(2, []InputEdge{
		{NodeA: 0, NodeB: 1, Length: 10, SpeedClass: 5, Flags: ScOneDir},
	})

	if g.GetOutgoing(1).Length() != 0 {
		t.Fatalf("one-directional edge must not be outgoing from its target")
	}
	if g.GetIncoming(0).Length() != 0 {
		t.Fatalf("one-directional edge must not be incoming into its source")
	}
}

func TestShortcutInstallsIntoAdjacency(t *testing.T) {
	g := BuildGraph(3, []InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1, SpeedClass: 5, Flags: ScBothDir},
		{NodeA: 1, NodeB: 2, Length: 1, SpeedClass: 5, Flags: ScBothDir},
	})
	h := g.Shortcut(0, 2, 2, ScBothDir, 1, 2)

	if h.SkippedNode() != 1 {
		t.Fatalf("expected skippedNode 1, got %d", h.SkippedNode())
	}
	if h.OriginalEdges() != 2 {
		t.Fatalf("expected originalEdges 2, got %d", h.OriginalEdges())
	}
	if g.GetOutgoing(0).Length() != 2 {
		t.Fatalf("expected 2 outgoing edges from node 0 after shortcut, got %d", g.GetOutgoing(0).Length())
	}
}

func TestIncidentEdgesDedupesBothDirection(t *testing.T) {
	g := BuildGraph(2, []InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1, SpeedClass: 5, Flags: ScBothDir},
	})
	incident := g.IncidentEdges(0)
	if incident.Length() != 1 {
		t.Fatalf("expected 1 incident edge (deduped), got %d", incident.Length())
	}
}

func TestLevelRoundTrip(t *testing.T) {
	g := BuildGraph(1, nil)
	if g.GetLevel(0) != 0 {
		t.Fatalf("expected initial level 0")
	}
	g.SetLevel(0, 7)
	if g.GetLevel(0) != 7 {
		t.Fatalf("expected level 7 after SetLevel, got %d", g.GetLevel(0))
	}
}
