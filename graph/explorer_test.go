package graph

import "testing"

func TestAdjacentUpwardsFiltersByLevel(t *testing.T) {
	g := BuildGraph(3, []InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1, Flags: ScBothDir},
		{NodeA: 1, NodeB: 2, Length: 1, Flags: ScBothDir},
	})
	g.SetLevel(0, 1)
	g.SetLevel(1, 2)
	g.SetLevel(2, 3)

	var seen []int32
	g.ForAdjacentEdges(1, FORWARD, ADJACENT_UPWARDS, func(ref EdgeRef) bool {
		seen = append(seen, ref.OtherID)
		return true
	})
	if len(seen) != 1 || seen[0] != 2 {
		t.Fatalf("expected upward relaxation from node 1 (level 2) to reach only node 2 (level 3), got %v", seen)
	}
}

func TestAdjacentEdgesExcludesShortcuts(t *testing.T) {
	g := BuildGraph(3, []InputEdge{
		{NodeA: 0, NodeB: 1, Length: 1, Flags: ScBothDir},
		{NodeA: 1, NodeB: 2, Length: 1, Flags: ScBothDir},
	})
	g.Shortcut(0, 2, 2, ScBothDir, 1, 2)

	var count int
	g.ForAdjacentEdges(0, FORWARD, ADJACENT_EDGES, func(ref EdgeRef) bool {
		count++
		return true
	})
	if count != 1 {
		t.Fatalf("expected 1 original edge from node 0, got %d", count)
	}

	count = 0
	g.ForAdjacentEdges(0, FORWARD, ADJACENT_SHORTCUTS, func(ref EdgeRef) bool {
		count++
		return true
	})
	if count != 1 {
		t.Fatalf("expected 1 shortcut edge from node 0, got %d", count)
	}
}
