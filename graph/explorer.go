package graph

// Adjacency selects which edge classes ForAdjacentEdges should visit and, for
// the upward/downward variants, which ones the CH query is allowed to relax
// into. It plays the role the teacher's ADJACENT_ALL/ADJACENT_UPWARDS family
// plays on IGraphExplorer, generalised with a shortcut class since this graph
// keeps originals and shortcuts in one edge store rather than two.
type Adjacency byte

const (
	// ADJACENT_EDGES visits only original (non-shortcut) edges.
	ADJACENT_EDGES Adjacency = iota
	// ADJACENT_SHORTCUTS visits only shortcut edges.
	ADJACENT_SHORTCUTS
	// ADJACENT_ALL visits both.
	ADJACENT_ALL
	// ADJACENT_UPWARDS visits edges (original or shortcut) leading to a
	// strictly higher level than the current node — the only direction a
	// CH query is allowed to relax.
	ADJACENT_UPWARDS
)

// IExplorer is the read-only edge-iteration capability handed to weighting,
// preproc and query code. It is deliberately callback-shaped rather than
// cursor-shaped: ForAdjacentEdges takes a closure instead of returning a Go
// iterator/channel, matching the "coroutine-shaped iteration" design note —
// no per-call goroutine, no hidden buffering, just a stack-local loop.
type IExplorer interface {
	ForAdjacentEdges(node int32, dir Direction, adj Adjacency, callback func(EdgeRef) bool)
	GetEdgeWeight(ref EdgeRef) int32
	GetEdgeFlags(ref EdgeRef) uint8
	GetOtherNode(node int32, ref EdgeRef) int32
	IsShortcut(ref EdgeRef) bool
}

// explorer is the concrete, stateless (per call) IExplorer over a LevelGraph.
// It is not safe for concurrent use by multiple goroutines against callbacks
// that themselves mutate the graph, matching the teacher's IGraphExplorer
// doc comment ("not thread safe, use only one instance per thread") — callers
// needing concurrency build one explorer per goroutine via
// LevelGraph.GetGraphExplorer().
type explorer struct {
	g *LevelGraph
}

func (self explorer) ForAdjacentEdges(node int32, dir Direction, adj Adjacency, callback func(EdgeRef) bool) {
	var edgeIDs []int32
	if dir == FORWARD {
		edgeIDs = self.g.adjOut[node]
	} else {
		edgeIDs = self.g.adjIn[node]
	}
	nodeLevel := self.g.levels[node]
	for _, edgeID := range edgeIDs {
		row := &self.g.edges[edgeID]
		isShortcut := row.SkippedNode >= 0
		switch adj {
		case ADJACENT_EDGES:
			if isShortcut {
				continue
			}
		case ADJACENT_SHORTCUTS:
			if !isShortcut {
				continue
			}
		case ADJACENT_UPWARDS:
			other := otherEndpoint(row, node)
			if self.g.levels[other] <= nodeLevel {
				continue
			}
		case ADJACENT_ALL:
		}
		ref := EdgeRef{EdgeID: edgeID, OtherID: otherEndpoint(row, node)}
		if !callback(ref) {
			return
		}
	}
}

func otherEndpoint(row *edgeAttrs, node int32) int32 {
	if row.NodeA == node {
		return row.NodeB
	}
	return row.NodeA
}

func (self explorer) GetEdgeWeight(ref EdgeRef) int32 {
	return self.g.edges[ref.EdgeID].Distance
}

func (self explorer) GetEdgeFlags(ref EdgeRef) uint8 {
	return self.g.edges[ref.EdgeID].Flags
}

func (self explorer) GetOtherNode(node int32, ref EdgeRef) int32 {
	return ref.OtherID
}

func (self explorer) IsShortcut(ref EdgeRef) bool {
	return self.g.edges[ref.EdgeID].SkippedNode >= 0
}
