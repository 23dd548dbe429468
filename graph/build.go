package graph

import . "github.com/chway/ch-router/container"

// InputEdge is the plain, pre-graph description of one road-network arc, as
// a caller (the CLI host, or a test) would hand it in: two node ids, a
// length, a speed class, and a direction. BuildGraph turns a slice of these
// into a LevelGraph with distance initialised to Length (the Contractor's
// prepareEdges step overwrites it with the real overlay weight before
// preprocessing starts).
type InputEdge struct {
	NodeA      int32
	NodeB      int32
	Length     int32
	SpeedClass int32
	Flags      uint8 // direction bits only (FlagForward/FlagBackward/ScBothDir); speed class is folded in by BuildGraph
}

// BuildGraph assembles a LevelGraph from nodeCount nodes and a list of input
// edges. It is the module's entire graph-construction surface: no disk
// reads, no geographic indexing — a caller that needs either builds the
// InputEdge slice itself and hands it here.
func BuildGraph(nodeCount int32, inputEdges []InputEdge) *LevelGraph {
	g := &LevelGraph{
		nodeCount: nodeCount,
		edges:     make([]edgeAttrs, 0, len(inputEdges)),
		adjOut:    make([]List[int32], nodeCount),
		adjIn:     make([]List[int32], nodeCount),
		levels:    NewArray[int16](int(nodeCount)),
	}
	for i := range g.adjOut {
		g.adjOut[i] = NewList[int32](2)
		g.adjIn[i] = NewList[int32](2)
	}
	for _, ie := range inputEdges {
		flags := EncodeSpeedClass(ie.Flags, ie.SpeedClass)
		edgeID := int32(len(g.edges))
		g.edges = append(g.edges, edgeAttrs{
			NodeA:         ie.NodeA,
			NodeB:         ie.NodeB,
			Distance:      ie.Length,
			Flags:         flags,
			OriginalEdges: 1,
			SkippedNode:   -1,
		})
		g.wireAdjacency(edgeID, ie.NodeA, ie.NodeB, flags)
	}
	return g
}
