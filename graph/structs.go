package graph

// Node is the per-node payload carried by LevelGraph. The core only needs a
// contraction level per node (see LevelGraph.GetLevel); it carries no
// geometry — geographic location indexing is an external collaborator's
// concern (spec §1/§6), not this package's.
type Node struct{}

// Edge names the two endpoints of a graph arc. LevelGraph does not store
// Edge values: it keeps the endpoints together with the mutable attributes
// (distance/flags/originalEdges/skippedNode) in one edgeAttrs row per edge id
// so that original edges and shortcuts share one representation, matching the EdgeSkipIterator contract in the GraphHopper
// source this package is modelled on (distance/flags/skippedNode/
// originalEdges are all mutable through the same iterator, for both original
// and shortcut edges).
type Edge struct {
	NodeA int32
	NodeB int32
}

// EdgeRef is the lightweight handle ForAdjacentEdges hands to its callback:
// the edge id plus the node on the other end of the traversal. It carries no
// behaviour of its own; IExplorer.GetEdgeWeight/GetOtherNode take it as a
// plain key, keeping iteration (read-only, stateless per callback) separate
// from mutation (done through EdgeHandle).
type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}

// EdgeHandle is the mutable view of one edge (original or shortcut),
// returned by LevelGraph.Shortcut and obtainable for any edge id via
// LevelGraph.EdgeHandle. It is the write-through counterpart to EdgeRef.
type EdgeHandle struct {
	g      *LevelGraph
	edgeID int32
}

func (self EdgeHandle) EdgeID() int32 {
	return self.edgeID
}
func (self EdgeHandle) Distance() int32 {
	return self.g.edges[self.edgeID].Distance
}
func (self EdgeHandle) SetDistance(d int32) {
	self.g.edges[self.edgeID].Distance = d
}
func (self EdgeHandle) Flags() uint8 {
	return self.g.edges[self.edgeID].Flags
}
func (self EdgeHandle) SetFlags(f uint8) {
	self.g.edges[self.edgeID].Flags = f
}
func (self EdgeHandle) OriginalEdges() int32 {
	return self.g.edges[self.edgeID].OriginalEdges
}
func (self EdgeHandle) SetOriginalEdges(n int32) {
	self.g.edges[self.edgeID].OriginalEdges = n
}
func (self EdgeHandle) SkippedNode() int32 {
	return self.g.edges[self.edgeID].SkippedNode
}
func (self EdgeHandle) SetSkippedNode(n int32) {
	self.g.edges[self.edgeID].SkippedNode = n
}
func (self EdgeHandle) NodeA() int32 {
	return self.g.edges[self.edgeID].NodeA
}
func (self EdgeHandle) NodeB() int32 {
	return self.g.edges[self.edgeID].NodeB
}

// edgeAttrs is the mutable attribute row for one edge id, shared by original
// edges and shortcuts alike.
type edgeAttrs struct {
	NodeA         int32
	NodeB         int32
	Distance      int32
	Flags         uint8
	OriginalEdges int32
	SkippedNode   int32
}
