package preproc

import (
	. "github.com/chway/ch-router/container"
	"github.com/chway/ch-router/graph"
)

// WitnessSearch is a re-usable one-to-many Dijkstra over the uncontracted
// subgraph, capped by a weight limit and stopped early once every goal has
// been settled at least once. The Contractor allocates one instance and
// calls Run once per incoming edge of the node it is contracting, matching
// the teacher's workspace-reuse pattern for its local-search helper (clear
// the heap and the scratch flags before each run instead of reallocating).
type WitnessSearch struct {
	g        *graph.LevelGraph
	explorer graph.IExplorer
	pq       PriorityQueue[int32, int32]
	dist     Flags[int32]
	visited  Flags[bool]
	isGoal   Flags[bool]
}

const unvisited int32 = -1

func NewWitnessSearch(g *graph.LevelGraph) *WitnessSearch {
	n := int32(g.NodeCount())
	return &WitnessSearch{
		g:        g,
		explorer: g.GetGraphExplorer(),
		pq:       NewPriorityQueue[int32, int32](16),
		dist:     NewFlags[int32](n, unvisited),
		visited:  NewFlags[bool](n, false),
		isGoal:   NewFlags[bool](n, false),
	}
}

// Run searches from source over the subgraph excluding skipNode, stopping as
// soon as either the next node to settle would exceed limit or every node in
// goals has been settled. Settled distances are retrievable afterwards via
// GetSettledWeight.
func (self *WitnessSearch) Run(source int32, goals []int32, limit int32, skipNode int32) {
	self.pq.Clear()
	self.dist.Reset()
	self.visited.Reset()
	self.isGoal.Reset()

	for _, goal := range goals {
		*self.isGoal.Get(goal) = true
	}
	remaining := len(goals)

	*self.dist.Get(source) = 0
	self.pq.Insert(source, 0)

	filter := NewEdgeLevelFilterSkipping(self.g, skipNode)

	for remaining > 0 {
		prio, ok := self.pq.PeekValue()
		if !ok || prio > limit {
			return
		}
		node, _ := self.pq.PollKey()
		if *self.visited.Get(node) {
			continue
		}
		*self.visited.Get(node) = true
		if *self.isGoal.Get(node) {
			remaining--
		}
		nodeDist := *self.dist.Get(node)

		filter.ForUncontracted(node, graph.FORWARD, func(ref graph.EdgeRef) bool {
			other := ref.OtherID
			if *self.visited.Get(other) {
				return true
			}
			candidate := nodeDist + self.explorer.GetEdgeWeight(ref)
			old := *self.dist.Get(other)
			if old == unvisited || candidate < old {
				*self.dist.Get(other) = candidate
				self.pq.Update(other, old, candidate)
			}
			return true
		})
	}
}

// GetSettledWeight returns the settled distance for node if it was reached
// during the last Run call.
func (self *WitnessSearch) GetSettledWeight(node int32) Optional[int32] {
	if !*self.visited.Get(node) {
		return None[int32]()
	}
	return Some(*self.dist.Get(node))
}
