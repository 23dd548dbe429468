// Package query implements the CH-aware bidirectional shortest-path query
// that consumes a preprocessed graph.LevelGraph: both frontiers only relax
// edges into strictly higher levels, the finish condition is the CH-specific
// one (not the vanilla bidirectional-Dijkstra rule), and path materialisation
// unrolls shortcut edges back to original edges. Grounded on spec.md §4.6,
// with the finish condition and path builder expressed as one shared
// bidirectional-Dijkstra core rather than by subclassing, per the teacher's
// "tagged variant beats open inheritance" design note.
package query

import (
	"math"

	. "github.com/chway/ch-router/container"
	"github.com/chway/ch-router/graph"
	"github.com/chway/ch-router/weighting"
)

const unvisited int32 = -1

// Result is the outcome of one Route call.
type Result struct {
	Found  bool
	Weight int32  // reverted, reportable total: summed physical length in metres
	Nodes  []int32 // full node sequence from source to target, shortcuts unrolled
}

// CHQuery holds the scratch Dijkstra state for one caller. It is not safe
// for concurrent Route calls against the same instance — its working arrays
// are instance-local, not goroutine-local — so concurrent callers build one
// CHQuery per goroutine against the shared, read-only LevelGraph.
type CHQuery struct {
	g          *graph.LevelGraph
	explorer   graph.IExplorer
	weightCalc weighting.WeightCalc

	distFwd, distBwd           Flags[int32]
	prevNodeFwd, prevNodeBwd   Flags[int32]
	prevEdgeFwd, prevEdgeBwd   Flags[int32]
	settledFwd, settledBwd     Flags[bool]
	pqFwd, pqBwd               PriorityQueue[int32, int32]
}

// NewCHQuery builds a query over the already-contracted graph g, using
// weightCalc only to revert edge weights back to reportable distances/
// durations when materialising a path (the hierarchy itself was already
// built under some weighting; this one must match it).
func NewCHQuery(g *graph.LevelGraph, weightCalc weighting.WeightCalc) *CHQuery {
	n := int32(g.NodeCount())
	return &CHQuery{
		g:           g,
		explorer:    g.GetGraphExplorer(),
		weightCalc:  weightCalc,
		distFwd:     NewFlags[int32](n, unvisited),
		distBwd:     NewFlags[int32](n, unvisited),
		prevNodeFwd: NewFlags[int32](n, unvisited),
		prevNodeBwd: NewFlags[int32](n, unvisited),
		prevEdgeFwd: NewFlags[int32](n, unvisited),
		prevEdgeBwd: NewFlags[int32](n, unvisited),
		settledFwd:  NewFlags[bool](n, false),
		settledBwd:  NewFlags[bool](n, false),
		pqFwd:       NewPriorityQueue[int32, int32](16),
		pqBwd:       NewPriorityQueue[int32, int32](16),
	}
}

// SetWeighting always fails: a built hierarchy is only valid under the
// weighting it was contracted with.
func (self *CHQuery) SetWeighting(weighting.WeightCalc) error {
	return ErrUnsupportedReconfiguration
}

// Route answers one shortest-path query between source and target.
func (self *CHQuery) Route(source, target int32) Result {
	self.reset()
	if source == target {
		return Result{Found: true, Weight: 0, Nodes: []int32{source}}
	}

	*self.distFwd.Get(source) = 0
	self.pqFwd.Insert(source, 0)
	*self.distBwd.Get(target) = 0
	self.pqBwd.Insert(target, 0)

	best := int32(math.MaxInt32)
	meetNode := unvisited

	for self.pqFwd.Size() > 0 || self.pqBwd.Size() > 0 {
		fwdMin, fwdOk := self.pqFwd.PeekValue()
		bwdMin, bwdOk := self.pqBwd.PeekValue()

		if self.finished(fwdOk, fwdMin, bwdOk, bwdMin, best) {
			break
		}

		if bwdOk && (!fwdOk || bwdMin < fwdMin) {
			self.step(graph.BACKWARD, self.pqBwd, self.distBwd, self.settledBwd, self.prevNodeBwd, self.prevEdgeBwd, self.distFwd, self.settledFwd, &best, &meetNode)
		} else {
			self.step(graph.FORWARD, self.pqFwd, self.distFwd, self.settledFwd, self.prevNodeFwd, self.prevEdgeFwd, self.distBwd, self.settledBwd, &best, &meetNode)
		}
	}

	if meetNode < 0 {
		return Result{Found: false}
	}
	return self.buildResult(meetNode)
}

// finished implements the CH termination rule: stop once both frontiers'
// minimum key are at least the current best meeting weight, treating an
// exhausted frontier's min as +inf so the other side alone can trigger it.
func (self *CHQuery) finished(fwdOk bool, fwdMin int32, bwdOk bool, bwdMin int32, best int32) bool {
	if !fwdOk && !bwdOk {
		return true
	}
	effFwd := fwdMin
	if !fwdOk {
		effFwd = math.MaxInt32
	}
	effBwd := bwdMin
	if !bwdOk {
		effBwd = math.MaxInt32
	}
	return effFwd >= best && effBwd >= best
}

// step pops and settles the minimum node of one frontier's queue, checks
// whether it has already been settled by the opposite frontier (a meeting
// candidate), and relaxes its strictly-upward edges in dir.
func (self *CHQuery) step(
	dir graph.Direction,
	pq PriorityQueue[int32, int32],
	dist Flags[int32],
	settled Flags[bool],
	prevNode Flags[int32],
	prevEdge Flags[int32],
	otherDist Flags[int32],
	otherSettled Flags[bool],
	best *int32,
	meetNode *int32,
) {
	node, ok := pq.PollKey()
	if !ok {
		return
	}
	if *settled.Get(node) {
		return
	}
	*settled.Get(node) = true
	nodeDist := *dist.Get(node)

	if *otherSettled.Get(node) {
		total := nodeDist + *otherDist.Get(node)
		if total < *best {
			*best = total
			*meetNode = node
		}
	}

	self.g.ForAdjacentEdges(node, dir, graph.ADJACENT_UPWARDS, func(ref graph.EdgeRef) bool {
		other := ref.OtherID
		if *settled.Get(other) {
			return true
		}
		candidate := nodeDist + self.explorer.GetEdgeWeight(ref)
		old := *dist.Get(other)
		if old == unvisited || candidate < old {
			*dist.Get(other) = candidate
			pq.Update(other, old, candidate)
			*prevNode.Get(other) = node
			*prevEdge.Get(other) = ref.EdgeID
		}
		return true
	})
}

func (self *CHQuery) reset() {
	self.distFwd.Reset()
	self.distBwd.Reset()
	self.prevNodeFwd.Reset()
	self.prevNodeBwd.Reset()
	self.prevEdgeFwd.Reset()
	self.prevEdgeBwd.Reset()
	self.settledFwd.Reset()
	self.settledBwd.Reset()
	self.pqFwd.Clear()
	self.pqBwd.Clear()
}

// chStep is one traversed edge, always oriented in the direction of travel
// from source towards target.
type chStep struct {
	from, to, edgeID int32
}

// buildResult walks both half-trees from meetNode back to source and
// forward to target, reassembles them into source->target travel order,
// unrolls every shortcut edge recursively into its original components, and
// sums the reverted weight of every original edge crossed.
func (self *CHQuery) buildResult(meetNode int32) Result {
	var fwdSteps []chStep
	n := meetNode
	for {
		prevN := *self.prevNodeFwd.Get(n)
		if prevN == unvisited {
			break
		}
		fwdSteps = append(fwdSteps, chStep{from: prevN, to: n, edgeID: *self.prevEdgeFwd.Get(n)})
		n = prevN
	}
	source := n

	var bwdSteps []chStep
	n = meetNode
	for {
		prevN := *self.prevNodeBwd.Get(n)
		if prevN == unvisited {
			break
		}
		bwdSteps = append(bwdSteps, chStep{from: n, to: prevN, edgeID: *self.prevEdgeBwd.Get(n)})
		n = prevN
	}

	var revertSum int32
	nodes := []int32{source}
	for i := len(fwdSteps) - 1; i >= 0; i-- {
		self.unrollInto(fwdSteps[i].from, fwdSteps[i].to, fwdSteps[i].edgeID, &revertSum, &nodes)
	}
	for _, s := range bwdSteps {
		self.unrollInto(s.from, s.to, s.edgeID, &revertSum, &nodes)
	}

	return Result{Found: true, Weight: revertSum, Nodes: nodes}
}

// unrollInto appends the node reached by travelling from -> to across
// edgeID into *nodes (from is assumed already the list's last element),
// recursively expanding shortcuts via their skippedNode, and accumulates
// the reverted weight of every original edge it bottoms out at.
func (self *CHQuery) unrollInto(from, to, edgeID int32, revertSum *int32, nodes *[]int32) {
	h := self.g.EdgeHandle(edgeID)
	skipped := h.SkippedNode()
	if skipped < 0 {
		*revertSum += self.weightCalc.Revert(h.Distance(), h.Flags())
		*nodes = append(*nodes, to)
		return
	}

	e1 := self.findEdgeBetween(from, skipped)
	e2 := self.findEdgeBetween(skipped, to)
	self.unrollInto(from, skipped, e1, revertSum, nodes)
	self.unrollInto(skipped, to, e2, revertSum, nodes)
}

// findEdgeBetween returns the id of an edge usable from a to b. The
// component edges a shortcut's skippedNode implies are always present in
// the graph (the shortcut-triangle invariant), so this always finds a match
// on a well-formed hierarchy.
func (self *CHQuery) findEdgeBetween(a, b int32) int32 {
	var found int32 = unvisited
	self.g.ForAdjacentEdges(a, graph.FORWARD, graph.ADJACENT_ALL, func(ref graph.EdgeRef) bool {
		if ref.OtherID == b {
			found = ref.EdgeID
			return false
		}
		return true
	})
	return found
}
