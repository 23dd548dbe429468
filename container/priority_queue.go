package container

import (
	"cmp"
	"container/heap"
)

// PriorityQueue is a min-heap of (key -> priority) supporting insert, poll,
// peek and an O(log N) update given the caller-supplied old priority. It
// backs preproc's node-contraction order and witness-search frontiers.
//
// Grounded on the corpus's two heap idioms: an index-tracking array heap (for
// O(log N) decrease-key) and a container/heap wrapper exposing an Update
// method that calls heap.Fix — this type follows the latter, since the CH
// contractor's lazy-update pattern (pop, recompute, reinsert if it grew) does
// not need a decrease-key-only heap, just a generic fixup.
type PriorityQueue[K comparable, P cmp.Ordered] struct {
	items *pqItems[K, P]
	index map[K]int
}

func NewPriorityQueue[K comparable, P cmp.Ordered](capacity int) PriorityQueue[K, P] {
	items := make(pqItems[K, P], 0, capacity)
	return PriorityQueue[K, P]{
		items: &items,
		index: make(map[K]int, capacity),
	}
}

type pqEntry[K comparable, P cmp.Ordered] struct {
	key  K
	prio P
}

type pqItems[K comparable, P cmp.Ordered] []pqEntry[K, P]

func (self PriorityQueue[K, P]) Len() int {
	return len(*self.items)
}
func (self PriorityQueue[K, P]) Less(i, j int) bool {
	return (*self.items)[i].prio < (*self.items)[j].prio
}
func (self PriorityQueue[K, P]) Swap(i, j int) {
	(*self.items)[i], (*self.items)[j] = (*self.items)[j], (*self.items)[i]
	self.index[(*self.items)[i].key] = i
	self.index[(*self.items)[j].key] = j
}
func (self PriorityQueue[K, P]) Push(x any) {
	e := x.(pqEntry[K, P])
	self.index[e.key] = len(*self.items)
	*self.items = append(*self.items, e)
}
func (self PriorityQueue[K, P]) Pop() any {
	old := *self.items
	n := len(old)
	e := old[n-1]
	*self.items = old[:n-1]
	delete(self.index, e.key)
	return e
}

// Insert adds key with the given priority. O(log N).
func (self PriorityQueue[K, P]) Insert(key K, prio P) {
	heap.Push(self, pqEntry[K, P]{key: key, prio: prio})
}

// PollKey removes and returns the key with the minimum priority. O(log N).
func (self PriorityQueue[K, P]) PollKey() (K, bool) {
	if self.Len() == 0 {
		var zero K
		return zero, false
	}
	e := heap.Pop(self).(pqEntry[K, P])
	return e.key, true
}

// PeekValue returns the current minimum priority. O(1).
func (self PriorityQueue[K, P]) PeekValue() (P, bool) {
	if self.Len() == 0 {
		var zero P
		return zero, false
	}
	return (*self.items)[0].prio, true
}

// Update moves key from oldPrio to newPrio, re-establishing the heap
// invariant in O(log N). The entry is located through the internal key
// index; oldPrio is not consulted. A key not currently in the queue is
// inserted with newPrio.
func (self PriorityQueue[K, P]) Update(key K, oldPrio, newPrio P) {
	i, ok := self.index[key]
	if !ok {
		self.Insert(key, newPrio)
		return
	}
	(*self.items)[i].prio = newPrio
	heap.Fix(self, i)
}

func (self PriorityQueue[K, P]) Size() int {
	return self.Len()
}
func (self PriorityQueue[K, P]) IsEmpty() bool {
	return self.Len() == 0
}
func (self PriorityQueue[K, P]) Clear() {
	*self.items = (*self.items)[:0]
	for k := range self.index {
		delete(self.index, k)
	}
}
