package container

import "testing"

func TestPriorityQueuePollsInOrder(t *testing.T) {
	pq := NewPriorityQueue[string, int](4)
	pq.Insert("c", 3)
	pq.Insert("a", 1)
	pq.Insert("b", 2)

	var order []string
	for pq.Size() > 0 {
		key, _ := pq.PollKey()
		order = append(order, key)
	}
	want := []string{"a", "b", "c"}
	for i, k := range want {
		if order[i] != k {
			t.Fatalf("expected poll order %v, got %v", want, order)
		}
	}
}

func TestPriorityQueueUpdate(t *testing.T) {
	pq := NewPriorityQueue[string, int](4)
	pq.Insert("a", 10)
	pq.Insert("b", 5)
	pq.Update("a", 10, 1)

	key, ok := pq.PollKey()
	if !ok || key != "a" {
		t.Fatalf("expected 'a' to poll first after update, got %q ok=%v", key, ok)
	}
}

func TestPriorityQueueUpdateOnMissingKeyInserts(t *testing.T) {
	pq := NewPriorityQueue[string, int](4)
	pq.Update("x", 0, 5)
	if pq.Size() != 1 {
		t.Fatalf("expected Update on an absent key to insert it, size=%d", pq.Size())
	}
}

func TestPriorityQueueEmpty(t *testing.T) {
	pq := NewPriorityQueue[int, int](1)
	if _, ok := pq.PollKey(); ok {
		t.Fatalf("expected PollKey on empty queue to report ok=false")
	}
	if _, ok := pq.PeekValue(); ok {
		t.Fatalf("expected PeekValue on empty queue to report ok=false")
	}
}
