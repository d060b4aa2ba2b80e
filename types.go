package main

// Supply records that warehouse W ships Q goods to store S.
type Supply struct {
	W, S, Q int
}

// Pattern is a set of Supply triples mined from the elite pool: assignments
// that co-occur across a large fraction of elite solutions and are worth
// fixing while re-solving a reduced instance.
type Pattern []Supply

// Move is a candidate local-search step. Exactly one of Relocate or Swap is
// populated, distinguished by Kind.
type Move struct {
	Kind        MoveKind
	S1, S2      int
	W1, W2      int
	Improvement float64
}

type MoveKind uint8

const (
	MoveRelocate MoveKind = iota
	MoveSwap
)

// moveHeap is a container/heap.Interface max-heap of Move ordered by
// decreasing Improvement, matching std::priority_queue<Move, ..., MoveComparator>.
type moveHeap []Move

func (h moveHeap) Len() int            { return len(h) }
func (h moveHeap) Less(i, j int) bool  { return h[i].Improvement > h[j].Improvement }
func (h moveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *moveHeap) Push(x interface{}) { *h = append(*h, x.(Move)) }
func (h *moveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
