package astar

import "github.com/katalvlaran/terrapath/gridgraph"

// frontierItem is one (priority, coordinate) entry of the open list.
type frontierItem struct {
	at        gridgraph.Coordinate
	priority  float64
	heuristic float64
}

// frontier is a min-heap of *frontierItem ordered by priority, then by
// heuristic so that ties favour cells closer to the target.
// It follows the lazy-deletion policy: a relaxed cell is pushed again and
// the older entry stays behind, to be dropped when popped after its cell
// has been finalised.
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].heuristic < pq[j].heuristic
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
