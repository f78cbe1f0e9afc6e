package gridsearch

import "github.com/katalvlaran/hpath/point"

// pointItem pairs a grid point with its tentative cost from the search
// origin. seq breaks ties by insertion order so that equal-cost entries
// resolve deterministically within a single process run.
type pointItem struct {
	pos  point.Point
	cost point.Cost
	seq  uint64
}

// pointPQ is a min-heap of *pointItem ordered by (cost, seq) ascending,
// following dijkstra.nodePQ's lazy-decrease-key convention: stale
// entries are pushed over rather than mutated in place and are skipped
// on pop once a point has been finalized.
type pointPQ []*pointItem

func (pq pointPQ) Len() int { return len(pq) }

func (pq pointPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].seq < pq[j].seq
}

func (pq pointPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pointPQ) Push(x interface{}) { *pq = append(*pq, x.(*pointItem)) }

func (pq *pointPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
