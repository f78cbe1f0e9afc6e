package gridsearch

import (
	"container/heap"

	"github.com/katalvlaran/hpath/neighborhood"
	"github.com/katalvlaran/hpath/point"
)

// astarNode is one entry of A*'s open/closed set: the point, its
// g-cost/f-cost, and a back-pointer for path reconstruction. Grounded
// on la2go's geoNode (internal/game/geo/pathfinding.go), adapted from a
// 3D world-coordinate search to the 2D grid domain and from float64
// costs to point.Cost.
type astarNode struct {
	pos    point.Point
	parent point.Point
	gCost  point.Cost
	fCost  point.Cost
	index  int
}

type astarHeap []*astarNode

func (h astarHeap) Len() int            { return len(h) }
func (h astarHeap) Less(i, j int) bool  { return h[i].fCost < h[j].fCost }
func (h astarHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *astarHeap) Push(x interface{}) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *astarHeap) Pop() interface{} {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}

// AStar finds the shortest path from start to goal; it is used to
// upgrade an unresolved pathseg.PathSegment into a materialised one.
// nh.Heuristic must be an admissible lower bound of the remaining
// distance; the Manhattan/Moore reference neighborhoods satisfy this.
//
// AStar itself only reports impossibility via ErrUnreachable; whether
// that is fatal is a decision for the caller — AbstractPath's lazy
// resolution treats it as an invariant violation, since the abstract
// graph's construction already guaranteed a concrete path existed.
func AStar(
	nh neighborhood.Neighborhood,
	valid neighborhood.ValidFunc,
	stepCost neighborhood.StepCostFunc,
	start, goal point.Point,
) (point.Path, error) {
	if start == goal {
		return point.Path{Points: []point.Point{start}, Cost: 0}, nil
	}

	startNode := &astarNode{pos: start, gCost: 0, fCost: nh.Heuristic(start, goal)}

	open := &astarHeap{}
	heap.Init(open)
	heap.Push(open, startNode)

	closed := make(map[point.Point]*astarNode, 64)
	bestG := map[point.Point]point.Cost{start: 0}

	neighborBuf := make([]point.Point, 0, 8)

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)

		if _, done := closed[current.pos]; done {
			continue
		}
		closed[current.pos] = current

		if current.pos == goal {
			return reconstructAStar(closed, start, goal, current.gCost), nil
		}

		leaveCost := stepCost(current.pos)
		if leaveCost.Impassable() {
			continue
		}

		neighborBuf = nh.GetAllNeighbors(current.pos, neighborBuf[:0])
		for _, next := range neighborBuf {
			if !valid(next) {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}
			nextStep := stepCost(next)
			if nextStep.Impassable() && next != goal {
				continue
			}

			g := point.AddCost(current.gCost, leaveCost.AsCost())
			if prevBest, seen := bestG[next]; seen && prevBest <= g {
				continue
			}
			bestG[next] = g

			node := &astarNode{
				pos:    next,
				parent: current.pos,
				gCost:  g,
				fCost:  point.AddCost(g, nh.Heuristic(next, goal)),
			}
			heap.Push(open, node)
		}
	}

	return point.Path{}, ErrUnreachable
}

// reconstructAStar walks the closed set's parent chain from goal back
// to start, matching la2go's FindPath reversal step.
func reconstructAStar(closed map[point.Point]*astarNode, start, goal point.Point, cost point.Cost) point.Path {
	var points []point.Point
	cur := goal
	for {
		points = append(points, cur)
		if cur == start {
			break
		}
		cur = closed[cur].parent
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return point.Path{Points: points, Cost: cost}
}
