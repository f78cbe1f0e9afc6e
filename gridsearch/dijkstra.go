package gridsearch

import (
	"container/heap"

	"github.com/katalvlaran/hpath/neighborhood"
	"github.com/katalvlaran/hpath/point"
)

// visitedEntry is Dijkstra's predecessor-table row: the best known cost
// to reach a point and the point that achieved it.
type visitedEntry struct {
	cost point.Cost
	prev point.Point
}

// MultiGoalDijkstra runs a single-source, multi-goal Dijkstra search
// over the concrete grid, following dijkstra.Dijkstra's lazy-decrease-key
// container/heap loop and the reference dijkstra_search behavior in
// original_source/src/grid/dijkstra.rs.
//
// stepCost(p) is the cost of leaving p; a negative value marks p
// impassable. valid(p) gates whether p may be entered at all. Goals are
// exempt from the leave-cost impassability rule while they remain
// unreached: a goal may be entered even if its own step cost is
// negative, matching the reference implementation's
// "get_cost(other) < 0 && !remaining_goals.contains(other)" guard.
//
// The returned map holds one entry per reached goal; unreached goals
// are simply absent, never an error.
func MultiGoalDijkstra(
	nh neighborhood.Neighborhood,
	valid neighborhood.ValidFunc,
	stepCost neighborhood.StepCostFunc,
	start point.Point,
	goals []point.Point,
	opts ...Option,
) (map[point.Point]point.Path, error) {
	if len(goals) == 0 {
		return nil, ErrNoGoals
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make(map[point.Point]point.Path, len(goals))

	if stepCost(start).Impassable() {
		return results, nil
	}

	remainingGoals := make(map[point.Point]bool, len(goals))
	for _, g := range goals {
		remainingGoals[g] = true
	}

	visited := make(map[point.Point]visitedEntry, cfg.FrontierSizeHint)
	visited[start] = visitedEntry{cost: 0, prev: start}

	pq := make(pointPQ, 0, cfg.FrontierSizeHint)
	heap.Init(&pq)

	var seq uint64
	heap.Push(&pq, &pointItem{pos: start, cost: 0, seq: seq})
	seq++

	neighborBuf := make([]point.Point, 0, 8)

search:
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*pointItem)
		current, currentCost := item.pos, item.cost

		best := visited[current]
		switch {
		case currentCost > best.cost:
			continue // stale heap entry, already finalized with a better cost
		case currentCost < best.cost:
			return nil, ErrHeapCorruption
		}

		if remainingGoals[current] {
			delete(remainingGoals, current)
			results[current] = reconstruct(visited, start, current, currentCost)
			if cfg.OnlyClosestGoal || len(remainingGoals) == 0 {
				break search
			}
		}

		leaveCost := stepCost(current)
		if leaveCost.Impassable() {
			continue
		}
		otherCost := point.AddCost(currentCost, leaveCost.AsCost())

		neighborBuf = nh.GetAllNeighbors(current, neighborBuf[:0])
		for _, other := range neighborBuf {
			if !valid(other) {
				continue
			}
			if stepCost(other).Impassable() && !remainingGoals[other] {
				continue
			}

			entry, seen := visited[other]
			needsVisit := true
			if seen {
				if entry.cost > otherCost {
					visited[other] = visitedEntry{cost: otherCost, prev: current}
				} else {
					needsVisit = false
				}
			} else {
				visited[other] = visitedEntry{cost: otherCost, prev: current}
			}

			if needsVisit {
				heap.Push(&pq, &pointItem{pos: other, cost: otherCost, seq: seq})
				seq++
			}
		}
	}

	return results, nil
}

// reconstruct walks visited's predecessor chain from goal back to
// start, then reverses it into start->goal order.
func reconstruct(visited map[point.Point]visitedEntry, start, goal point.Point, cost point.Cost) point.Path {
	steps := []point.Point{goal}
	current := goal
	for current != start {
		current = visited[current].prev
		steps = append(steps, current)
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return point.Path{Points: steps, Cost: cost}
}
