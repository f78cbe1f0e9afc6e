package neighborhood

import "github.com/katalvlaran/hpath/point"

// Neighborhood is the collaborator the core search primitives consume:
// it knows how to enumerate a point's grid neighbors and how to
// estimate the remaining distance between two points.
type Neighborhood interface {
	// GetAllNeighbors appends every grid neighbor of p to out and
	// returns the (possibly reallocated) slice. Callers performing many
	// lookups should reuse out[:0] across calls to avoid churn, the
	// same allocation-reuse discipline gridgraph.GridGraph applies via
	// its precomputed neighborOffsets.
	GetAllNeighbors(p point.Point, out []point.Point) []point.Point

	// Heuristic returns an admissible (never overestimating) lower
	// bound on the remaining cost from a to b. Required by gridsearch.AStar.
	Heuristic(a, b point.Point) point.Cost
}

// ValidFunc reports whether a point lies on the board at all. It is
// distinct from a step-cost check: an invalid point is outside the grid
// entirely, whereas a negative step cost marks an in-bounds but
// impassable point.
type ValidFunc func(p point.Point) bool

// StepCostFunc returns the cost of leaving p; a negative value marks p
// impassable. Goals are exempt from this impassability rule on arrival
// — see gridsearch.MultiGoalDijkstra.
type StepCostFunc func(p point.Point) point.SignedCost
