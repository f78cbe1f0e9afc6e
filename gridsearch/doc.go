// Package gridsearch implements the grid search primitives the rest of
// this module builds on: a multi-goal Dijkstra that produces a forest
// of shortest paths with early termination, and an A* variant used to
// resolve an unresolved pathseg.PathSegment into a fully materialised
// one.
//
// MultiGoalDijkstra follows dijkstra.Dijkstra's structure — functional-
// options configuration, a lazy-decrease-key container/heap priority
// queue, and a pre-scan/process/reconstruct phase split. Both algorithms
// operate over neighborhood.Neighborhood instead of *core.Graph, since
// the concrete grid has no explicit edge list: neighbors and their step
// costs are computed on demand. AStar takes no options and keeps its own
// container/heap open list; its heuristic loop follows la2go's
// internal/game/geo/pathfinding.go.
package gridsearch
