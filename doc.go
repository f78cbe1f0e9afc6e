// Package hpath implements the core primitives of a hierarchical path
// cache for 2D grid pathfinding: an abstract graph whose vertices are a
// sparse set of portal points and whose edges are cached concrete
// sub-paths between them, so that repeated shortest-path queries on a
// large mutable weighted grid reduce to a tiny abstract-graph search
// stitched together with on-demand concrete segments.
//
// The package itself is documentation-only; the implementation is
// organized under focused subpackages:
//
//	point/          — grid coordinates, cost types, concrete Path
//	neighborhood/   — the Neighborhood collaborator interface plus Manhattan/Moore reference implementations
//	gridsearch/     — multi-goal Dijkstra and A*, the grid search primitives
//	pathseg/        — PathSegment, the Known/Unknown tagged union
//	compressedpath/ — CompressedPath, an O(1)-reversible compressed coordinate sequence
//	pathstorage/    — PathStorage, a deduplicated slot-pool store of compressed paths
//	nodelist/       — NodeList, the generational slot-pool abstract-graph vertex set
//	abstractpath/   — AbstractPath, the lazy resumable iterator over a segment chain
//
// A higher-level planner that decides when to (re)build abstract edges
// and runs queries end to end is out of scope for this module; see
// cmd/hpathbench for a worked demonstration wiring every piece together
// over a synthetic grid.
package hpath
