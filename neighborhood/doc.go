// Package neighborhood defines the Neighborhood collaborator interface
// that gridsearch and abstractpath consume to enumerate grid adjacency,
// plus two minimal reference implementations — Manhattan (4-connectivity)
// and Moore (8-connectivity).
//
// Weighted diagonals, hex grids, and jump-point neighborhoods are left
// to callers who need them; these two mirror gridgraph.Conn4/Conn8's
// offset tables closely enough that a caller migrating from gridgraph
// would recognize the shape immediately.
package neighborhood
