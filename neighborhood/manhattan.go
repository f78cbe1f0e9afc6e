package neighborhood

import "github.com/katalvlaran/hpath/point"

// manhattanOffsets lists the four orthogonal neighbor offsets in the
// same N, E, S, W order gridgraph.GridGraph uses for Conn4.
var manhattanOffsets = [4][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// Manhattan is a reference 4-connectivity Neighborhood: N/E/S/W steps,
// Manhattan-distance heuristic. It does not bound coordinates to a grid
// size; pair it with a ValidFunc that checks board bounds.
type Manhattan struct{}

// NewManhattan returns a Manhattan neighborhood. It takes no parameters
// because, unlike gridgraph.GridGraph, it does not own grid bounds —
// bounds are the caller's ValidFunc responsibility.
func NewManhattan() Manhattan { return Manhattan{} }

// GetAllNeighbors implements Neighborhood.
func (Manhattan) GetAllNeighbors(p point.Point, out []point.Point) []point.Point {
	for _, d := range manhattanOffsets {
		out = append(out, p.Add(d[0], d[1]))
	}
	return out
}

// Heuristic implements Neighborhood as the Manhattan (L1) distance,
// admissible whenever step costs are ≥ 1 per orthogonal move.
func (Manhattan) Heuristic(a, b point.Point) point.Cost {
	return point.Cost(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
