package neighborhood

import "github.com/katalvlaran/hpath/point"

// mooreOffsets lists the eight neighbor offsets in the same
// N, NE, E, SE, S, SW, W, NW order gridgraph.GridGraph uses for Conn8.
var mooreOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Moore is a reference 8-connectivity Neighborhood: cardinal and
// diagonal steps, Chebyshev-distance heuristic.
type Moore struct{}

// NewMoore returns a Moore neighborhood.
func NewMoore() Moore { return Moore{} }

// GetAllNeighbors implements Neighborhood.
func (Moore) GetAllNeighbors(p point.Point, out []point.Point) []point.Point {
	for _, d := range mooreOffsets {
		out = append(out, p.Add(d[0], d[1]))
	}
	return out
}

// Heuristic implements Neighborhood as the Chebyshev (L∞) distance,
// admissible when diagonal and orthogonal steps share the same unit
// cost; callers charging extra for diagonal movement must supply a
// stricter custom heuristic instead.
func (Moore) Heuristic(a, b point.Point) point.Cost {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	if dx > dy {
		return point.Cost(dx)
	}
	return point.Cost(dy)
}
