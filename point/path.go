package point

// Path is a concrete, ordered sequence of grid points together with its
// total cost. It is the common currency between gridsearch (which
// produces Paths), pathseg/compressedpath (which store them), and
// abstractpath (which stitches them back together).
type Path struct {
	Points []Point
	Cost   Cost
}

// Start returns the first point of the path. Callers must ensure the
// path is non-empty; an empty Path is a caller-contract violation
// everywhere in this module (see pathseg's length≥2 invariant).
func (p Path) Start() Point { return p.Points[0] }

// End returns the last point of the path.
func (p Path) End() Point { return p.Points[len(p.Points)-1] }

// Len returns the number of points on the path.
func (p Path) Len() int { return len(p.Points) }

// Reversed returns a new Path with the point order reversed and the
// cost left untouched; callers needing the walk-cost-adjusted reversed
// cost (pathseg.PathSegment.Reversed semantics) must apply that
// adjustment themselves — Path itself carries no notion of walk cost.
func (p Path) Reversed() Path {
	rev := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		rev[len(p.Points)-1-i] = pt
	}
	return Path{Points: rev, Cost: p.Cost}
}

// Clone returns a deep copy of the path's point slice so callers may
// mutate the result without aliasing the original.
func (p Path) Clone() Path {
	out := make([]Point, len(p.Points))
	copy(out, p.Points)
	return Path{Points: out, Cost: p.Cost}
}
