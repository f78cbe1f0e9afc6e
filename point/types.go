package point

import "fmt"

// Point is an ordered pair of grid coordinates. Two points are equal iff
// both coordinates are equal. Point is a plain comparable struct, so it
// can be used directly as a map key with no custom hashing.
type Point struct {
	X, Y int
}

// String renders the point as "x,y", matching the row/col identifier
// scheme gridgraph.GridGraph uses for its vertex IDs.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns the point translated by the given offset.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Cost is a non-negative integer distance or weight sum. Every Cost
// produced by this module's algorithms is guaranteed non-negative by
// construction; callers must never construct one from an unchecked
// signed value without going through AddCost or a validated literal.
type Cost int64

// SignedCost is the richer, signed cost type used only at the step-cost
// callback boundary (see neighborhood.StepCostFunc). A negative
// SignedCost signals that a point is impassable; Cost itself cannot
// represent that sentinel.
type SignedCost int64

// Impassable reports whether a step cost returned by a caller-supplied
// StepCostFunc marks the corresponding point as impassable.
func (c SignedCost) Impassable() bool { return c < 0 }

// AsCost converts a non-negative SignedCost to a Cost. Callers must only
// call this after checking Impassable(); it panics otherwise, the same
// way dijkstra.WithMaxDistance panics on a negative configuration value
// rather than silently coercing it.
func (c SignedCost) AsCost() Cost {
	if c < 0 {
		panic("point: AsCost called on impassable (negative) SignedCost")
	}
	return Cost(c)
}

// AddCost adds two non-negative costs, panicking on overflow. Overflow
// on a real grid-sized search indicates a caller-contract violation
// (absurd per-step weights), not a recoverable runtime condition, so it
// is treated as fatal the same way gridsearch treats heap corruption.
func AddCost(a, b Cost) Cost {
	sum := a + b
	if sum < a || sum < b {
		panic("point: Cost addition overflowed")
	}
	return sum
}
