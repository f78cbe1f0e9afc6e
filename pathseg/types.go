package pathseg

import (
	"errors"

	"github.com/katalvlaran/hpath/compressedpath"
	"github.com/katalvlaran/hpath/point"
)

// ErrSegmentTooShort indicates a segment was constructed with length < 2.
// A segment always spans at least a start and an end point;
// length == 1 is reserved for a degenerate same-point segment and is
// forbidden here.
var ErrSegmentTooShort = errors.New("pathseg: segment length must be >= 2")

// kind discriminates the two PathSegment variants.
type kind int

const (
	kindKnown kind = iota
	kindUnknown
)

// PathSegment is a tagged union: either a
// fully materialised Known path, or an Unknown gap carrying only its
// endpoints, cost, and length.
type PathSegment struct {
	kind kind

	known compressedpath.CompressedPath

	unknownStart  point.Point
	unknownEnd    point.Point
	unknownCost   point.Cost
	unknownLength int
}

// NewKnown wraps an already-compressed path as a Known segment.
func NewKnown(cp compressedpath.CompressedPath) PathSegment {
	return PathSegment{kind: kindKnown, known: cp}
}

// NewUnknown builds an Unknown segment describing a gap between start
// and end with the given total cost and point count. It returns
// ErrSegmentTooShort if length < 2.
func NewUnknown(start, end point.Point, cost point.Cost, length int) (PathSegment, error) {
	if length < 2 {
		return PathSegment{}, ErrSegmentTooShort
	}
	return PathSegment{
		kind:          kindUnknown,
		unknownStart:  start,
		unknownEnd:    end,
		unknownCost:   cost,
		unknownLength: length,
	}, nil
}

// FromPath constructs a PathSegment from a concrete Path. If known is
// true the path is compressed into a Known segment; otherwise only its
// endpoints, cost, and length are retained as an Unknown segment. This
// mirrors the Rust original's PathSegment::new(path, known) constructor.
func FromPath(path point.Path, known bool) (PathSegment, error) {
	if known {
		return NewKnown(compressedpath.Compress(path)), nil
	}
	return NewUnknown(path.Start(), path.End(), path.Cost, path.Len())
}

// IsKnown reports whether the segment is fully materialised.
func (s PathSegment) IsKnown() bool { return s.kind == kindKnown }

// AsKnown returns the segment's CompressedPath and true if it is Known;
// otherwise it returns the zero value and false.
func (s PathSegment) AsKnown() (compressedpath.CompressedPath, bool) {
	if s.kind != kindKnown {
		return compressedpath.CompressedPath{}, false
	}
	return s.known, true
}

// AsUnknown returns the segment's gap description and true if it is
// Unknown; otherwise ok is false.
func (s PathSegment) AsUnknown() (start, end point.Point, cost point.Cost, length int, ok bool) {
	if s.kind != kindUnknown {
		return point.Point{}, point.Point{}, 0, 0, false
	}
	return s.unknownStart, s.unknownEnd, s.unknownCost, s.unknownLength, true
}

// Cost returns the segment's total cost in O(1).
func (s PathSegment) Cost() point.Cost {
	switch s.kind {
	case kindKnown:
		return s.known.Cost()
	case kindUnknown:
		return s.unknownCost
	default:
		panic("pathseg: unreachable segment kind")
	}
}

// Length returns the segment's point count in O(1).
func (s PathSegment) Length() int {
	switch s.kind {
	case kindKnown:
		return s.known.Len()
	case kindUnknown:
		return s.unknownLength
	default:
		panic("pathseg: unreachable segment kind")
	}
}

// Start returns the segment's first point in O(1).
func (s PathSegment) Start() point.Point {
	switch s.kind {
	case kindKnown:
		return s.known.Start()
	case kindUnknown:
		return s.unknownStart
	default:
		panic("pathseg: unreachable segment kind")
	}
}

// End returns the segment's last point in O(1).
func (s PathSegment) End() point.Point {
	switch s.kind {
	case kindKnown:
		return s.known.End()
	case kindUnknown:
		return s.unknownEnd
	default:
		panic("pathseg: unreachable segment kind")
	}
}

// Reversed returns a new segment with start/end swapped and the point
// order inverted (for Known segments — in O(1) via CompressedPath's own
// reversal flag). The cost is adjusted as
// cost − startWalkCost + endWalkCost, because segment cost is
// the sum of step costs of all but the last point, and reversing changes
// which endpoint is "last".
func (s PathSegment) Reversed(startWalkCost, endWalkCost point.Cost) PathSegment {
	switch s.kind {
	case kindKnown:
		return NewKnown(s.known.Reversed(startWalkCost, endWalkCost))
	case kindUnknown:
		return PathSegment{
			kind:          kindUnknown,
			unknownStart:  s.unknownEnd,
			unknownEnd:    s.unknownStart,
			unknownCost:   s.unknownCost - startWalkCost + endWalkCost,
			unknownLength: s.unknownLength,
		}
	default:
		panic("pathseg: unreachable segment kind")
	}
}
