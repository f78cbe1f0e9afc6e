package abstractpath

import (
	"errors"

	"github.com/katalvlaran/hpath/compressedpath"
	"github.com/katalvlaran/hpath/neighborhood"
	"github.com/katalvlaran/hpath/pathseg"
	"github.com/katalvlaran/hpath/point"
)

// ErrDisconnectedSegment indicates a builder call tried to append a
// segment or path whose start does not equal the current end — a
// caller-contract violation.
var ErrDisconnectedSegment = errors.New("abstractpath: added segment is disconnected from the current end")

// AbstractPath is a lazily-resolved walk across a chain of PathSegments:
// consecutive segments join (segments[i].End() ==
// segments[i+1].Start()), and Unknown segments are upgraded to Known
// the first time traversal reaches them.
type AbstractPath struct {
	neighborhood neighborhood.Neighborhood
	totalCost    point.Cost
	segments     []pathseg.PathSegment
	end          point.Point

	segIdx int
	ptIdx  int
}

// New returns an empty AbstractPath anchored at start, ready for
// AddPathSegment/AddPath/AddNode calls.
func New(nh neighborhood.Neighborhood, start point.Point) *AbstractPath {
	return &AbstractPath{neighborhood: nh, end: start, ptIdx: 1}
}

// FromKnownPath returns an AbstractPath consisting of a single Known
// segment built from path.
func FromKnownPath(nh neighborhood.Neighborhood, path point.Path) *AbstractPath {
	seg := pathseg.NewKnown(compressedpath.Compress(path))
	return &AbstractPath{
		neighborhood: nh,
		totalCost:    path.Cost,
		segments:     []pathseg.PathSegment{seg},
		end:          path.End(),
		ptIdx:        1,
	}
}

// FromNode returns an empty AbstractPath anchored at node, equivalent
// to New but named to match the original's from_node constructor used
// when seeding a walk from an existing NodeList node rather than a raw
// start point.
func FromNode(nh neighborhood.Neighborhood, node point.Point) *AbstractPath {
	return New(nh, node)
}

// Cost returns the path's total cost. Always known; requires no
// further resolution of Unknown segments.
func (a *AbstractPath) Cost() point.Cost { return a.totalCost }

// End returns the path's current terminal point.
func (a *AbstractPath) End() point.Point { return a.end }

// AddPathSegment appends seg, which must start where the path currently
// ends (ErrDisconnectedSegment otherwise).
func (a *AbstractPath) AddPathSegment(seg pathseg.PathSegment) error {
	if seg.Start() != a.end {
		return ErrDisconnectedSegment
	}
	a.totalCost = point.AddCost(a.totalCost, seg.Cost())
	a.end = seg.End()
	a.segments = append(a.segments, seg)
	return nil
}

// AddPath appends path as a new Known segment. path must start at
// a.End(); unlike AddPathSegment, which returns ErrDisconnectedSegment,
// AddPath panics on a disconnected path, since it has no error result.
func (a *AbstractPath) AddPath(path point.Path) {
	if path.Start() != a.end {
		panic(ErrDisconnectedSegment.Error())
	}
	a.totalCost = point.AddCost(a.totalCost, path.Cost)
	a.end = path.End()
	a.segments = append(a.segments, pathseg.NewKnown(compressedpath.Compress(path)))
}

// AddNode appends an Unknown segment from the current end to node with
// the given cost and point count.
func (a *AbstractPath) AddNode(node point.Point, cost point.Cost, length int) error {
	seg, err := pathseg.NewUnknown(a.end, node, cost, length)
	if err != nil {
		return err
	}
	a.segments = append(a.segments, seg)
	a.totalCost = point.AddCost(a.totalCost, cost)
	a.end = node
	return nil
}
