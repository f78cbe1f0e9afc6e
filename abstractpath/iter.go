package abstractpath

import (
	"fmt"

	"github.com/katalvlaran/hpath/compressedpath"
	"github.com/katalvlaran/hpath/gridsearch"
	"github.com/katalvlaran/hpath/neighborhood"
	"github.com/katalvlaran/hpath/pathseg"
	"github.com/katalvlaran/hpath/point"
)

// Next yields the path's next grid point: the very first call after
// construction returns the *second* point of the first segment, since
// the start point is already known to the caller. It returns ok ==
// false once the path is exhausted.
//
// Next panics if the current segment is Unknown — use SafeNext, which
// can resolve it, instead.
func (a *AbstractPath) Next() (point.Point, bool) {
	if a.segIdx >= len(a.segments) {
		return point.Point{}, false
	}

	cur := a.segments[a.segIdx]
	known, ok := cur.AsKnown()
	if !ok {
		panic("abstractpath: Next called on an Unknown segment; use SafeNext instead")
	}

	return a.advanceKnown(known), true
}

// SafeNext yields the path's next grid point like Next, but resolves
// an Unknown current segment first by running gridsearch.AStar between
// its endpoints using stepCost and the path's bound neighborhood. The
// resolved segment replaces the Unknown one in place, so future
// traversal (even by a fresh caller restarting iteration) sees it as
// Known.
//
// AStar failing here is a fatal invariant violation: the abstract
// graph's construction already guaranteed a concrete path existed when
// the Unknown segment was created.
func (a *AbstractPath) SafeNext(stepCost neighborhood.StepCostFunc) (point.Point, bool) {
	if a.segIdx >= len(a.segments) {
		return point.Point{}, false
	}

	cur := a.segments[a.segIdx]
	known, ok := cur.AsKnown()
	if !ok {
		known = a.resolve(cur, stepCost)
		cur = pathseg.NewKnown(known)
		a.segments[a.segIdx] = cur
		// Paths include both start and end, but the start is the shared
		// boundary point already yielded by the previous segment (or
		// already known to the caller for the first segment).
		a.ptIdx = 1
	}

	return a.advanceKnown(known), true
}

func (a *AbstractPath) resolve(seg pathseg.PathSegment, stepCost neighborhood.StepCostFunc) compressedpath.CompressedPath {
	start, end, _, _, _ := seg.AsUnknown()
	alwaysValid := func(point.Point) bool { return true }

	resolved, err := gridsearch.AStar(a.neighborhood, alwaysValid, stepCost, start, end)
	if err != nil {
		panic(fmt.Sprintf("abstractpath: impossible path marked possible: %s -> %s: %v", start, end, err))
	}

	return compressedpath.Compress(resolved)
}

// advanceKnown reads the point at the current cursor from a Known
// segment, advances the cursor, and crosses into the next segment when
// this one is exhausted — resetting the point index to 1 to skip the
// shared boundary point already yielded as the previous segment's last
// point. This applies uniformly to every segment transition, not only
// the one following an Unknown→Known upgrade.
func (a *AbstractPath) advanceKnown(known compressedpath.CompressedPath) point.Point {
	ret := known.Get(a.ptIdx)
	a.ptIdx++
	if a.ptIdx >= known.Len() {
		a.segIdx++
		a.ptIdx = 1
	}
	return ret
}
