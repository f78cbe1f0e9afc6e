package abstractpath

import (
	"testing"

	"github.com/katalvlaran/hpath/neighborhood"
	"github.com/katalvlaran/hpath/pathseg"
	"github.com/katalvlaran/hpath/point"
	"github.com/stretchr/testify/require"
)

var (
	ptA = point.Point{X: 0, Y: 0}
	ptB = point.Point{X: 1, Y: 0}
	ptC = point.Point{X: 2, Y: 0}
	ptD = point.Point{X: 3, Y: 0}
	ptE = point.Point{X: 4, Y: 0}
)

func unitStepCost(point.Point) point.SignedCost { return 1 }

// newE5Path builds a path with one Known segment [A,B,C] and one
// Unknown segment C->E whose actual shortest path is [C,D,E]. Strict
// Next must panic on the Unknown; safe iteration with a step-cost
// callback must yield B, C, D, E in order, and the Unknown segment must
// be replaced by Known afterwards.
func newE5Path(t *testing.T) *AbstractPath {
	t.Helper()
	nh := neighborhood.NewManhattan()
	known := point.Path{Points: []point.Point{ptA, ptB, ptC}, Cost: 2}
	ap := FromKnownPath(nh, known)
	require.NoError(t, ap.AddNode(ptE, 2, 3))
	return ap
}

func TestE5_StrictNextPanicsOnUnknownSegment(t *testing.T) {
	ap := newE5Path(t)

	// Exhaust the Known segment (yields B, then C) before the cursor
	// crosses into the Unknown one, where strict Next must panic.
	p1, ok := ap.Next()
	require.True(t, ok)
	require.Equal(t, ptB, p1)
	p2, ok := ap.Next()
	require.True(t, ok)
	require.Equal(t, ptC, p2)
	require.Panics(t, func() { ap.Next() })
}

func TestE5_SafeNextResolvesUnknownSegment(t *testing.T) {
	ap := newE5Path(t)

	var got []point.Point
	for {
		p, ok := ap.SafeNext(unitStepCost)
		if !ok {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []point.Point{ptB, ptC, ptD, ptE}, got)

	require.True(t, ap.segments[1].IsKnown())
}

func TestNext_StrictYieldsKnownPath(t *testing.T) {
	nh := neighborhood.NewManhattan()
	known := point.Path{Points: []point.Point{ptA, ptB, ptC, ptD}, Cost: 3}
	ap := FromKnownPath(nh, known)

	var got []point.Point
	for {
		p, ok := ap.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []point.Point{ptB, ptC, ptD}, got)
}

func TestAddPathSegment_DisconnectedIsRejected(t *testing.T) {
	nh := neighborhood.NewManhattan()
	ap := New(nh, ptA)

	bad, err := pathseg.NewUnknown(ptC, ptD, 1, 2)
	require.NoError(t, err)

	require.ErrorIs(t, ap.AddPathSegment(bad), ErrDisconnectedSegment)
}

func TestMultiSegmentBoundaryRuleAcrossTwoKnownSegments(t *testing.T) {
	// Two consecutive Known segments sharing boundary point C: the
	// traversal must never yield C twice.
	nh := neighborhood.NewManhattan()
	ap := FromKnownPath(nh, point.Path{Points: []point.Point{ptA, ptB, ptC}, Cost: 2})
	ap.AddPath(point.Path{Points: []point.Point{ptC, ptD, ptE}, Cost: 2})

	var got []point.Point
	for {
		p, ok := ap.Next()
		if !ok {
			break
		}
		got = append(got, p)
	}
	require.Equal(t, []point.Point{ptB, ptC, ptD, ptE}, got)
}

func TestCostAndEndAccessors(t *testing.T) {
	nh := neighborhood.NewManhattan()
	ap := New(nh, ptA)
	require.NoError(t, ap.AddNode(ptB, 1, 2))
	require.Equal(t, point.Cost(1), ap.Cost())
	require.Equal(t, ptB, ap.End())
}
