package pathstorage

import (
	"testing"

	"github.com/katalvlaran/hpath/point"
	"github.com/stretchr/testify/require"
)

func straightPath(a, b point.Point, cost point.Cost) point.Path {
	return point.Path{Points: []point.Point{a, b}, Cost: cost}
}

func TestInsertDeduplicatesByEndpointPair(t *testing.T) {
	s := New()
	k1 := s.Insert(straightPath(point.Point{0, 0}, point.Point{3, 0}, 3))
	require.Equal(t, 1, s.Len())

	// Same endpoints, same orientation: must return the same key.
	k2 := s.Insert(straightPath(point.Point{0, 0}, point.Point{3, 0}, 3))
	require.Equal(t, k1, k2)
	require.Equal(t, 1, s.Len())

	// Same endpoints, reversed orientation: {A,B} is treated as an
	// unordered pair, so this must also dedup to the existing record.
	k3 := s.Insert(straightPath(point.Point{3, 0}, point.Point{0, 0}, 3))
	require.Equal(t, k1, k3)
	require.Equal(t, 1, s.Len())
}

func TestGetKeyAndGetPath(t *testing.T) {
	// Store a path A->B->C, query it both directions.
	s := New()
	a, mid, c := point.Point{0, 0}, point.Point{1, 0}, point.Point{2, 0}
	s.Insert(point.Path{Points: []point.Point{a, mid, c}, Cost: 2})

	key, reversed, err := s.GetKey(a, c)
	require.NoError(t, err)
	require.False(t, reversed)
	pts, err := s.GetPath(key, reversed)
	require.NoError(t, err)
	require.Equal(t, []point.Point{a, mid, c}, pts)

	key2, reversed2, err := s.GetKey(c, a)
	require.NoError(t, err)
	require.True(t, reversed2)
	require.Equal(t, key, key2)
	pts2, err := s.GetPath(key2, reversed2)
	require.NoError(t, err)
	require.Equal(t, []point.Point{c, mid, a}, pts2)
}

func TestE3_ReinsertSamePathReturnsSameKey(t *testing.T) {
	a, b, c := point.Point{0, 0}, point.Point{1, 0}, point.Point{2, 0}
	abc := point.Path{Points: []point.Point{a, b, c}, Cost: 2}

	s := New()
	k1 := s.Insert(abc)
	k2 := s.Insert(abc)
	require.Equal(t, k1, k2)

	require.Len(t, s.GetEdges(a), 1)
	require.Len(t, s.GetEdges(c), 1)
	require.Equal(t, k1, s.GetEdges(a)[0].Key)
	require.Equal(t, k1, s.GetEdges(c)[0].Key)
}

func TestE4_ReverseInsertReturnsSameKeyWithOrientation(t *testing.T) {
	a, b, c := point.Point{0, 0}, point.Point{1, 0}, point.Point{2, 0}
	abc := point.Path{Points: []point.Point{a, b, c}, Cost: 2}
	cba := point.Path{Points: []point.Point{c, b, a}, Cost: 2}

	s := New()
	k1 := s.Insert(abc)
	k2 := s.Insert(cba)
	require.Equal(t, k1, k2)

	require.Len(t, s.GetEdges(a), 1)
	require.False(t, s.GetEdges(a)[0].Reversed)
	require.Len(t, s.GetEdges(c), 1)
	require.True(t, s.GetEdges(c)[0].Reversed)
}

func TestGetKeyNoSuchPath(t *testing.T) {
	s := New()
	s.Insert(straightPath(point.Point{0, 0}, point.Point{1, 0}, 1))
	_, _, err := s.GetKey(point.Point{0, 0}, point.Point{9, 9})
	require.ErrorIs(t, err, ErrNoSuchPath)
}

func TestRemovePath(t *testing.T) {
	// Remove a stored path and confirm both endpoints forget it.
	s := New()
	a, b := point.Point{0, 0}, point.Point{5, 5}
	s.Insert(straightPath(a, b, 5))
	require.Equal(t, 1, s.Len())

	require.NoError(t, s.RemovePath(a, b))
	require.Equal(t, 0, s.Len())

	_, _, err := s.GetKey(a, b)
	require.ErrorIs(t, err, ErrNoSuchPath)
	require.ErrorIs(t, s.RemovePath(a, b), ErrNoSuchPath)
}

func TestRemoveAllPathsContainingNode(t *testing.T) {
	s := New()
	hub := point.Point{0, 0}
	leaf1 := point.Point{1, 0}
	leaf2 := point.Point{0, 1}
	s.Insert(straightPath(hub, leaf1, 1))
	s.Insert(straightPath(hub, leaf2, 1))
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.RemoveAllPathsContainingNode(hub))
	require.Equal(t, 0, s.Len())

	require.Empty(t, s.GetEdges(leaf1))
	require.Empty(t, s.GetEdges(leaf2))

	require.ErrorIs(t, s.RemoveAllPathsContainingNode(hub), ErrNoEdgesAtPoint)
}

func TestGetCost_AsymmetricWalkCost(t *testing.T) {
	// Regression test for cost-of-reversal: reversing a path whose
	// endpoints have different walk costs must adjust the
	// stored cost by (-startWalkCost + endWalkCost), exactly matching
	// pathseg.PathSegment.Reversed's formula, rather than returning the
	// unmodified forward cost.
	s := New()
	a, b := point.Point{0, 0}, point.Point{4, 0}
	const (
		baseCost  = point.Cost(4)
		aWalkCost = point.Cost(1)
		bWalkCost = point.Cost(3)
	)
	key := s.Insert(straightPath(a, b, baseCost))

	fwd, err := s.GetCost(key, false, aWalkCost, bWalkCost)
	require.NoError(t, err)
	require.Equal(t, baseCost, fwd)

	rev, err := s.GetCost(key, true, aWalkCost, bWalkCost)
	require.NoError(t, err)
	require.Equal(t, baseCost-aWalkCost+bWalkCost, rev)
	require.NotEqual(t, fwd, rev)
}

func TestGetEnd(t *testing.T) {
	s := New()
	a, b := point.Point{0, 0}, point.Point{3, 3}
	key := s.Insert(straightPath(a, b, 3))

	end, err := s.GetEnd(key, false)
	require.NoError(t, err)
	require.Equal(t, b, end)

	end2, err := s.GetEnd(key, true)
	require.NoError(t, err)
	require.Equal(t, a, end2)
}

func TestStaleKeyAfterRemoval(t *testing.T) {
	s := New()
	a, b := point.Point{0, 0}, point.Point{1, 0}
	key := s.Insert(straightPath(a, b, 1))
	require.NoError(t, s.RemovePath(a, b))

	// Slot reuse must not resurrect the old key.
	c, d := point.Point{9, 9}, point.Point{9, 10}
	s.Insert(straightPath(c, d, 1))

	_, err := s.GetPath(key, false)
	require.ErrorIs(t, err, ErrNoSuchPath)
}

func TestGetEdgesIsIndependentCopy(t *testing.T) {
	s := New()
	hub, leaf := point.Point{0, 0}, point.Point{1, 0}
	s.Insert(straightPath(hub, leaf, 1))

	edges := s.GetEdges(hub)
	require.Len(t, edges, 1)
	edges[0].Key = 9999 // mutate the caller's copy

	edges2 := s.GetEdges(hub)
	require.NotEqual(t, Key(9999), edges2[0].Key)
}
