package compressedpath

import (
	"testing"

	"github.com/katalvlaran/hpath/point"
	"github.com/stretchr/testify/require"
)

func samplePath() point.Path {
	return point.Path{
		Points: []point.Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}},
		Cost:   point.Cost(4),
	}
}

func TestCompressRoundTrip(t *testing.T) {
	p := samplePath()
	cp := Compress(p)

	require.Equal(t, p.Cost, cp.Cost())
	require.Equal(t, p.Len(), cp.Len())
	require.Equal(t, p.Points, cp.Decompressed())
	require.Equal(t, p.Start(), cp.Start())
	require.Equal(t, p.End(), cp.End())
}

func TestCompressGetIndividualPoints(t *testing.T) {
	p := samplePath()
	cp := Compress(p)
	for i, want := range p.Points {
		require.Equal(t, want, cp.Get(i))
	}
}

func TestReversedIsO1AndFlipsEndpoints(t *testing.T) {
	p := samplePath()
	cp := Compress(p)
	rev := cp.Reversed(point.Cost(1), point.Cost(2))

	require.Equal(t, cp.Start(), rev.End())
	require.Equal(t, cp.End(), rev.Start())
	require.Equal(t, cp.Cost()-1+2, rev.Cost())

	wantPoints := p.Reversed().Points
	require.Equal(t, wantPoints, rev.Decompressed())
}

func TestReversedRoundTrips(t *testing.T) {
	p := samplePath()
	cp := Compress(p)
	rev := cp.Reversed(point.Cost(3), point.Cost(5))
	back := rev.Reversed(point.Cost(5), point.Cost(3))

	require.Equal(t, cp.Cost(), back.Cost())
	require.Equal(t, cp.Start(), back.Start())
	require.Equal(t, cp.End(), back.End())
	require.Equal(t, cp.Decompressed(), back.Decompressed())
}

func TestCompressNegativeCoordinates(t *testing.T) {
	p := point.Path{
		Points: []point.Point{{-3, -2}, {-2, -2}, {-1, -1}},
		Cost:   point.Cost(2),
	}
	cp := Compress(p)
	require.Equal(t, p.Points, cp.Decompressed())
}

func TestCompressSinglePointPath(t *testing.T) {
	p := point.Path{Points: []point.Point{{5, 5}}, Cost: 0}
	cp := Compress(p)
	require.Equal(t, 1, cp.Len())
	require.Equal(t, p.Points, cp.Decompressed())
}
