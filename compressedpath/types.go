package compressedpath

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/katalvlaran/hpath/point"
)

const bytesPerPoint = 16 // two little-endian int64 coordinates

// CompressedPath is an immutable, compressed coordinate sequence plus
// the bookkeeping (cost, endpoints, length, reversed flag) needed to
// decode and reverse it without touching the underlying bytes.
type CompressedPath struct {
	bytes      []byte // s2-compressed, length-prepended payload
	cost       point.Cost
	start, end point.Point
	length     int
	reversed   bool
}

// Cost returns the path's total cost in O(1).
func (c CompressedPath) Cost() point.Cost { return c.cost }

// Len returns the number of points the path decodes to, in O(1).
func (c CompressedPath) Len() int { return c.length }

// Start returns the logical first point, honoring the reversed flag.
func (c CompressedPath) Start() point.Point {
	if c.reversed {
		return c.end
	}
	return c.start
}

// End returns the logical last point, honoring the reversed flag.
func (c CompressedPath) End() point.Point {
	if c.reversed {
		return c.start
	}
	return c.end
}

// Compress builds a CompressedPath from a concrete Path. It compresses
// the whole coordinate buffer and captures start, end, length, and cost.
func Compress(path point.Path) CompressedPath {
	raw := encodePoints(path.Points)
	compressed := s2.Encode(nil, raw)

	return CompressedPath{
		bytes:  compressed,
		cost:   path.Cost,
		start:  path.Start(),
		end:    path.End(),
		length: path.Len(),
	}
}

// Decompressed decodes the full point sequence, honoring the reversed
// flag, in O(length). A decoded copy could be cached per access pattern;
// this implementation does not, since CompressedPath instances are
// typically decoded once per AbstractPath traversal.
func (c CompressedPath) Decompressed() []point.Point {
	raw, err := s2.Decode(nil, c.bytes)
	if err != nil {
		// A corrupted stored record indicates a bug in how it was
		// written; compression failures here are not recoverable.
		panic(fmt.Sprintf("compressedpath: decompress failed: %v", err))
	}
	pts := decodePoints(raw, c.length)
	if c.reversed {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

// Get returns the point at logical index i (0 ≤ i < Len()), honoring
// the reversed flag by translating the index to length-1-i. It is
// O(decode) amortised: the whole path is decompressed on each call, so
// the stored record's memory footprint stays O(compressed size) rather
// than paying for a cached decoded copy.
func (c CompressedPath) Get(i int) point.Point {
	idx := i
	if c.reversed {
		idx = c.length - 1 - i
	}
	raw, err := s2.Decode(nil, c.bytes)
	if err != nil {
		panic(fmt.Sprintf("compressedpath: decompress failed: %v", err))
	}
	return decodePointAt(raw, idx)
}

// Reversed returns a new CompressedPath sharing the same compressed
// bytes (O(1): only the flag flips and endpoints swap) with cost
// adjusted as cost − startWalkCost + endWalkCost.
func (c CompressedPath) Reversed(startWalkCost, endWalkCost point.Cost) CompressedPath {
	return CompressedPath{
		bytes:    c.bytes,
		cost:     c.cost - startWalkCost + endWalkCost,
		start:    c.start,
		end:      c.end,
		length:   c.length,
		reversed: !c.reversed,
	}
}

func encodePoints(pts []point.Point) []byte {
	buf := make([]byte, len(pts)*bytesPerPoint)
	for i, p := range pts {
		off := i * bytesPerPoint
		binary.LittleEndian.PutUint64(buf[off:], uint64(p.X))
		binary.LittleEndian.PutUint64(buf[off+8:], uint64(p.Y))
	}
	return buf
}

func decodePoints(raw []byte, length int) []point.Point {
	pts := make([]point.Point, length)
	for i := range pts {
		pts[i] = decodePointAt(raw, i)
	}
	return pts
}

func decodePointAt(raw []byte, idx int) point.Point {
	off := idx * bytesPerPoint
	x := int(binary.LittleEndian.Uint64(raw[off:]))
	y := int(binary.LittleEndian.Uint64(raw[off+8:]))
	return point.Point{X: x, Y: y}
}
