package pathstorage

import (
	"errors"

	"github.com/katalvlaran/hpath/compressedpath"
	"github.com/katalvlaran/hpath/point"
)

// Sentinel errors for pathstorage operations.
var (
	// ErrNoSuchPath indicates RemovePath or GetKey was asked about an
	// (A, B) pair with no stored record connecting them; calling either
	// for a pair with nothing stored is a caller-contract violation.
	ErrNoSuchPath = errors.New("pathstorage: no path connects the given endpoints")

	// ErrNoEdgesAtPoint indicates RemoveAllPathsContainingNode was asked
	// about a Point with no recorded adjacency. (GetEdges returns an empty
	// slice for such a Point instead.)
	ErrNoEdgesAtPoint = errors.New("pathstorage: no paths reference the given point")

	// ErrAmbiguousKey indicates the {A,B}->key dedup invariant was
	// violated: a lookup found other than exactly one matching key. This
	// should never happen as long as every write goes through Insert.
	ErrAmbiguousKey = errors.New("pathstorage: endpoint pair does not resolve to exactly one key")
)

// Key is an opaque, stable handle to a stored path record, using the
// same generational slot-key encoding as nodelist.NodeID.
type Key uint64

func newKey(index, generation uint32) Key {
	return Key(uint64(generation)<<32 | uint64(index))
}

func (k Key) index() uint32      { return uint32(k) }
func (k Key) generation() uint32 { return uint32(k >> 32) }

// record is one slot of the pool: the compressed payload plus
// the bookkeeping needed to serve cost/endpoint queries without
// decoding. The Rust original's uncompressed/compressed payload split
// is an optimization reserved for a case this package never exercises;
// this implementation always stores the compressed payload.
type record struct {
	present    bool
	generation uint32
	path       compressedpath.CompressedPath
}

// adjEntry is one (key, orientation) pair in a point's adjacency list:
// reversed == false means the point is the record's start; true means end.
type adjEntry struct {
	Key      Key
	Reversed bool
}
