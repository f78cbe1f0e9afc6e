// Package pathstorage implements PathStorage: a deduplicated,
// structure-of-arrays pool of concrete paths, keyed by opaque, stable
// Keys and indexed by endpoint Point so the abstract graph can look up
// edges by position.
//
// It follows the Rust original's PathStorage / PathStorageWrapper split
// (original_source/src/path/path_storage.rs): an unexported slot pool
// holding one record per path, wrapped by an exported Store that
// maintains the position index and the {A,B}→key dedup invariant. Each
// record holds a CompressedPath, which carries the path's cost and
// endpoints; the pool is a single slice of records, not parallel
// per-field slices.
//
// GetCost is parameterized on both endpoints' walk costs and applies
// PathSegment.Reversed's own adjustment formula exactly, rather than
// returning a reversed record's forward cost unchanged (see GetCost's
// doc comment, and DESIGN.md for why).
package pathstorage
