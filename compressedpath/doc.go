// Package compressedpath implements CompressedPath: an immutable,
// shared, byte-packed sequence of grid points with an O(1) reversal
// flag and O(length) decode.
//
// Points are serialised as pairs of little-endian 64-bit integers,
// concatenated, then compressed with klauspost/compress/s2 — an
// LZ4-class block compressor. s2's block format already length-prefixes
// its output in a way s2.Decode can size from, so no extra
// framing is needed on top.
//
// Go's garbage-collected slices are already shared by reference, so no
// manual reference counting is needed here: the last holder of a
// CompressedPath value dropping it is exactly when the backing byte
// slice becomes collectible.
package compressedpath
