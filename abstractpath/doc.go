// Package abstractpath implements AbstractPath: a lazy, resumable
// iterator over a chain of PathSegments that upgrades Unknown segments
// to Known in place the first time traversal reaches them.
//
// It follows original_source/src/path_cache/abstract_path.rs's
// AbstractPath: the cursor is a (segment index, point index) pair, the
// strict Next panics on an Unknown segment, and SafeNext resolves one
// via gridsearch.AStar and rewrites the segment slice before
// continuing. The boundary rule — the first yield after construction,
// or after crossing into a new segment, is that segment's *second*
// point — is applied uniformly in both Next and SafeNext, correcting
// an inconsistency in the original where safe_next reset the point
// cursor to 0 instead of 1 after finishing an ordinary Known segment
// (see DESIGN.md).
package abstractpath
