// Package nodelist implements NodeList: the slot-pool set of
// abstract-graph nodes, indexed both by stable NodeID handle and by
// grid Point, with adjacency stored as per-node PathSegment maps.
//
// Handle stability is maintained by a slot pool with generational keys:
// a key packs (slot index, generation), and removing a slot bumps its
// generation so any NodeID issued before the removal compares unequal
// to whatever gets allocated into that slot next. The Rust original
// (original_source/src/graph/node_list.rs) reuses the lowest free slot
// on removal but never versions it, leaving a stale NodeID able to
// alias a newly-added node; this implementation adds the generation
// counter to close that hole.
//
// Cyclic adjacency is modelled arena-plus-index, never by direct
// ownership: NodeList owns every Node; neighbours refer to each other
// only by NodeID, so no Go value ever embeds another Node by pointer in
// a cycle.
package nodelist
