package nodelist

import (
	"errors"

	"github.com/katalvlaran/hpath/pathseg"
	"github.com/katalvlaran/hpath/point"
)

// Sentinel errors for nodelist operations, following the
// ErrXxx = errors.New("pkg: ...") convention used throughout this module.
var (
	// ErrDuplicatePosition indicates AddNode was called for a Point that
	// already has a live node; this is a caller-contract violation.
	ErrDuplicatePosition = errors.New("nodelist: a node already exists at this position")

	// ErrNodeNotFound indicates a NodeID does not resolve to a live node,
	// either because it was never issued or because its generation is stale.
	ErrNodeNotFound = errors.New("nodelist: node not found")

	// ErrDisconnectedEdge indicates AddEdge was called with a segment
	// whose endpoints do not match the source/target node positions.
	ErrDisconnectedEdge = errors.New("nodelist: edge segment endpoints do not match node positions")
)

// NodeID is an opaque, stable handle to a Node: a generational slot key
// packing a 32-bit slot index and a 32-bit generation counter into one
// comparable value. Plain indices are insufficient because removal is
// supported and would let a stale handle alias a reused slot; NodeID
// remains valid until the owning node is removed and is never reused
// within the lifetime of any outstanding handle-carrying value, because
// removal bumps the slot's generation.
type NodeID uint64

// newNodeID packs a slot index and generation into a NodeID.
func newNodeID(index, generation uint32) NodeID {
	return NodeID(uint64(generation)<<32 | uint64(index))
}

// index extracts the slot index component.
func (id NodeID) index() uint32 { return uint32(id) }

// generation extracts the generation component.
func (id NodeID) generation() uint32 { return uint32(id >> 32) }

// Node is a vertex of the abstract graph: a stable id, its grid
// position, the cost of stepping onto that position, and the set of
// outgoing abstract edges keyed by neighbor NodeID.
//
// Invariant: for every entry (other, seg) in Edges, seg.Start() == Pos
// and seg.End() == other's Pos; the reverse node also contains a
// reciprocal entry whose segment is seg.Reversed(...) (see AddEdge).
type Node struct {
	ID       NodeID
	Pos      point.Point
	WalkCost point.Cost
	Edges    map[NodeID]pathseg.PathSegment
}
