package nodelist

import (
	"sort"
	"sync"

	"github.com/katalvlaran/hpath/pathseg"
	"github.com/katalvlaran/hpath/point"
)

// slot is one entry of the generational pool: either a live node with
// its current generation, or an empty slot awaiting reuse.
type slot struct {
	node       *Node
	generation uint32
}

// NodeList is the slot-allocated set of abstract-graph nodes: a
// position index plus a generational slot pool, so NodeID handles
// remain valid (and distinguishable from reused slots) across
// Add/Remove churn.
//
// Like core.Graph, NodeList guards its maps with a single RWMutex;
// unlike core.Graph it needs only one lock because nodes and the
// position index are always updated together under the same operation.
type NodeList struct {
	mu       sync.RWMutex
	slots    []slot
	free     []uint32 // stack of reusable slot indices
	posIndex map[point.Point]NodeID
}

// New returns an empty NodeList.
func New() *NodeList {
	return &NodeList{posIndex: make(map[point.Point]NodeID)}
}

// Len returns the number of live nodes. Promoted from the Rust
// original's #[allow(unused)] len() to a real, tested accessor, matching
// pathstorage.Store.Len.
func (nl *NodeList) Len() int {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	return len(nl.posIndex)
}

// AddNode inserts a new node at pos with the given walk cost and
// returns its fresh NodeID. It returns ErrDuplicatePosition if a live
// node already occupies pos; callers must query IDAt first.
func (nl *NodeList) AddNode(pos point.Point, walkCost point.Cost) (NodeID, error) {
	nl.mu.Lock()
	defer nl.mu.Unlock()

	if _, exists := nl.posIndex[pos]; exists {
		return 0, ErrDuplicatePosition
	}

	var index uint32
	if n := len(nl.free); n > 0 {
		index = nl.free[n-1]
		nl.free = nl.free[:n-1]
	} else {
		index = uint32(len(nl.slots))
		nl.slots = append(nl.slots, slot{})
	}

	gen := nl.slots[index].generation
	id := newNodeID(index, gen)
	nl.slots[index].node = &Node{
		ID:       id,
		Pos:      pos,
		WalkCost: walkCost,
		Edges:    make(map[NodeID]pathseg.PathSegment),
	}
	nl.posIndex[pos] = id

	return id, nil
}

// lookup resolves a NodeID to its live *Node, or reports not-found if
// the slot is empty or the caller's generation is stale. Must be called
// under a held lock.
func (nl *NodeList) lookup(id NodeID) (*Node, bool) {
	idx := id.index()
	if int(idx) >= len(nl.slots) {
		return nil, false
	}
	s := nl.slots[idx]
	if s.node == nil || s.generation != id.generation() {
		return nil, false
	}
	return s.node, true
}

// Node returns the live node for id, or ErrNodeNotFound.
func (nl *NodeList) Node(id NodeID) (*Node, error) {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	n, ok := nl.lookup(id)
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// IDAt returns the NodeID of the live node at pos, if any.
func (nl *NodeList) IDAt(pos point.Point) (NodeID, bool) {
	nl.mu.RLock()
	defer nl.mu.RUnlock()
	id, ok := nl.posIndex[pos]
	return id, ok
}

// Keys returns every live NodeID, sorted by position (Y then X, then ID
// as a last-resort tiebreak for duplicate positions, which cannot
// happen but keeps the sort total). The Rust original iterates raw slot
// order with no ordering guarantee; this follows core.Graph.Vertices()'s
// convention of returning a deterministic, sorted order instead.
func (nl *NodeList) Keys() []NodeID {
	nl.mu.RLock()
	defer nl.mu.RUnlock()

	keys := make([]NodeID, 0, len(nl.posIndex))
	for _, id := range nl.posIndex {
		keys = append(keys, id)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := nl.lookup(keys[i])
		b, _ := nl.lookup(keys[j])
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y < b.Pos.Y
		}
		if a.Pos.X != b.Pos.X {
			return a.Pos.X < b.Pos.X
		}
		return keys[i] < keys[j]
	})
	return keys
}

// RemoveNode removes the node and every reciprocal adjacency entry in
// its neighbours, then clears the position index and bumps the slot's
// generation so any outstanding NodeID for it becomes stale.
func (nl *NodeList) RemoveNode(id NodeID) error {
	nl.mu.Lock()
	defer nl.mu.Unlock()

	n, ok := nl.lookup(id)
	if !ok {
		return ErrNodeNotFound
	}

	for neighborID := range n.Edges {
		if neighbor, ok := nl.lookup(neighborID); ok {
			delete(neighbor.Edges, id)
		}
	}

	delete(nl.posIndex, n.Pos)
	idx := id.index()
	nl.slots[idx].node = nil
	nl.slots[idx].generation++
	nl.free = append(nl.free, idx)

	return nil
}

// AddEdge installs segment under src's adjacency to target, and its
// reversal under target's adjacency back to src. segment must already
// run from src's position to target's position (ErrDisconnectedEdge
// otherwise); the reversed copy is derived via PathSegment.Reversed
// using both endpoints' walk costs, so every edge (u→v, seg) installed
// this way has a reciprocal (v→u, seg.Reversed(u.WalkCost, v.WalkCost))
// by construction.
func (nl *NodeList) AddEdge(src, target NodeID, segment pathseg.PathSegment) error {
	nl.mu.Lock()
	defer nl.mu.Unlock()

	srcNode, ok := nl.lookup(src)
	if !ok {
		return ErrNodeNotFound
	}
	targetNode, ok := nl.lookup(target)
	if !ok {
		return ErrNodeNotFound
	}
	if segment.Start() != srcNode.Pos || segment.End() != targetNode.Pos {
		return ErrDisconnectedEdge
	}

	srcNode.Edges[target] = segment
	targetNode.Edges[src] = segment.Reversed(srcNode.WalkCost, targetNode.WalkCost)

	return nil
}

// Absorb moves every node of other into nl, allocating fresh ids and
// rewriting other's internal edges to the new ids. It returns the set
// of freshly allocated NodeIDs. After Absorb, other's NodeID values are
// no longer meaningful and must not be used against either NodeList.
func (nl *NodeList) Absorb(other *NodeList) []NodeID {
	other.mu.RLock()
	oldKeysUnsorted := make([]NodeID, 0, len(other.posIndex))
	for _, id := range other.posIndex {
		oldKeysUnsorted = append(oldKeysUnsorted, id)
	}
	sort.Slice(oldKeysUnsorted, func(i, j int) bool { return oldKeysUnsorted[i] < oldKeysUnsorted[j] })

	type oldNodeSnapshot struct {
		id    NodeID
		pos   point.Point
		walk  point.Cost
		edges map[NodeID]pathseg.PathSegment
	}
	snapshots := make([]oldNodeSnapshot, 0, len(oldKeysUnsorted))
	for _, id := range oldKeysUnsorted {
		n := other.slots[id.index()].node
		snapshots = append(snapshots, oldNodeSnapshot{id: id, pos: n.Pos, walk: n.WalkCost, edges: n.Edges})
	}
	other.mu.RUnlock()

	remap := make(map[NodeID]NodeID, len(snapshots))
	fresh := make([]NodeID, 0, len(snapshots))
	for _, snap := range snapshots {
		newID, err := nl.AddNode(snap.pos, snap.walk)
		if err != nil {
			// Disjoint chunk regions are a caller contract of Absorb;
			// a collision here means the caller merged overlapping
			// regions, which has no defined behavior.
			panic("nodelist: Absorb encountered overlapping node position: " + err.Error())
		}
		remap[snap.id] = newID
		fresh = append(fresh, newID)
	}

	nl.mu.Lock()
	for _, snap := range snapshots {
		newNode := nl.slots[remap[snap.id].index()].node
		for oldNeighbor, seg := range snap.edges {
			newNode.Edges[remap[oldNeighbor]] = seg
		}
	}
	nl.mu.Unlock()

	return fresh
}
