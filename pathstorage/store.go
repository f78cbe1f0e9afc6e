package pathstorage

import (
	"sync"

	"github.com/katalvlaran/hpath/compressedpath"
	"github.com/katalvlaran/hpath/point"
)

// Store is PathStorage's exported wrapper: a deduplicated pool of
// concrete paths plus the position index that lets callers find every
// path touching a given point and in which orientation.
//
// Following original_source/src/path/path_storage.rs's
// PathStorage/PathStorageWrapper split: records live in an unexported
// generational slot pool (one slice of records); Store adds the pos_map and enforces the
// {A,B}->key dedup invariant that the raw slot pool alone cannot.
type Store struct {
	mu      sync.RWMutex
	records []record
	free    []uint32
	posMap  map[point.Point][]adjEntry
}

// New returns an empty Store.
func New() *Store {
	return &Store{posMap: make(map[point.Point][]adjEntry)}
}

// Len returns the number of stored (deduplicated) path records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if r.present {
			n++
		}
	}
	return n
}

func (s *Store) lookup(key Key) (*record, bool) {
	idx := key.index()
	if int(idx) >= len(s.records) {
		return nil, false
	}
	r := &s.records[idx]
	if !r.present || r.generation != key.generation() {
		return nil, false
	}
	return r, true
}

// findKeyBetween scans A's adjacency for an entry whose other endpoint
// is B, returning the key and the orientation needed to traverse A->B.
func (s *Store) findKeyBetween(a, b point.Point) (Key, bool, bool) {
	for _, e := range s.posMap[a] {
		r, ok := s.lookup(e.Key)
		if !ok {
			continue
		}
		other := r.path.End()
		if e.Reversed {
			other = r.path.Start()
		}
		if other == b {
			return e.Key, e.Reversed, true
		}
	}
	return 0, false, false
}

// Insert stores path, deduplicating by endpoint set: if a record
// already connects {path.Start(), path.End()} in either orientation,
// its existing Key is returned and no new bytes are stored. Otherwise a
// fresh Key is allocated and registered under both endpoints — false
// (not reversed) at the start, true at the end.
func (s *Store) Insert(path point.Path) Key {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, end := path.Start(), path.End()
	if key, _, ok := s.findKeyBetween(start, end); ok {
		return key
	}

	var index uint32
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = uint32(len(s.records))
		s.records = append(s.records, record{})
	}

	gen := s.records[index].generation
	key := newKey(index, gen)
	s.records[index] = record{
		present:    true,
		generation: gen,
		path:       compressedpath.Compress(path),
	}

	s.posMap[start] = append(s.posMap[start], adjEntry{Key: key, Reversed: false})
	s.posMap[end] = append(s.posMap[end], adjEntry{Key: key, Reversed: true})

	return key
}

// RemovePath removes the record connecting A and B. It returns
// ErrNoSuchPath if no such record exists; calling it for a pair with
// no stored path is a caller-contract violation.
func (s *Store) RemovePath(a, b point.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, _, ok := s.findKeyBetween(a, b)
	if !ok {
		return ErrNoSuchPath
	}
	s.deleteRecord(key)
	s.pruneEndpoint(a, key)
	s.pruneEndpoint(b, key)
	return nil
}

// RemoveAllPathsContainingNode removes every record with an endpoint at
// p, pruning the mirror entry at each record's other endpoint, and
// drops p's own adjacency list entirely.
func (s *Store) RemoveAllPathsContainingNode(p point.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, ok := s.posMap[p]
	if !ok {
		return ErrNoEdgesAtPoint
	}

	type pruneTarget struct {
		pos point.Point
		key Key
	}
	var toPrune []pruneTarget
	for _, e := range entries {
		r, ok := s.lookup(e.Key)
		if !ok {
			continue
		}
		other := r.path.End()
		if e.Reversed {
			other = r.path.Start()
		}
		toPrune = append(toPrune, pruneTarget{pos: other, key: e.Key})
		s.deleteRecord(e.Key)
	}

	delete(s.posMap, p)
	for _, t := range toPrune {
		s.pruneEndpoint(t.pos, t.key)
	}

	return nil
}

func (s *Store) deleteRecord(key Key) {
	idx := key.index()
	s.records[idx].present = false
	s.records[idx].path = compressedpath.CompressedPath{}
	s.records[idx].generation++
	s.free = append(s.free, idx)
}

func (s *Store) pruneEndpoint(p point.Point, key Key) {
	entries := s.posMap[p]
	filtered := entries[:0]
	for _, e := range entries {
		if e.Key != key {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == 0 {
		delete(s.posMap, p)
	} else {
		s.posMap[p] = filtered
	}
}

// GetPath returns the decoded coordinate sequence for key, reversed if
// requested, in O(length).
func (s *Store) GetPath(key Key, reversed bool) ([]point.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.lookup(key)
	if !ok {
		return nil, ErrNoSuchPath
	}
	if !reversed {
		return r.path.Decompressed(), nil
	}
	return r.path.Reversed(0, 0).Decompressed(), nil
}

// GetCost returns key's stored cost, reversed if requested. The
// reversed cost is parameterized on both endpoints' walk costs using
// exactly PathSegment.Reversed's formula (cost − startWalkCost +
// endWalkCost), rather than returning the stored cost unchanged. Pass
// the walk costs of the record's original start and end points (in
// that order) even when reversed == true; GetCost applies the reversal
// adjustment itself.
func (s *Store) GetCost(key Key, reversed bool, startWalkCost, endWalkCost point.Cost) (point.Cost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.lookup(key)
	if !ok {
		return 0, ErrNoSuchPath
	}
	if !reversed {
		return r.path.Cost(), nil
	}
	return r.path.Reversed(startWalkCost, endWalkCost).Cost(), nil
}

// GetKey returns the key connecting A and B and the orientation needed
// to traverse from A to B. Exactly one such key must exist by the
// dedup invariant Insert maintains; ErrNoSuchPath if none do.
func (s *Store) GetKey(a, b point.Point) (Key, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, reversed, ok := s.findKeyBetween(a, b)
	if !ok {
		return 0, false, ErrNoSuchPath
	}
	return key, reversed, nil
}

// GetEnd returns the terminal point of key given the orientation.
func (s *Store) GetEnd(key Key, reversed bool) (point.Point, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.lookup(key)
	if !ok {
		return point.Point{}, ErrNoSuchPath
	}
	if reversed {
		return r.path.Start(), nil
	}
	return r.path.End(), nil
}

// Edge is the exported shape of an adjacency entry returned by GetEdges:
// a (key, orientation) pair for one stored record touching a point.
type Edge struct {
	Key      Key
	Reversed bool
}

// GetEdges returns the adjacency list at p: every (key, reversed) pair
// of a stored record touching p, as a fresh copy the caller may hold
// onto past the next mutation.
func (s *Store) GetEdges(p point.Point) []Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw := s.posMap[p]
	out := make([]Edge, len(raw))
	for i, e := range raw {
		out[i] = Edge{Key: e.Key, Reversed: e.Reversed}
	}
	return out
}
