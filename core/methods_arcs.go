// File: methods_arcs.go
// Role: Arc lifecycle & queries: AddArc/HasArc/Arcs/NeighborIDs/ArcCount.
// Determinism:
//   - Arcs(v) and NeighborIDs(v) return entries in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddArc stores the arc from→to with the given weight.
//
// Rules:
//   - Unweighted graphs require weight == 0 (else ErrBadWeight).
//   - from == to requires WithLoops (else ErrLoopNotAllowed).
//   - from is always registered as a key; to is registered too unless the
//     graph was built WithDanglingArcs.
//   - Re-adding a stored arc is a no-op (set semantics).
//   - Undirected graphs also store the mirror arc to→from.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddArc(from, to V, weight int64) error {
	if !g.cfg.weighted && weight != 0 {
		return ErrBadWeight
	}
	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	if !g.cfg.dangling || !g.cfg.directed {
		g.addVertexLocked(to)
	}
	g.linkLocked(from, to, weight)
	if !g.cfg.directed && from != to {
		g.linkLocked(to, from, weight)
	}

	return nil
}

// linkLocked appends from→to unless already present; caller holds the write lock.
func (g *Graph[V]) linkLocked(from, to V, weight int64) {
	a := Arc[V]{To: to, Weight: weight}
	if _, dup := g.seen[from][a]; dup {
		return
	}
	g.seen[from][a] = struct{}{}
	g.arcs[from] = append(g.arcs[from], a)
}

// HasArc reports whether at least one arc from→to is stored.
//
// Complexity: O(d) where d is the out-degree of from.
func (g *Graph[V]) HasArc(from, to V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, a := range g.arcs[from] {
		if a.To == to {
			return true
		}
	}

	return false
}

// Arcs returns a copy of the outgoing arcs of id in insertion order.
// Returns ErrVertexNotFound if id is not a key.
//
// Complexity: O(d) where d is the out-degree of id.
func (g *Graph[V]) Arcs(id V) ([]Arc[V], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Arc[V], len(g.arcs[id]))
	copy(out, g.arcs[id])

	return out, nil
}

// NeighborIDs returns the distinct heads of id's outgoing arcs, in order of
// first appearance. Returns ErrVertexNotFound if id is not a key.
//
// Complexity: O(d).
func (g *Graph[V]) NeighborIDs(id V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.index[id]; !ok {
		return nil, ErrVertexNotFound
	}
	list := g.arcs[id]
	out := make([]V, 0, len(list))
	dedup := make(map[V]struct{}, len(list))
	for _, a := range list {
		if _, ok := dedup[a.To]; ok {
			continue
		}
		dedup[a.To] = struct{}{}
		out = append(out, a.To)
	}

	return out, nil
}

// ArcCount returns the number of stored arcs. Mirrored arcs of an
// undirected graph are counted once per direction.
func (g *Graph[V]) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, list := range g.arcs {
		n += len(list)
	}

	return n
}
