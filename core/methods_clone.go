// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves vertex and arc insertion order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertex keys and arcs.
// Mutating the clone never affects the receiver.
//
// Complexity: O(V + E).
func (g *Graph[V]) Clone() *Graph[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[V]{
		cfg:   g.cfg,
		order: make([]V, len(g.order)),
		index: make(map[V]int, len(g.index)),
		arcs:  make(map[V][]Arc[V], len(g.arcs)),
		seen:  make(map[V]map[Arc[V]]struct{}, len(g.seen)),
	}
	copy(clone.order, g.order)
	for id, pos := range g.index {
		clone.index[id] = pos
	}
	for id, list := range g.arcs {
		cp := make([]Arc[V], len(list))
		copy(cp, list)
		clone.arcs[id] = cp

		set := make(map[Arc[V]]struct{}, len(list))
		for _, a := range list {
			set[a] = struct{}{}
		}
		clone.seen[id] = set
	}

	return clone
}
