// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns keys in insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

// AddVertex registers id as a key if absent. A vertex with no outgoing arcs
// is still a key. Adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(id V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)
}

// addVertexLocked registers id; caller holds the write lock.
func (g *Graph[V]) addVertexLocked(id V) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
	g.arcs[id] = nil
	g.seen[id] = make(map[Arc[V]]struct{})
}

// HasVertex reports whether id is a key of the graph.
//
// Complexity: O(1)
func (g *Graph[V]) HasVertex(id V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.index[id]

	return ok
}

// Vertices returns a copy of all vertex keys in insertion order.
//
// Complexity: O(V)
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertex keys.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
