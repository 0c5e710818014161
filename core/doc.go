// Package core provides the in-memory adjacency container consumed by the
// hops and bfs algorithms.
//
// What
//
//   - Graph[V] maps every vertex key of any comparable type V to an ordered
//     list of outgoing arcs (Arc[V]{To, Weight}).
//   - Weighted graphs (WithWeighted) carry int64 weights; unweighted graphs
//     reject non-zero weights with ErrBadWeight.
//   - Arcs behave as a set: re-adding the same arc is a no-op. Weighted graphs
//     compare (To, Weight) pairs, so two arcs to the same head with different
//     weights are both kept.
//
// Determinism
//
//	Vertices() and Arcs(v) return entries in insertion order. Any algorithm
//	that iterates them in that order yields identical output for identical
//	construction sequences.
//
// Keys
//
//	Every vertex that should appear in a result must be a key, even when it
//	has no outgoing arcs (AddVertex). AddArc registers both endpoints unless
//	the graph is built WithDanglingArcs, which reproduces a raw mapping where
//	an arc may point at a vertex that is not a key.
//
// Concurrency
//
//	All methods are guarded by a sync.RWMutex. Algorithms only read, so any
//	number of computations may share one Graph.
//
// Usage
//
//	g := core.NewGraph[string](core.WithWeighted())
//	_ = g.AddArc("s", "a", 1)
//	_ = g.AddArc("a", "b", 2)
//	g.AddVertex("e")            // key without outgoing arcs
//	arcs, _ := g.Arcs("s")      // [{a 1}]
package core
