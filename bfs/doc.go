// Package bfs provides breadth-first search over an unweighted core.Graph,
// returning shortest-path (hop count) distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (arc count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  map from vertex → distance (arcs) from start
//   - Parent: map from vertex → its predecessor in the BFS tree (start absent)
//   - Parents(g, source) returns only the parent map.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Graph returns neighbors in insertion order and BFS enqueues them in
//	that order, so the visit sequence and parent map are reproducible. Callers
//	should still rely only on depths, not on which same-depth parent wins, when
//	comparing against other BFS implementations.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	parents, err := bfs.Parents(g, "s")
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrWeightedGraph,
//		// or ErrMissingVertex
//	}
//	via, _ := path.Reconstruct(parents, "d") // [s b c]
//
//	// With functional options:
//	res, err := bfs.BFS(
//	    g, "s",
//	    bfs.WithContext[string](ctx),
//	    bfs.WithMaxDepth[string](3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex is not a key.
//   - ErrWeightedGraph        if run on a weighted graph.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrMissingVertex        if a reached arc points at a non-key vertex.
//   - Wrapped user-supplied hook errors from OnVisit, and context errors.
package bfs
