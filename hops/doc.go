// Package hops computes, from a single source in a weighted directed
// core.Graph, the minimum hop count to every vertex together with the
// weight accumulated along the path that achieved it.
//
// What
//
//   - Exploration is ordered by hop count (number of arcs), not by weight.
//   - A Record{Hops, Weight, Reached} is produced for every vertex key.
//     Unreachable vertices keep the zero Record (Unreached).
//   - Weight is NOT minimized among equal-hop paths: the first minimum-hop
//     path discovered in (hops, vertex) heap order supplies it. Ties between
//     heap entries with the same hop count are broken by the vertex's natural
//     order (cmp.Less), so the result is fully deterministic for a given
//     graph construction order.
//
// Why
//
//   - Routing where hop count is the primary cost (TTL budgets, transfer
//     counts) and the weight is a reported secondary metric.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)
//
// Usage
//
//	g := core.NewGraph[string](core.WithWeighted())
//	_ = g.AddArc("s", "a", 1)
//	_ = g.AddArc("a", "b", 2)
//
//	res, err := hops.Compute(g, "s")
//	if err != nil {
//		// ErrNilGraph, ErrUnweightedGraph, ErrSourceNotFound,
//		// ErrNegativeWeight, ErrMissingVertex, ErrWeightOverflow or
//		// ErrOptionViolation
//	}
//	rec, _ := res.Record("b") // (hops=2, weight=3)
//
// Options
//
//   - WithReturnPath():  keep predecessors; enables Result.PathTo.
//   - WithMaxHops(n):    do not relax beyond n hops (n > 0; 0 = no limit).
//   - WithOnRelax(fn):   hook on every record assignment.
//   - WithLogger(l):     debug traces of heap pops and relaxations.
//
// Errors
//
//   - ErrNilGraph         if the graph pointer is nil.
//   - ErrUnweightedGraph  if the graph was not built WithWeighted.
//   - ErrSourceNotFound   if the source is not a key.
//   - ErrNegativeWeight   if any arc has a negative weight.
//   - ErrMissingVertex    if a reached arc points at a non-key vertex.
//   - ErrWeightOverflow   if an accumulated weight would exceed math.MaxInt64.
//   - ErrOptionViolation  for invalid options (negative MaxHops).
package hops
