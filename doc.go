// Package hopweight computes hop-ordered reachability over directed graphs:
// for every vertex, the fewest arcs needed to reach it from a source, the
// weight of the first path discovered with that many arcs, and the
// breadth-first parent tree used to rebuild routes.
//
// 🚀 What is hopweight?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Core primitives: a generic Graph[V] with insertion-ordered arcs
//		• Hop-weighted search: (hops, vertex)-ordered exploration with a
//		  first-discovered weight per vertex
//		• Traversals: BFS with parent pointers, depths and hooks
//		• Routes: parent-map reconstruction that refuses malformed cycles
//		• Builders: deterministic fixture graphs (path, cycle, star, grid,
//		  sparse random, reference samples)
//
// Layout:
//
//	core/          - Graph[V], Arc[V] and thread-safe mutation/queries
//	hops/          - Compute: minimum hop count + first-discovered weight
//	bfs/           - BFS and Parents over unweighted graphs
//	path/          - Reconstruct, To, Join over parent maps
//	builder/       - fixture constructors and Named lookup
//	cmd/hopweight/ - cobra/viper command-line front end
//	examples/      - runnable programs
//
// Quick ASCII example:
//
//	s ─1→ a ─2→ b
//	│           │1
//	└──4→ c ←───┘
//
// c is one hop from s, so its record is (hops=1, weight=4) even though the
// three-hop route through a and b is lighter.
//
//	go install github.com/katalvlaran/hopweight/cmd/hopweight@latest
package hopweight
