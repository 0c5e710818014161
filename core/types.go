// Package core defines the generic adjacency container Graph[V] shared by
// the hops and bfs packages, together with its options and sentinel errors.
//
// A Graph maps every vertex key to an ordered list of outgoing arcs. Arc
// order is insertion order, so every traversal over a Graph is reproducible.
//
// Errors:
//
//	ErrVertexNotFound   - requested vertex is not a key of the graph.
//	ErrBadWeight        - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed   - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is not a key.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Arc is one outgoing connection of a vertex: the head vertex To and the
// integer Weight carried by the connection. Unweighted graphs store Weight 0.
type Arc[V comparable] struct {
	// To is the head (target) vertex.
	To V

	// Weight is the cost of traversing the arc.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*config)

// config holds the mode flags resolved from GraphOption values.
type config struct {
	directed   bool // mirror arcs when false
	weighted   bool // allow non-zero weights
	allowLoops bool // allow self-loops
	dangling   bool // do not register arc heads as keys
}

// WithDirected sets directedness for all arcs. Graphs are directed by default;
// WithDirected(false) stores every arc in both directions.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithWeighted allows non-zero arc weights in the Graph.
func WithWeighted() GraphOption {
	return func(c *config) { c.weighted = true }
}

// WithLoops permits self-loops (arcs from a vertex to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// WithDanglingArcs stops AddArc from registering the head vertex as a key.
// The resulting Graph mirrors a raw adjacency mapping in which an arc may
// reference a vertex that has no entry of its own; algorithms report such
// arcs as missing-vertex errors.
func WithDanglingArcs() GraphOption {
	return func(c *config) { c.dangling = true }
}

// Graph is an in-memory adjacency mapping from vertex to ordered arcs.
//
// Vertices are kept in insertion order, and so are the arcs of each vertex.
// Re-adding an arc already present is a no-op: weighted graphs compare the
// (To, Weight) pair, unweighted graphs compare To only.
// mu guards every field below it.
type Graph[V comparable] struct {
	mu sync.RWMutex

	cfg config

	order []V                       // vertex keys, insertion order
	index map[V]int                 // vertex → position in order
	arcs  map[V][]Arc[V]            // vertex → outgoing arcs, insertion order
	seen  map[V]map[Arc[V]]struct{} // vertex → set of stored arcs
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is directed, unweighted, loop-free, and registers both
// endpoints of every arc as keys.
// Complexity: O(1)
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	g := &Graph[V]{
		cfg:   config{directed: true},
		index: make(map[V]int),
		arcs:  make(map[V][]Arc[V]),
		seen:  make(map[V]map[Arc[V]]struct{}),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Directed reports whether arcs are stored one-way only.
func (g *Graph[V]) Directed() bool { return g.cfg.directed }

// Weighted reports whether the Graph accepts non-zero arc weights.
func (g *Graph[V]) Weighted() bool { return g.cfg.weighted }

// Looped reports whether self-loops are permitted.
func (g *Graph[V]) Looped() bool { return g.cfg.allowLoops }

// Dangling reports whether arc heads are left unregistered as keys.
func (g *Graph[V]) Dangling() bool { return g.cfg.dangling }
