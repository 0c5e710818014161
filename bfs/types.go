// Package bfs provides tunable options and error definitions
// for breadth‐first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hopweight/path"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start vertex is not a key.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[V comparable] func(*BFSOptions[V])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex is enqueued, before visiting.
	// Receives the vertex and its depth from the start.
	OnEnqueue func(id V, depth int)

	// OnDequeue is called immediately before visiting a vertex.
	OnDequeue func(id V, depth int)

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id V, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor V) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions[V comparable]() BFSOptions[V] {
	return BFSOptions[V]{
		Ctx:            context.Background(),
		OnEnqueue:      func(V, int) {},
		OnDequeue:      func(V, int) {},
		OnVisit:        func(V, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ V) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *BFSOptions[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[V comparable](fn func(id V, depth int)) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[V comparable](fn func(id V, depth int)) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[V comparable](fn func(id V, depth int) error) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[V comparable](d int) Option[V] {
	return func(o *BFSOptions[V]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *BFSOptions[V]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Start:  the root vertex.
//   - Order:  vertices visited, in visit sequence.
//   - Depth:  map from vertex to its distance (in arcs) from the start.
//   - Parent: map from vertex to its predecessor in the BFS tree; the start
//     vertex has no entry.
type BFSResult[V comparable] struct {
	Start  V
	Order  []V
	Depth  map[V]int
	Parent map[V]V
}

// PathTo reconstructs the path from the start vertex to dest, inclusive of
// both ends. Returns an error if dest was not reached.
func (r *BFSResult[V]) PathTo(dest V) ([]V, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}

	return path.To(r.Parent, dest)
}
