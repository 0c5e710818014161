// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hopweight/core"
)

// ErrWeightedGraph is returned when BFS is run on a weighted graph.
var ErrWeightedGraph = errors.New("bfs: weighted graphs not supported")

// ErrMissingVertex is returned when an arc points at a vertex that is not a key.
var ErrMissingVertex = errors.New("bfs: arc references a vertex missing from the graph")

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	graph   *core.Graph[V]
	opts    BFSOptions[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *BFSResult[V]
}

// Parents returns the BFS-tree predecessor of every vertex reachable from
// source. The source itself has no entry.
func Parents[V comparable](g *core.Graph[V], source V) (map[V]V, error) {
	res, err := BFS(g, source)
	if err != nil {
		return nil, err
	}

	return res.Parent, nil
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// ErrMissingVertex for arcs to non-key vertices, or any user-supplied hook
// error.
func BFS[V comparable](g *core.Graph[V], start V, opts ...Option[V]) (*BFSResult[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start vertex
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, start)
	}
	// Disallow weighted graphs
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker[V]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &BFSResult[V]{
			Start:  start,
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// enqueue marks id visited at depth d, calls OnEnqueue and adds it to the queue.
func (w *walker[V]) enqueue(id V, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks the neighbors of item in insertion order, applies
// filtering and MaxDepth, and records item as the parent of each unseen one.
func (w *walker[V]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %v", ErrMissingVertex, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.visited[nbr] {
			continue
		}
		if !w.graph.HasVertex(nbr) {
			return fmt.Errorf("%w: arc %v→%v", ErrMissingVertex, item.id, nbr)
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}

	return nil
}
