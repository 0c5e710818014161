// Package hops implements a hop-ordered shortest-path traversal on weighted
// graphs.
//
// Compute orders exploration by the number of arcs from the source instead
// of by accumulated weight, while carrying the accumulated weight along as
// a secondary payload. A vertex record is replaced only when a strictly
// smaller hop count is found, so among several minimum-hop paths the one
// discovered first in queue order supplies the weight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each arc relaxation may push one heap entry: up to E pushes.
//   - Each heap operation costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for records and predecessor maps.
//   - O(E) worst-case heap entries.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all arcs (O(E)) to detect negative weights and fail fast.
//   - Heap entries are compared as (hops, vertex) pairs with cmp.Less on the
//     vertex; this tie-break decides which equal-hop path wins the weight.
//   - There is no visited set: every popped entry relaxes its arcs, exactly
//     as the hop comparison dictates.
package hops

import (
	"cmp"
	"container/heap"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/hopweight/core"
)

// Compute returns, for every vertex key of g, the minimum hop count from
// source and the weight accumulated along the first minimum-hop path found.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must be weighted (ErrUnweightedGraph).
//  3. options must be valid (ErrOptionViolation).
//  4. source must be a key of g (ErrSourceNotFound).
//  5. No arc in g can have negative weight (ErrNegativeWeight).
//
// During traversal an arc whose head is not a key of g aborts the run with
// ErrMissingVertex, and a relaxation whose weight sum would exceed
// math.MaxInt64 aborts it with ErrWeightOverflow; no partial result is
// returned.
//
// The input graph is never mutated; repeated calls yield identical results.
func Compute[V cmp.Ordered](g *core.Graph[V], source V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	cfg := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	vertices := g.Vertices()
	if err := checkWeights(g, vertices); err != nil {
		return nil, err
	}

	r := &runner[V]{
		g:       g,
		options: cfg,
		log:     cfg.Logger.With(slog.Any("source", source)),
		rec:     make(map[V]Record, len(vertices)),
		pq:      make(hopPQ[V], 0, len(vertices)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V, len(vertices))
	}

	r.init(vertices, source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result[V]{Source: source, Records: r.rec, Parent: r.prev}, nil
}

// checkWeights rejects any negative arc weight before traversal starts.
// Arcs of dangling heads are left to the traversal itself.
func checkWeights[V cmp.Ordered](g *core.Graph[V], vertices []V) error {
	for _, u := range vertices {
		arcs, err := g.Arcs(u)
		if err != nil {
			return fmt.Errorf("hops: failed to read arcs of %v: %w", u, err)
		}
		for _, a := range arcs {
			if a.Weight < 0 {
				return fmt.Errorf("%w: arc %v→%v weight=%d", ErrNegativeWeight, u, a.To, a.Weight)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Compute execution.
type runner[V cmp.Ordered] struct {
	g       *core.Graph[V] // read-only input
	options Options[V]
	log     *slog.Logger
	rec     map[V]Record // vertex → current record
	prev    map[V]V      // vertex → predecessor; nil unless ReturnPath
	pq      hopPQ[V]
}

// init marks every vertex unreached, assigns (0, 0) to the source and seeds the heap.
func (r *runner[V]) init(vertices []V, source V) {
	for _, v := range vertices {
		r.rec[v] = Unreached
	}
	r.assign(source, Record{Hops: 0, Weight: 0, Reached: true})

	heap.Init(&r.pq)
	heap.Push(&r.pq, &hopItem[V]{id: source, hops: 0})
}

// process pops the lowest (hops, vertex) entry until the heap is empty and
// relaxes the arcs of each popped vertex.
func (r *runner[V]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*hopItem[V])
		r.log.Debug("pop", slog.Any("vertex", item.id), slog.Int("hops", item.hops))

		if err := r.relax(item.id, item.hops); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc leaving top, in insertion order. The head is
// updated only when it is unreached or its recorded hop count exceeds d+1;
// an equal hop count never replaces the recorded weight.
func (r *runner[V]) relax(top V, d int) error {
	arcs, err := r.g.Arcs(top)
	if err != nil {
		return fmt.Errorf("hops: failed to read arcs of %v: %w", top, err)
	}

	next := d + 1
	if r.options.MaxHops > 0 && next > r.options.MaxHops {
		return nil
	}

	base := r.rec[top].Weight
	for _, a := range arcs {
		cur, ok := r.rec[a.To]
		if !ok {
			return fmt.Errorf("%w: arc %v→%v", ErrMissingVertex, top, a.To)
		}
		if cur.Reached && cur.Hops <= next {
			continue
		}

		if a.Weight > math.MaxInt64-base {
			return fmt.Errorf("%w: arc %v→%v weight=%d on top of %d", ErrWeightOverflow, top, a.To, a.Weight, base)
		}

		r.assign(a.To, Record{Hops: next, Weight: base + a.Weight, Reached: true})
		if r.prev != nil {
			r.prev[a.To] = top
		}
		heap.Push(&r.pq, &hopItem[V]{id: a.To, hops: next})
	}

	return nil
}

// assign stores rec for v and notifies the hook and logger.
func (r *runner[V]) assign(v V, rec Record) {
	r.rec[v] = rec
	r.options.OnRelax(v, rec)
	r.log.Debug("relax", slog.Any("vertex", v), slog.Int("hops", rec.Hops), slog.Int64("weight", rec.Weight))
}

// hopItem is a heap entry: a vertex and the hop count it was pushed with.
type hopItem[V cmp.Ordered] struct {
	id   V
	hops int
}

// hopPQ is a min-heap of *hopItem ordered by (hops, id) ascending.
// The same vertex may appear several times; every entry is processed.
type hopPQ[V cmp.Ordered] []*hopItem[V]

// Len returns the number of items in the heap.
func (pq hopPQ[V]) Len() int { return len(pq) }

// Less orders by hop count, then by the vertex's natural order.
func (pq hopPQ[V]) Less(i, j int) bool {
	if pq[i].hops != pq[j].hops {
		return pq[i].hops < pq[j].hops
	}

	return cmp.Less(pq[i].id, pq[j].id)
}

// Swap swaps two elements in the heap.
func (pq hopPQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *hopPQ[V]) Push(x any) { *pq = append(*pq, x.(*hopItem[V])) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *hopPQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
