// Package hops defines result records, options and sentinel errors for the
// hop-ordered shortest-path traversal.
package hops

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/hopweight/path"
)

// Sentinel errors returned by Compute.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("hops: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not built WithWeighted.
	ErrUnweightedGraph = errors.New("hops: graph must be weighted")

	// ErrSourceNotFound indicates that the source vertex is not a key of the graph.
	ErrSourceNotFound = errors.New("hops: source vertex not found in graph")

	// ErrMissingVertex indicates that an arc points at a vertex that is not a key.
	ErrMissingVertex = errors.New("hops: arc references a vertex missing from the graph")

	// ErrNegativeWeight indicates that a negative arc weight was detected.
	ErrNegativeWeight = errors.New("hops: negative arc weight encountered")

	// ErrWeightOverflow indicates that an accumulated path weight exceeded math.MaxInt64.
	ErrWeightOverflow = errors.New("hops: accumulated weight overflows int64")

	// ErrOptionViolation indicates that an invalid Option was supplied.
	ErrOptionViolation = errors.New("hops: invalid option supplied")

	// ErrNoPath indicates that PathTo was asked for an unreached vertex or
	// that the predecessor map was not requested.
	ErrNoPath = errors.New("hops: no path")
)

// Record is the per-vertex outcome of Compute: the minimum number of arcs
// from the source (Hops) and the weight accumulated along the first
// minimum-hop path discovered (Weight). Both are set together.
//
// The zero value is the unreached sentinel.
type Record struct {
	Hops    int
	Weight  int64
	Reached bool
}

// Unreached is the Record of a vertex with no path from the source.
var Unreached = Record{}

// Pair returns (Hops, Weight), or (-1, -1) for an unreached record.
func (r Record) Pair() (int, int64) {
	if !r.Reached {
		return -1, -1
	}

	return r.Hops, r.Weight
}

// String renders the record as "(hops=H, weight=W)" or "unreached".
func (r Record) String() string {
	if !r.Reached {
		return "unreached"
	}

	return fmt.Sprintf("(hops=%d, weight=%d)", r.Hops, r.Weight)
}

// Result holds the outcome of a Compute call.
//
//   - Source:  the start vertex.
//   - Records: one Record per vertex key of the graph.
//   - Parent:  predecessor of every reached non-source vertex along its
//     recorded path; nil unless WithReturnPath was given.
type Result[V comparable] struct {
	Source  V
	Records map[V]Record
	Parent  map[V]V
}

// Record returns the record for v and whether v is a key of the graph.
func (r *Result[V]) Record(v V) (Record, bool) {
	rec, ok := r.Records[v]

	return rec, ok
}

// PathTo returns the recorded minimum-hop route Source..dest inclusive.
// It requires WithReturnPath and a reached dest; otherwise ErrNoPath.
func (r *Result[V]) PathTo(dest V) ([]V, error) {
	if r.Parent == nil {
		return nil, fmt.Errorf("%w: predecessor map not requested (use WithReturnPath)", ErrNoPath)
	}
	if rec := r.Records[dest]; !rec.Reached {
		return nil, fmt.Errorf("%w: %v is unreached", ErrNoPath, dest)
	}

	return path.To(r.Parent, dest)
}

// Option configures Compute via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option[V comparable] func(*Options[V])

// Options holds the parameters of a single Compute call.
type Options[V comparable] struct {
	// ReturnPath enables the predecessor map in Result.Parent.
	ReturnPath bool

	// MaxHops, if > 0, stops relaxation of arcs that would exceed it.
	// Zero means no limit.
	MaxHops int

	// OnRelax is called each time a vertex record is (re)assigned.
	OnRelax func(v V, rec Record)

	// Logger receives debug traces of pops and relaxations.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with no path map, no hop limit, a no-op
// hook and a discarding logger.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		ReturnPath: false,
		MaxHops:    0,
		OnRelax:    func(V, Record) {},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath[V comparable]() Option[V] {
	return func(o *Options[V]) { o.ReturnPath = true }
}

// WithMaxHops limits exploration to vertices at most n arcs from the source.
//
//	n > 0:  limit to n hops
//	n == 0: explicit no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxHops[V comparable](n int) Option[V] {
	return func(o *Options[V]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithOnRelax registers a callback run after every record assignment,
// including the initial source record.
func WithOnRelax[V comparable](fn func(v V, rec Record)) Option[V] {
	return func(o *Options[V]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithLogger routes debug traces to logger.
func WithLogger[V comparable](logger *slog.Logger) Option[V] {
	return func(o *Options[V]) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
