// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// api.go - the orchestrator and the Constructor contract.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hopweight/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/weighted).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph[string], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[string], error) {
	g := core.NewGraph[string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// weightFor draws the next arc weight: cfg.weightFn when the graph is
// weighted, 0 otherwise.
func weightFor(g *core.Graph[string], cfg builderConfig) int64 {
	if !g.Weighted() {
		return 0
	}

	return cfg.weightFn(cfg.rng)
}

// addArc inserts u→v with the next weight and wraps failures with method context.
func addArc(g *core.Graph[string], cfg builderConfig, method, u, v string) error {
	w := weightFor(g, cfg)
	if err := g.AddArc(u, v, w); err != nil {
		return wrapArc(method, u, v, w, err)
	}

	return nil
}

// wrapArc attaches method and arc context to an AddArc failure.
func wrapArc(method, u, v string, w int64, err error) error {
	return fmt.Errorf("%s: AddArc(%s→%s, w=%d): %w", method, u, v, w, err)
}

// addVertices registers n vertices named by cfg.idFn in ascending index order.
func addVertices(g *core.Graph[string], cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.idFn(i))
	}
}
