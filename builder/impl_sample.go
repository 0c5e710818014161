// SPDX-License-Identifier: MIT
// Package: hopweight/builder
//
// impl_sample.go - the two reference fixtures used across tests, examples
// and the CLI.
//
// WeightedSample:
//
//	s:{(a,1),(c,4)}  a:{(b,2)}  b:{(c,1),(d,4)}  c:{(d,3)}  d:{}  e:{(d,0)}
//
// UnweightedSample:
//
//	s:{a,b}  a:{b}  b:{c}  c:{a,d}  d:{}
//
// Both use fixed IDs (cfg.idFn is ignored) and emit arcs in the listed order.
// On an unweighted graph WeightedSample drops its weights.

package builder

import (
	"github.com/katalvlaran/hopweight/core"
)

const (
	methodWeightedSample   = "WeightedSample"
	methodUnweightedSample = "UnweightedSample"
)

type fixedArc struct {
	from, to string
	w        int64
}

var weightedSampleArcs = []fixedArc{
	{"s", "a", 1}, {"s", "c", 4},
	{"a", "b", 2},
	{"b", "c", 1}, {"b", "d", 4},
	{"c", "d", 3},
	{"e", "d", 0},
}

var unweightedSampleArcs = []fixedArc{
	{"s", "a", 0}, {"s", "b", 0},
	{"a", "b", 0},
	{"b", "c", 0},
	{"c", "a", 0}, {"c", "d", 0},
}

// WeightedSample returns a Constructor for the six-vertex hop/weight fixture.
func WeightedSample() Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		return addFixed(g, methodWeightedSample, []string{"s", "a", "b", "c", "d", "e"}, weightedSampleArcs)
	}
}

// UnweightedSample returns a Constructor for the five-vertex BFS fixture.
func UnweightedSample() Constructor {
	return func(g *core.Graph[string], _ builderConfig) error {
		return addFixed(g, methodUnweightedSample, []string{"s", "a", "b", "c", "d"}, unweightedSampleArcs)
	}
}

// addFixed registers keys in order, then adds arcs; weights are zeroed on
// unweighted graphs.
func addFixed(g *core.Graph[string], method string, keys []string, arcs []fixedArc) error {
	for _, k := range keys {
		g.AddVertex(k)
	}
	for _, a := range arcs {
		w := a.w
		if !g.Weighted() {
			w = 0
		}
		if err := g.AddArc(a.from, a.to, w); err != nil {
			return wrapArc(method, a.from, a.to, w, err)
		}
	}

	return nil
}
