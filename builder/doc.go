// Package builder constructs deterministic fixture graphs for tests,
// benchmarks and the hopweight command.
//
// BuildGraph(gopts, bopts, cons...) creates a core.Graph[string] from core
// options, resolves builder options (ID scheme, RNG, weight distribution)
// and applies each Constructor in order:
//
//	g, err := builder.BuildGraph(
//	    []core.GraphOption{core.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 9)},
//	    builder.RandomSparse(100, 0.05),
//	)
//
// Constructors:
//
//	WeightedSample, UnweightedSample - the fixed reference graphs.
//	Path(n), Cycle(n), Star(n)       - simple topologies, arcs pointing "forward".
//	Grid(r, c)                       - arcs pointing right and down.
//	RandomSparse(n, p)               - Bernoulli arcs, seeded.
//
// Named(name, size, weighted) maps the command-line fixture names onto these
// constructors.
//
// Determinism: identical options, seed and constructor order produce
// identical graphs, including vertex and arc insertion order.
package builder
