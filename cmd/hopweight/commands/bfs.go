package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hopweight/bfs"
	"github.com/katalvlaran/hopweight/path"
)

const (
	keyDest     = "dest"
	keyMaxDepth = "max-depth"
)

type bfsRow struct {
	Vertex  string `json:"vertex" yaml:"vertex"`
	Depth   int    `json:"depth" yaml:"depth"`
	Parent  string `json:"parent,omitempty" yaml:"parent,omitempty"`
	Reached bool   `json:"reached" yaml:"reached"`
}

type bfsReport struct {
	Graph    string   `json:"graph" yaml:"graph"`
	Source   string   `json:"source" yaml:"source"`
	Order    []string `json:"order" yaml:"order"`
	Vertices []bfsRow `json:"vertices" yaml:"vertices"`
	Dest     string   `json:"dest,omitempty" yaml:"dest,omitempty"`
	Via      []string `json:"via,omitempty" yaml:"via,omitempty"`
	Route    string   `json:"route,omitempty" yaml:"route,omitempty"`
}

func newBFSCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Breadth-first parent tree from a source, with optional route to --dest",
		Long: `bfs walks an unweighted fixture graph breadth-first from the source and
prints each vertex's depth and parent. With --dest it also prints the vertices
on the route from the source up to, but excluding, the destination.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.traced(cmd, "bfs.BFS", func(ctx context.Context, span trace.Span) error {
				return a.runBFS(ctx, cmd, span)
			})
		},
	}
	cmd.Flags().String(keyDest, "", "Destination vertex for route reconstruction")
	cmd.Flags().Int(keyMaxDepth, 0, "Do not expand vertices at this depth or deeper (0 = unlimited)")

	return cmd
}

func (a *app) runBFS(ctx context.Context, cmd *cobra.Command, span trace.Span) error {
	g, source, err := a.buildFixture(false)
	if err != nil {
		return err
	}
	span.SetAttributes(
		attribute.String("graph", a.v.GetString(keyGraph)),
		attribute.String("source", source),
		attribute.Int("vertices", g.VertexCount()),
		attribute.Int("arcs", g.ArcCount()),
	)

	res, err := bfs.BFS(g, source,
		bfs.WithContext[string](ctx),
		bfs.WithMaxDepth[string](a.v.GetInt(keyMaxDepth)),
		bfs.WithOnVisit(func(id string, depth int) error {
			a.logger.Debug("visit", "vertex", id, "depth", depth)
			return nil
		}),
	)
	if err != nil {
		return fmt.Errorf("bfs from %s: %w", source, err)
	}
	span.SetAttributes(attribute.Int("reached", len(res.Order)))

	report := bfsReport{Graph: a.v.GetString(keyGraph), Source: source, Order: res.Order}
	for _, v := range g.Vertices() {
		row := bfsRow{Vertex: v, Depth: -1}
		if d, ok := res.Depth[v]; ok {
			row.Depth, row.Reached = d, true
			row.Parent = res.Parent[v]
		}
		report.Vertices = append(report.Vertices, row)
	}

	if dest := a.v.GetString(keyDest); dest != "" {
		if !g.HasVertex(dest) {
			return fmt.Errorf("destination %q: %w", dest, bfs.ErrMissingVertex)
		}
		via, err := path.Reconstruct(res.Parent, dest)
		if err != nil {
			return err
		}
		report.Dest, report.Via, report.Route = dest, via, path.Join(via, "")
	}

	out := cmd.OutOrStdout()
	if done, err := writeStructured(out, a.v.GetString(keyFormat), report); done {
		return err
	}

	t := &table{header: []string{"VERTEX", "DEPTH", "PARENT"}}
	for _, row := range report.Vertices {
		switch {
		case !row.Reached:
			t.add(row.Vertex, "-", "unreached")
		case row.Parent == "":
			t.add(row.Vertex, strconv.Itoa(row.Depth), "-")
		default:
			t.add(row.Vertex, strconv.Itoa(row.Depth), row.Parent)
		}
	}
	if err := t.render(out, fmt.Sprintf("bfs from %s on %s", source, report.Graph)); err != nil {
		return err
	}
	if report.Dest != "" {
		_, err = fmt.Fprintf(out, "route to %s: %s\n", report.Dest, report.Route)
	}

	return err
}
