package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopweight/bfs"
	"github.com/katalvlaran/hopweight/core"
	"github.com/katalvlaran/hopweight/path"
)

// sampleGraph builds {s:{a,b}, a:{b}, b:{c}, c:{a,d}, d:{}}.
func sampleGraph(t testing.TB) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, a := range [][2]string{{"s", "a"}, {"s", "b"}, {"a", "b"}, {"b", "c"}, {"c", "a"}, {"c", "d"}} {
		require.NoError(t, g.AddArc(a[0], a[1], 0))
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS[string](nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// start vertex not found
	g := core.NewGraph[string]()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	// weighted graph unsupported
	gW := core.NewGraph[string](core.WithWeighted())
	gW.AddVertex("A")
	if _, err := bfs.BFS(gW, "A"); !errors.Is(err, bfs.ErrWeightedGraph) {
		t.Errorf("weighted graph: want ErrWeightedGraph, got %v", err)
	}
	// negative MaxDepth is a violation
	g2 := core.NewGraph[string]()
	g2.AddVertex("A")
	if _, err := bfs.BFS(g2, "A", bfs.WithMaxDepth[string](-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

func TestParents_SampleGraph(t *testing.T) {
	parents, err := bfs.Parents(sampleGraph(t), "s")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "s", "b": "s", "c": "b", "d": "c"}, parents)
	_, hasRoot := parents["s"]
	assert.False(t, hasRoot, "source must not have a parent entry")

	via, err := path.Reconstruct(parents, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "b", "c"}, via)
	assert.Equal(t, "sbc", path.Join(via, ""))
}

func TestParents_Unreachable(t *testing.T) {
	g := sampleGraph(t)
	g.AddVertex("island")

	parents, err := bfs.Parents(g, "s")
	require.NoError(t, err)
	_, ok := parents["island"]
	assert.False(t, ok)

	via, err := path.Reconstruct(parents, "island")
	require.NoError(t, err)
	assert.Empty(t, via)
}

func TestParents_MissingVertex(t *testing.T) {
	g := core.NewGraph[string](core.WithDanglingArcs())
	require.NoError(t, g.AddArc("s", "ghost", 0))

	_, err := bfs.Parents(g, "s")
	require.ErrorIs(t, err, bfs.ErrMissingVertex)
}

func TestParents_Idempotent(t *testing.T) {
	g := sampleGraph(t)
	first, err := bfs.Parents(g, "s")
	require.NoError(t, err)
	second, err := bfs.Parents(g, "s")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
	if len(res.Parent) != 0 {
		t.Errorf("Parent = %v; want empty", res.Parent)
	}
}

// TestCycleAndDepths covers a simple undirected cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// A–B–C–D–A undirected cycle
	g := core.NewGraph[string](core.WithDirected(false))
	g.AddArc("A", "B", 0)
	g.AddArc("B", "C", 0)
	g.AddArc("C", "D", 0)
	g.AddArc("D", "A", 0)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for v, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[v]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", v, got, want)
		}
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddArc("X", "Y", 0) // component 1
	g.AddArc("P", "Q", 0) // component 2

	resX, _ := bfs.BFS(g, "X")
	if !reflect.DeepEqual(resX.Order, []string{"X", "Y"}) {
		t.Errorf("From X: got %v; want [X Y]", resX.Order)
	}
	resP, _ := bfs.BFS(g, "P")
	if !reflect.DeepEqual(resP.Order, []string{"P", "Q"}) {
		t.Errorf("From P: got %v; want [P Q]", resP.Order)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddArc("A", "B", 0)
	g.AddArc("B", "C", 0)
	cases := []struct {
		depth int
		want  []string
	}{
		{1, []string{"A", "B"}},
		{0, []string{"A", "B", "C"}},
		{10, []string{"A", "B", "C"}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth[string](tc.depth))
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Order, "MaxDepth=%d", tc.depth)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain arcs.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddArc("A", "B", 0)
	g.AddArc("B", "C", 0)
	// filter out B→C
	res, _ := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("FilterNeighbor: got %v; want %v", res.Order, want)
	}
}

// TestBFS_SelfLoop ensures that a loop back to the start never gives it a parent.
func TestBFS_SelfLoop(t *testing.T) {
	g := core.NewGraph[string](core.WithLoops())
	g.AddArc("A", "A", 0)
	g.AddArc("A", "B", 0)
	g.AddArc("B", "A", 0)
	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.Equal(t, map[string]string{"B": "A"}, res.Parent)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddArc("A", "B", 0)
	g.AddArc("B", "C", 0)

	var enq, deq, vis []string
	makeEntry := func(prefix, id string, d int) string {
		return prefix + ":" + id + "@" + strconv.Itoa(d)
	}

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, makeEntry("e", id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, makeEntry("d", id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, makeEntry("v", id, d)); return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}

	// We expect BFS depths A@0, B@1, C@2
	wantDepths := []string{"A@0", "B@1", "C@2"}
	for i, suffix := range wantDepths {
		if !strings.HasSuffix(enq[i], suffix) {
			t.Errorf("OnEnqueue[%d] = %q, want suffix %q", i, enq[i], suffix)
		}
		if !strings.HasSuffix(deq[i], suffix) {
			t.Errorf("OnDequeue[%d] = %q, want suffix %q", i, deq[i], suffix)
		}
		if !strings.HasSuffix(vis[i], suffix) {
			t.Errorf("OnVisit[%d] = %q, want suffix %q", i, vis[i], suffix)
		}
	}
}

// TestBFS_VisitErrorAborts checks that an OnVisit error is wrapped and returned.
func TestBFS_VisitErrorAborts(t *testing.T) {
	stop := errors.New("stop here")
	_, err := bfs.BFS(sampleGraph(t), "s", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "b" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Contains(t, err.Error(), "OnVisit error at b")
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	res, err := bfs.BFS(sampleGraph(t), "s")
	require.NoError(t, err)

	p, err := res.PathTo("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "b", "c", "d"}, p)

	p, err = res.PathTo("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"s"}, p)

	_, err = res.PathTo("Y")
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestBFS_IntVertices runs the search over integer tokens.
func TestBFS_IntVertices(t *testing.T) {
	g := core.NewGraph[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, g.AddArc(i, i+1, 0))
	}
	parents, err := bfs.Parents(g, 0)
	require.NoError(t, err)
	via, err := path.Reconstruct(parents, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, via)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := core.NewGraph[string]()
	// build a longer chain
	for i := 0; i < 100; i++ {
		u, v := fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)
		g.AddArc(u, v, 0)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.BFS(g, "v0", bfs.WithContext[string](ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := sampleGraph(t)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "s"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
