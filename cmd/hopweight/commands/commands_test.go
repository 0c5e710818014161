package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopweight/bfs"
	"github.com/katalvlaran/hopweight/builder"
	"github.com/katalvlaran/hopweight/cmd/hopweight/commands"
	"github.com/katalvlaran/hopweight/hops"
)

// run executes a fresh command tree and returns captured stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := commands.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()

	return stdout.String(), stderr.String(), err
}

type hopRecord struct {
	Vertex  string   `json:"vertex"`
	Hops    int      `json:"hops"`
	Weight  int64    `json:"weight"`
	Reached bool     `json:"reached"`
	Path    []string `json:"path"`
}

type hopOutput struct {
	Graph   string      `json:"graph"`
	Source  string      `json:"source"`
	Records []hopRecord `json:"records"`
}

type bfsOutput struct {
	Graph  string   `json:"graph"`
	Source string   `json:"source"`
	Order  []string `json:"order"`
	Route  string   `json:"route"`
}

func TestGolden(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"hops_sample_json", []string{"hops", "--format", "json"}},
		{"hops_path_max_hops_json", []string{"hops", "--graph", "path", "--size", "4", "--max-weight", "1", "--max-hops", "2", "--format", "json"}},
		{"bfs_sample_dest_json", []string{"bfs", "--dest", "d", "--format", "json"}},
	}

	g := goldie.New(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := run(t, tc.args...)
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(out))
		})
	}
}

func TestHops_TextTable(t *testing.T) {
	out, _, err := run(t, "hops")
	require.NoError(t, err)

	assert.Contains(t, out, "hops from s on sample")
	assert.Contains(t, out, "VERTEX")
	assert.Contains(t, out, "s → c → d")
	assert.Contains(t, out, "unreached")
	assert.NotContains(t, out, "\x1b[", "plain writers get no escape sequences")
}

func TestBFS_TextRoute(t *testing.T) {
	out, _, err := run(t, "bfs", "--dest", "d")
	require.NoError(t, err)

	assert.Contains(t, out, "bfs from s on sample")
	assert.Contains(t, out, "route to d: sbc")
}

func TestBFS_DestIsSource(t *testing.T) {
	out, _, err := run(t, "bfs", "--dest", "s", "--format", "json")
	require.NoError(t, err)

	var got bfsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Empty(t, got.Route)
}

func TestBFS_YAML(t *testing.T) {
	out, _, err := run(t, "bfs", "--dest", "d", "--format", "yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "source: s\n")
	assert.Contains(t, out, "route: sbc\n")
	assert.Contains(t, out, "vertex: d\n")
	assert.Contains(t, out, "parent: c\n")
}

func TestTracing(t *testing.T) {
	_, stderr, err := run(t, "hops", "--trace")
	require.NoError(t, err)
	assert.Contains(t, stderr, "hops.Compute")
	assert.Contains(t, stderr, "hopweight")

	_, stderr, err = run(t, "bfs", "--trace", "--source", "zz")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.Contains(t, stderr, "bfs.BFS")
	assert.Contains(t, stderr, "Error")
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("HOPWEIGHT_SOURCE", "a")
	t.Setenv("HOPWEIGHT_FORMAT", "json")

	out, _, err := run(t, "hops")
	require.NoError(t, err)

	var got hopOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "a", got.Source)

	byVertex := make(map[string]hopRecord, len(got.Records))
	for _, r := range got.Records {
		byVertex[r.Vertex] = r
	}
	assert.False(t, byVertex["s"].Reached)
	assert.Equal(t, hopRecord{Vertex: "d", Hops: 2, Weight: 6, Reached: true, Path: []string{"a", "b", "d"}}, byVertex["d"])
}

func TestFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("HOPWEIGHT_GRAPH", "star")

	out, _, err := run(t, "bfs", "--graph", "path", "--size", "3", "--format", "json")
	require.NoError(t, err)

	var got bfsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "path", got.Graph)
	assert.Equal(t, []string{"0", "1", "2"}, got.Order)
}

func TestConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "hopweight.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("graph: cycle\nsize: 4\nformat: json\nsource: \"2\"\n"), 0o600))

	out, _, err := run(t, "bfs", "--config", cfg)
	require.NoError(t, err)

	var got bfsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "cycle", got.Graph)
	assert.Equal(t, "2", got.Source)
	assert.Equal(t, []string{"2", "3", "0", "1"}, got.Order)
}

func TestLogging(t *testing.T) {
	t.Run("DebugTextTracesTraversal", func(t *testing.T) {
		_, stderr, err := run(t, "hops", "--log-level", "debug")
		require.NoError(t, err)
		assert.Contains(t, stderr, "msg=pop")
		assert.Contains(t, stderr, "msg=relax")
	})

	t.Run("InfoJSON", func(t *testing.T) {
		_, stderr, err := run(t, "bfs", "--log-level", "info", "--log-format", "json")
		require.NoError(t, err)
		assert.Contains(t, stderr, `"msg":"fixture built"`)
		assert.NotContains(t, stderr, `"msg":"visit"`)
	})

	t.Run("DefaultIsQuiet", func(t *testing.T) {
		_, stderr, err := run(t, "hops")
		require.NoError(t, err)
		assert.Empty(t, stderr)
	})
}

func TestErrors(t *testing.T) {
	t.Run("UnknownFixture", func(t *testing.T) {
		_, _, err := run(t, "hops", "--graph", "nope")
		require.ErrorIs(t, err, builder.ErrConstructFailed)
	})

	t.Run("UnknownSource", func(t *testing.T) {
		_, _, err := run(t, "hops", "--source", "zz")
		require.ErrorIs(t, err, hops.ErrSourceNotFound)
	})

	t.Run("UnknownDest", func(t *testing.T) {
		_, _, err := run(t, "bfs", "--dest", "zz")
		require.ErrorIs(t, err, bfs.ErrMissingVertex)
	})

	t.Run("NegativeMaxHops", func(t *testing.T) {
		_, _, err := run(t, "hops", "--max-hops=-1")
		require.ErrorIs(t, err, hops.ErrOptionViolation)
	})

	t.Run("TooSmallFixture", func(t *testing.T) {
		_, _, err := run(t, "bfs", "--graph", "path", "--size", "1")
		require.ErrorIs(t, err, builder.ErrTooFewVertices)
	})

	t.Run("BadFormat", func(t *testing.T) {
		_, _, err := run(t, "hops", "--format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown format")
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		_, _, err := run(t, "hops", "--log-level", "verbose")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log level")
	})

	t.Run("BadLogLevelFromEnvironment", func(t *testing.T) {
		t.Setenv("HOPWEIGHT_LOG_LEVEL", "trace")
		_, _, err := run(t, "bfs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"trace"`)
	})

	t.Run("BadLogFormat", func(t *testing.T) {
		_, _, err := run(t, "bfs", "--log-format", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log format")
	})

	t.Run("MissingConfig", func(t *testing.T) {
		_, _, err := run(t, "hops", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("PositionalArgsRejected", func(t *testing.T) {
		_, _, err := run(t, "bfs", "extra")
		require.Error(t, err)
	})
}
