// Package commands wires the hopweight command tree: cobra commands, viper
// configuration, slog logging and output rendering.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/hopweight/builder"
	"github.com/katalvlaran/hopweight/core"
	"github.com/katalvlaran/hopweight/internal/telemetry"
)

// Configuration keys shared by flags, environment variables and the config file.
const (
	keyConfig    = "config"
	keyGraph     = "graph"
	keySize      = "size"
	keySeed      = "seed"
	keyMaxWeight = "max-weight"
	keySource    = "source"
	keyFormat    = "format"
	keyLogLevel  = "log-level"
	keyLogFormat = "log-format"
	keyTrace     = "trace"
	keyOTLP      = "otlp-endpoint"

	envPrefix = "HOPWEIGHT"

	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	v      *viper.Viper
	logger *slog.Logger
	tel    *telemetry.Provider
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "hopweight",
		Short: "Hop-ordered shortest paths and BFS parent trees over fixture graphs",
		Long: `hopweight computes, from a source vertex, the minimum hop count to every
vertex together with the weight accumulated along that path (hops), or the
breadth-first parent tree of an unweighted graph (bfs).

Graphs come from built-in fixtures: ` + strings.Join(builder.FixtureNames(), ", ") + `.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "Path to a YAML config file")
	pf.String(keyGraph, builder.FixtureSample, "Fixture graph: "+strings.Join(builder.FixtureNames(), "|"))
	pf.Int(keySize, 10, "Fixture size (vertices; grid side length)")
	pf.Int64(keySeed, 1, "Random seed for random fixtures and weights")
	pf.Int64(keyMaxWeight, 10, "Upper bound of generated arc weights")
	pf.String(keySource, "", "Source vertex (default: first vertex of the fixture)")
	pf.String(keyFormat, formatText, "Output format: text|json|yaml")
	pf.String(keyLogLevel, "warn", "Log level: debug|info|warn|error")
	pf.String(keyLogFormat, "text", "Log format: text|json")
	pf.Bool(keyTrace, false, "Write OpenTelemetry spans to stderr")
	pf.String(keyOTLP, "", "Export OpenTelemetry spans to this OTLP/HTTP endpoint")

	root.AddCommand(newHopsCmd(a), newBFSCmd(a))

	return root
}

// init binds flags and environment into viper, reads the optional config
// file and builds the logger.
func (a *app) init(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := a.v.BindPFlag(f.Name, f); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	switch f := a.v.GetString(keyFormat); f {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q (want %s, %s or %s)", f, formatText, formatJSON, formatYAML)
	}

	if lvl := a.v.GetString(keyLogLevel); !validLogLevel(lvl) {
		return fmt.Errorf("unknown log level %q (want debug, info, warn or error)", lvl)
	}
	if lf := a.v.GetString(keyLogFormat); lf != "text" && lf != "json" {
		return fmt.Errorf("unknown log format %q (want text or json)", lf)
	}

	a.logger = newLogger(a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat), cmd.ErrOrStderr())

	tcfg := telemetry.Config{Endpoint: a.v.GetString(keyOTLP)}
	if a.v.GetBool(keyTrace) {
		tcfg.Stdout = cmd.ErrOrStderr()
	}
	tel, err := telemetry.Init(cmd.Context(), tcfg)
	if err != nil {
		return err
	}
	a.tel = tel

	return nil
}

// traced runs fn inside a span named name, records any error on the span and
// flushes the tracer before returning.
func (a *app) traced(cmd *cobra.Command, name string, fn func(ctx context.Context, span trace.Span) error) error {
	ctx, span := a.tel.Tracer.Start(cmd.Context(), name)
	err := fn(ctx, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()

	if serr := a.tel.Shutdown(ctx); serr != nil {
		a.logger.Warn("tracer shutdown failed", slog.Any("error", serr))
	}

	return err
}

// buildFixture builds the configured fixture graph and resolves the source.
func (a *app) buildFixture(weighted bool) (*core.Graph[string], string, error) {
	name := a.v.GetString(keyGraph)
	size := a.v.GetInt(keySize)

	con, err := builder.Named(name, size, weighted)
	if err != nil {
		return nil, "", err
	}

	var gopts []core.GraphOption
	if weighted {
		gopts = append(gopts, core.WithWeighted())
	}
	bopts := []builder.BuilderOption{
		builder.WithSeed(a.v.GetInt64(keySeed)),
		builder.WithUniformWeight(1, a.v.GetInt64(keyMaxWeight)),
	}

	g, err := builder.BuildGraph(gopts, bopts, con)
	if err != nil {
		return nil, "", err
	}

	source := a.v.GetString(keySource)
	if source == "" {
		vertices := g.Vertices()
		if len(vertices) == 0 {
			return nil, "", fmt.Errorf("fixture %q has no vertices", name)
		}
		source = vertices[0]
	}
	a.logger.Info("fixture built",
		slog.String("graph", name),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("arcs", g.ArcCount()),
		slog.String("source", source),
	)

	return g, source, nil
}
