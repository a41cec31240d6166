package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// solveFlags holds every flag of the solve command.
type solveFlags struct {
	instanceFlags
	algorithm string
	config    string
	format    string
	k         int
	timeLimit time.Duration
	verbose   bool
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build an instance and approximate its Steiner tree",
		Long: `Build a seeded synthetic graph, pick terminals and run one algorithm.

Algorithms:
  rzloss      loss-contracting full components (uses --k)
  zelikovsky  triple contraction (options from --config)
  kou         Kou-Markowsky-Berman heuristic
  takahashi   Takahashi-Matsuyama heuristic rooted at the first terminal

Options for rzloss and zelikovsky are read from the YAML file given by
--config; --k and --time-limit override it when set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.topology, "topology", "random", "graph shape: path, cycle, star, complete, grid or random")
	fl.IntVar(&f.n, "n", 50, "number of vertices (all topologies except grid)")
	fl.IntVar(&f.rows, "rows", 6, "grid rows")
	fl.IntVar(&f.cols, "cols", 6, "grid columns")
	fl.Float64Var(&f.p, "p", 0.1, "edge probability for the random topology")
	fl.Int64Var(&f.seed, "seed", 1, "seed for weights, random edges and terminal choice")
	fl.Int64Var(&f.minWeight, "min-weight", 1, "smallest edge weight")
	fl.Int64Var(&f.maxWeight, "max-weight", 10, "largest edge weight")
	fl.IntVar(&f.terminals, "terminals", 8, "number of randomly chosen terminals")
	fl.StringArrayVar(&f.named, "terminal", nil, "explicit terminal vertex IDs (repeatable, overrides --terminals)")
	fl.StringVarP(&f.algorithm, "algorithm", "a", "zelikovsky", "rzloss, zelikovsky, kou or takahashi")
	fl.StringVarP(&f.config, "config", "c", "", "YAML options file")
	fl.StringVarP(&f.format, "format", "o", "text", "report format: text or yaml")
	fl.IntVar(&f.k, "k", steiner.DefaultMaxComponentSize, "maximum component size for rzloss")
	fl.DurationVar(&f.timeLimit, "time-limit", steiner.DefaultTimeLimit, "soft time budget per call")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log algorithm phases to stderr")

	return cmd
}

func runSolve(cmd *cobra.Command, f *solveFlags) error {
	runID := uuid.NewString()
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With(slog.String("run", runID))

	opts, err := loadOptions(cmd, f)
	if err != nil {
		return err
	}
	opts.Logger = log

	g, terms, err := buildInstance(f.instanceFlags)
	if err != nil {
		return err
	}
	log.Info("instance ready",
		slog.String("topology", f.topology),
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("terminals", len(terms)))

	var (
		w    int64
		tree *core.Graph
		st   *steiner.Stats
	)
	switch f.algorithm {
	case "rzloss":
		a := steiner.NewRZLoss(steiner.WithOptions(opts))
		w, tree, err = a.Call(g, terms, nil)
		s := a.Stats()
		st = &s
	case "zelikovsky":
		a := steiner.NewZelikovsky(steiner.WithOptions(opts))
		w, tree, err = a.Call(g, terms, nil)
		s := a.Stats()
		st = &s
	case "kou":
		w, tree, err = steiner.Kou(g, terms)
	case "takahashi":
		w, tree, err = steiner.Takahashi(g, terms, terms[0])
	default:
		return fmt.Errorf("%w: algorithm %q", errBadFlag, f.algorithm)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", f.algorithm, err)
	}

	r := newReport(runID, f.algorithm, g, terms, w, tree)
	if st != nil {
		r.withStats(*st, opts)
	}

	return r.write(cmd.OutOrStdout(), f.format)
}

// loadOptions reads --config over the defaults and applies the explicit
// --k and --time-limit flags on top.
func loadOptions(cmd *cobra.Command, f *solveFlags) (steiner.Options, error) {
	opts := steiner.DefaultOptions()
	if f.config != "" {
		data, err := os.ReadFile(f.config)
		if err != nil {
			return steiner.Options{}, fmt.Errorf("read config: %w", err)
		}
		if opts, err = steiner.ParseOptions(data); err != nil {
			return steiner.Options{}, fmt.Errorf("config %s: %w", f.config, err)
		}
	}
	if cmd.Flags().Changed("k") {
		opts.MaxComponentSize = f.k
	}
	if cmd.Flags().Changed("time-limit") {
		opts.TimeLimit = f.timeLimit
	}
	if err := opts.Validate(); err != nil {
		return steiner.Options{}, err
	}

	return opts, nil
}
