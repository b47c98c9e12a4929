package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/domset/cache"
	"github.com/katalvlaran/domset/core"
	"github.com/katalvlaran/domset/domset"
	"github.com/katalvlaran/domset/internal/config"
	"github.com/katalvlaran/domset/loader"
	"github.com/katalvlaran/domset/metrics"
	"github.com/katalvlaran/domset/satcheck"
)

type solveFlags struct {
	configPath      string
	timeLimit       time.Duration
	bound           string
	seedGreedy      bool
	split           bool
	verify          bool
	labels          bool
	logLevel        string
	metricsTextfile string
	cacheDir        string
	writeConfig     string
}

func newSolveCmd(logger *log.Logger) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find a minimum dominating set of an edge-list graph",
		Long: `Reads a graph in edge-list format (vertex count, then one "u v" pair per
line; "-" or no argument reads stdin) and prints SOLUTION followed by the
selected vertices, one per line. With --write-config the effective
configuration is saved as YAML and nothing is solved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("debug") {
				logger.SetLevel(cfg.Level())
			}
			if f.writeConfig != "" {
				if err = cfg.Save(f.writeConfig); err != nil {
					return err
				}
				logger.WithField("path", f.writeConfig).Info("config written")
				return nil
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), logger, path, cfg)
		},
	}

	bindSolveFlags(cmd.Flags(), &f)

	return cmd
}

func bindSolveFlags(flags *pflag.FlagSet, f *solveFlags) {
	flags.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	flags.DurationVar(&f.timeLimit, "time-limit", 0, "stop the search after this long (0 = unlimited)")
	flags.StringVar(&f.bound, "bound", "cover", "pruning policy: none, simple or cover")
	flags.BoolVar(&f.seedGreedy, "seed-greedy", true, "seed the search with a greedy solution")
	flags.BoolVar(&f.split, "split", false, "solve each connected component separately")
	flags.BoolVar(&f.verify, "verify", false, "certify optimality with the SAT oracle")
	flags.BoolVar(&f.labels, "labels", false, "print vertex labels instead of indices")
	flags.StringVar(&f.logLevel, "log-level", "info", "log level (panic, fatal, error, warn, info, debug, trace)")
	flags.StringVar(&f.cacheDir, "cache", "", "directory of a result cache; optimal results are reused")
	flags.StringVar(&f.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file")
	flags.StringVar(&f.writeConfig, "write-config", "", "save the effective config to this YAML file and exit")
}

// resolveConfig loads the file config and lets explicitly set flags win.
func resolveConfig(cmd *cobra.Command, f solveFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configPath != "" {
		cfg, _, err = config.LoadFromPath(f.configPath)
	} else {
		cfg, _, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("time-limit") {
		cfg.TimeLimit = config.Duration(f.timeLimit)
	}
	if changed("bound") {
		cfg.Bound = f.bound
	}
	if changed("seed-greedy") {
		on := f.seedGreedy
		cfg.SeedGreedy = &on
	}
	if changed("split") {
		cfg.Split = f.split
	}
	if changed("verify") {
		cfg.Verify = f.verify
	}
	if changed("labels") {
		cfg.Labels = f.labels
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("cache") {
		cfg.CacheDir = f.cacheDir
	}
	if changed("metrics-textfile") {
		cfg.MetricsTextfile = f.metricsTextfile
	}

	return cfg, cfg.Validate()
}

func runSolve(ctx context.Context, in io.Reader, out io.Writer, logger *log.Logger, path string, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var (
		g   *core.Graph
		st  loader.Stats
		err error
	)
	if path == "-" {
		g, st, err = loader.Parse(in)
	} else {
		g, st, err = loader.LoadFile(path)
	}
	if err != nil {
		return err
	}
	entry := logger.WithFields(log.Fields{"file": path, "vertices": g.Order(), "edges": g.EdgeCount()})
	if st.Declared != g.Order() {
		entry.WithField("declared", st.Declared).Warn("header count differs from labels seen")
	}
	if st.DroppedLoops > 0 {
		entry.WithField("loops", st.DroppedLoops).Debug("self-loops dropped")
	}

	var store *cache.Cache
	if cfg.CacheDir != "" {
		if store, err = cache.Open(cfg.CacheDir); err != nil {
			return err
		}
		defer store.Close()

		res, hit, err := store.Get(g)
		if err != nil {
			return err
		}
		if hit && satcheck.Dominates(g, res.Solution) {
			entry.WithField("size", res.Size).Info("cache hit")
			if err = printSolution(out, res, cfg.Labels); err != nil {
				return err
			}
			if cfg.Verify {
				return verify(ctx, entry, g, res)
			}
			return nil
		}
	}

	opts, err := cfg.SolveOptions()
	if err != nil {
		return err
	}
	opts = append(opts, domset.WithContext(ctx), domset.WithLogger(logger))
	var rec *metrics.Recorder
	if cfg.MetricsTextfile != "" {
		rec = metrics.NewRecorder()
		opts = append(opts, rec.Option(nil))
	}

	solve := domset.Solve
	if cfg.Split {
		solve = domset.SolveComponents
	}
	res, solveErr := solve(g, opts...)
	if rec != nil {
		rec.Observe(res, solveErr)
		if err = rec.WriteTextfile(cfg.MetricsTextfile); err != nil {
			entry.WithError(err).Error("writing metrics textfile")
		}
	}
	entry.WithFields(log.Fields{
		"size":    res.Size,
		"nodes":   res.Nodes,
		"optimal": res.Optimal,
		"elapsed": res.Elapsed,
	}).Info("search finished")

	if solveErr != nil && res.Solution == nil {
		return solveErr
	}
	if err = printSolution(out, res, cfg.Labels); err != nil {
		return err
	}
	if solveErr != nil {
		return fmt.Errorf("best solution is not proven optimal: %w", solveErr)
	}

	if cfg.Verify {
		if err = verify(ctx, entry, g, res); err != nil {
			return err
		}
	}
	if store != nil {
		if err = store.Put(g, res); err != nil {
			entry.WithError(err).Warn("caching result")
		}
	}

	return nil
}

// verify certifies res with the SAT oracle. An unfinished check only warns.
func verify(ctx context.Context, entry *log.Entry, g *core.Graph, res domset.Result) error {
	err := satcheck.Verify(ctx, g, res.Solution)
	switch {
	case err == nil:
		entry.Info("solution verified minimum")
	case errors.Is(err, satcheck.ErrIncomplete):
		entry.WithError(err).Warn("verification did not finish")
	default:
		return fmt.Errorf("verification failed: %w", err)
	}
	return nil
}

func printSolution(w io.Writer, res domset.Result, labels bool) error {
	if _, err := fmt.Fprintln(w, "SOLUTION"); err != nil {
		return err
	}
	for i, v := range res.Solution {
		var err error
		if labels {
			_, err = fmt.Fprintln(w, res.Labels[i])
		} else {
			_, err = fmt.Fprintln(w, int(v))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
