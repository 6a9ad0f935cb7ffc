// Package main provides the treap command, which replays scripts of
// insert, delete and lookup operations against a treap and prints it.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/g-m-twostay/treap/Queues"
	"github.com/g-m-twostay/treap/Trees"
	"github.com/g-m-twostay/treap/internal/config"
	"github.com/g-m-twostay/treap/internal/script"
)

// Version is set with -ldflags "-X main.Version=...".
var Version = "dev"

type options struct {
	cfgFile string
	verbose bool
	noColor bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	rootCmd := &cobra.Command{
		Use:   "treap",
		Short: "Run treap operation scripts",
		Long: `treap builds a randomized binary search tree from a script of operations
and prints the results and the tree shape.

Script lines:
  add <key> [priority]
  del <key>
  find <key>
  print`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.cfgFile, "config", "", "config file (default is ./.treap.yaml or $HOME/.treap.yaml)")
	pf.Uint64("seed", config.DefaultSeed, "seed of the priority source, 0 for a random one")
	pf.String("format", config.DefaultFormat, "tree dump format: indent or tree")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log every operation")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable coloured results")

	rootCmd.AddCommand(newDemoCommand(&opts))
	rootCmd.AddCommand(newRunCommand(&opts))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "treap %s\n", Version)
		},
	}
}

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return execute(cmd, opts, strings.NewReader(script.DemoScript))
		},
	}
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [FILE]",
		Short: "Run a script file, or standard input when FILE is - or missing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return execute(cmd, opts, cmd.InOrStdin())
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			return execute(cmd, opts, f)
		},
	}
}

func newLogger(w io.Writer, cfg *config.Config, verbose bool) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func newTree(seed uint64) *Trees.Treap[int] {
	if seed == 0 {
		return Trees.New[int]()
	}
	return Trees.NewSeeded[int](seed)
}

func execute(cmd *cobra.Command, opts *options, src io.Reader) error {
	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg, opts.verbose)
	if err != nil {
		return err
	}

	var q *Queues.ArrayQueue[script.Op]
	if q, err = script.Parse(src); err != nil {
		return err
	}
	logger.Debug("script parsed", slog.Uint64("ops", uint64(q.Size())), slog.Uint64("seed", cfg.Seed))

	r := &script.Runner{
		Tree:   newTree(cfg.Seed),
		Out:    cmd.OutOrStdout(),
		Log:    logger,
		Sketch: cfg.Format == config.FormatTree,
		Color:  cfg.Color && !opts.noColor,
	}
	_, err = r.Run(cmd.Context(), q)
	return err
}
