package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/agentic-research/mediacreation/internal/watch"
)

func newWatchCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the definition files change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := opts.logger(cmd)

			regenerate := func(ctx context.Context, changed []string) error {
				files, err := render(cfg, logger)
				if err != nil {
					return err
				}
				written, err := write(cfg, files, logger)
				if err != nil {
					return err
				}
				logger.Info("regenerated", "changed", changed, "written", len(written))
				return nil
			}
			// A broken definition at startup is reported, not fatal: the
			// next save retries.
			if err := regenerate(cmd.Context(), nil); err != nil {
				logger.Error("initial generation failed", "error", err)
			}

			root, pattern := watchTarget(cfg.Definitions)
			w, err := watch.New(watch.Config{Root: root, Pattern: pattern, Logger: logger})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes to %s\n", root, pattern)
			return w.Run(ctx, regenerate)
		},
	}
	opts.addOutputFlags(cmd)
	return cmd
}

// watchTarget splits a definitions path or pattern into the directory to
// watch and the pattern to match below it.
func watchTarget(definitions string) (root, pattern string) {
	if !strings.ContainsAny(definitions, "*?[{") {
		return filepath.Dir(definitions), filepath.Base(definitions)
	}
	base, rest := doublestar.SplitPattern(filepath.ToSlash(definitions))
	return filepath.FromSlash(base), rest
}
