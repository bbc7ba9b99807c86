package cmd

import (
	"fmt"
	"log/slog"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/agentic-research/mediacreation/internal/config"
	"github.com/agentic-research/mediacreation/internal/emit"
	"github.com/agentic-research/mediacreation/internal/generate"
	"github.com/agentic-research/mediacreation/internal/lock"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Validate the definitions and write the generated packages",
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

			files, err := render(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if check {
				stale, err := emit.Stale(osfs.New(cfg.Output), files)
				if err != nil {
					return err
				}
				for _, p := range stale {
					fmt.Fprintf(out, "stale: %s\n", p)
				}
				if len(stale) > 0 {
					return fmt.Errorf("%d generated files are out of date, run traitgen generate", len(stale))
				}
				fmt.Fprintf(out, "%d generated files are up to date\n", len(files))
				return nil
			}

			written, err := write(cfg, files, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Generated %d files in %s (%d changed)\n", len(files), cfg.Output, len(written))
			return nil
		},
	}
	opts.addOutputFlags(cmd)
	cmd.Flags().BoolVar(&check, "check", false, "Report stale generated files without writing")
	return cmd
}

// render builds the catalog and renders every generated file in memory.
func render(cfg *config.Config, logger *slog.Logger) ([]emit.File, error) {
	cat, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	g, err := generate.New(generate.Options{
		ImportPath: cfg.ImportPath,
		Lint:       cfg.Lint,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	return g.Generate(cat)
}

// write stores files below the output directory while holding its lock.
func write(cfg *config.Config, files []emit.File, logger *slog.Logger) ([]string, error) {
	lk, err := lock.TryAcquire(cfg.Output)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lk.Release(); err != nil {
			logger.Warn("release output lock", "error", err)
		}
	}()

	written, err := emit.WriteFiles(osfs.New(cfg.Output), files)
	for _, p := range written {
		logger.Debug("wrote file", "path", p)
	}
	return written, err
}
