package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mediacreation/internal/config"
	"github.com/agentic-research/mediacreation/internal/schema"
)

// options holds the flag values shared by every command.
type options struct {
	configPath  string
	definitions string
	output      string
	importPath  string
	noLint      bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "traitgen",
		Short: "Validate trait and specification definitions and generate Go packages",
		Long: `traitgen turns a trait/specification definition file into Go packages:
one package per trait namespace, one per specification namespace.

Settings are read from traitgen.yml when present; flags override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", config.FileName, "Path to the traitgen config file")
	pf.StringVarP(&opts.definitions, "definitions", "d", "", "Definition file or doublestar pattern (overrides config)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newGenerateCmd(opts),
		newValidateCmd(opts),
		newInspectCmd(opts),
		newQueryCmd(opts),
		newIndexCmd(opts),
		newWatchCmd(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// addOutputFlags registers the flags of commands that write generated code.
func (o *options) addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().StringVar(&o.importPath, "import-path", "", "Go import path of the output directory (overrides config)")
	cmd.Flags().BoolVar(&o.noLint, "no-lint", false, "Skip the doc comment lint of generated code")
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// load reads the config file, if any, and applies flag overrides.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, err
	}
	if changed(cmd, "definitions") {
		cfg.Definitions = o.definitions
	}
	if changed(cmd, "output") {
		cfg.Output = o.output
	}
	if changed(cmd, "import-path") {
		cfg.ImportPath = o.importPath
	}
	if changed(cmd, "no-lint") {
		cfg.Lint = !o.noLint
	}
	return cfg, nil
}

func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// loadCatalog loads, merges and validates every definition cfg names.
func loadCatalog(cfg *config.Config) (*schema.Catalog, error) {
	files, err := cfg.DefinitionFiles()
	if err != nil {
		return nil, err
	}
	def, err := schema.LoadFiles(files...)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.SchemaOptions()
	if err != nil {
		return nil, err
	}
	return schema.Build(def, opts)
}
