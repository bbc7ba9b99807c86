package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mediacreation/internal/config"
	"github.com/agentic-research/mediacreation/internal/schema"
)

func newValidateCmd(opts *options) *cobra.Command {
	var baseline string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the definitions without generating code",
		Long: `Validate runs every definition check and reports all failures at once.

With --baseline, the definitions are also compared against an earlier
definition file: removing a published revision, or changing the id,
properties or trait set of one, is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			if baseline != "" {
				old, err := loadBaseline(cfg, baseline)
				if err != nil {
					return fmt.Errorf("baseline: %w", err)
				}
				if err := schema.CheckCompatible(old, cat); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d trait classes, %d specification classes\n",
				len(cat.TraitClasses()), len(cat.SpecificationClasses()))
			return nil
		},
	}
	cmd.Flags().StringVar(&baseline, "baseline", "", "Earlier definition file or pattern to check compatibility against")
	return cmd
}

func loadBaseline(cfg *config.Config, pattern string) (*schema.Catalog, error) {
	old := *cfg
	old.Definitions = pattern
	return loadCatalog(&old)
}
