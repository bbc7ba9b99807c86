package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mediacreation/internal/index"
)

func newIndexCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "index <output.db>",
		Short: "Export the catalog into a SQLite database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			db, err := index.Open(args[0])
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if _, err := db.Export(cmd.Context(), cat); err != nil {
				return err
			}
			stats, err := db.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s: %d traits, %d properties, %d specifications (export %s)\n",
				stats.Package, args[0], stats.Traits, stats.Properties, stats.Specifications, stats.ExportID)
			return nil
		},
	}
}
