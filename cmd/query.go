package cmd

import (
	"fmt"

	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/mediacreation/internal/schema"
)

func newQueryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <jsonpath>",
		Short: "Evaluate a JSONPath expression against the definition files",
		Example: `  traitgen query '$.traits.*.members.*.id'
  traitgen query "$.specifications.twoDimensional.members.Image.versions['2'].traits[*].name"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			files, err := cfg.DefinitionFiles()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, path := range files {
				doc, err := schema.LoadDocument(path)
				if err != nil {
					return err
				}
				results, err := schema.Query(doc, args[0])
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintln(out, oj.JSON(r, &ojg.Options{Sort: true}))
				}
			}
			return nil
		},
	}
}
