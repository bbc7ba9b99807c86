package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentic-research/mediacreation/internal/schema"
	"github.com/agentic-research/mediacreation/specification"
)

func newInspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "List trait and specification classes, ids, aliases and refinements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			printCatalog(cmd.OutOrStdout(), cat)
			return nil
		},
	}
}

func printCatalog(w io.Writer, cat *schema.Catalog) {
	fmt.Fprintln(w, "Traits:")
	for _, ns := range cat.TraitNamespaces {
		for _, f := range ns.Families {
			for _, c := range f.Versions {
				props := make([]string, len(c.Properties))
				for i, p := range c.Properties {
					props[i] = p.Key + ":" + p.Kind.DefinitionName()
				}
				fmt.Fprintf(w, "  %s.%s  id=%s  [%s]\n", ns.Name, c.Name(), c.ID, strings.Join(props, ", "))
			}
			fmt.Fprintf(w, "  %s.%s = %s\n", ns.Name, f.ShortName(), f.Latest().Name())
		}
	}

	classes := make([]specification.Class, 0, len(cat.SpecificationClasses()))
	for _, c := range cat.SpecificationClasses() {
		classes = append(classes, specification.Class{
			Name:      c.Name(),
			ShortName: c.Family.ShortName(),
			Version:   c.Version,
			TraitSet:  c.TraitSet(),
		})
	}
	idx := specification.NewIndex(classes...)

	fmt.Fprintln(w, "Specifications:")
	i := 0
	for _, ns := range cat.SpecificationNamespaces {
		for _, f := range ns.Families {
			for _, c := range f.Versions {
				fmt.Fprintf(w, "  %s.%s  (%s)  %s\n", ns.Name, c.Name(), c.Kind(), classes[i].TraitSet)
				if refines := idx.Refines(classes[i]); len(refines) > 0 {
					names := make([]string, len(refines))
					for k, r := range refines {
						names[k] = r.Name
					}
					fmt.Fprintf(w, "    refines: %s\n", strings.Join(names, ", "))
				}
				i++
			}
			fmt.Fprintf(w, "  %s.%s = %s\n", ns.Name, f.ShortName(), f.Latest().Name())
		}
	}
}
