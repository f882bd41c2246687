package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/syssam/countrygen/compiler/gen"
)

func (a *app) showCmd() *cobra.Command {
	var subdivisions bool
	cmd := &cobra.Command{
		Use:   "show CODE [SUBDIVISION]",
		Short: "Print a country or one of its subdivisions as generated",
		Long: `show looks a country up by its alpha2 or alpha3 code, the way the generated
fromAlpha2 and fromAlpha3 helpers do, and prints the generated record. With a
second argument it prints the subdivision with that code.`,
		Example: `  countrygen show US
  countrygen show USA --subdivisions
  countrygen show US NY`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			c, ok := lookup(g, args[0])
			if !ok {
				return fmt.Errorf("no country with code %q", args[0])
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			enc.SetIndent(2)
			switch {
			case len(args) == 2:
				s, ok := g.FindSubdivisionByCode(c, args[1])
				if !ok {
					return fmt.Errorf("%s has no subdivision %q", c.Alpha2, args[1])
				}
				return enc.Encode(s)
			case subdivisions:
				return enc.Encode(g.SubdivisionsOf(c))
			}
			return enc.Encode(c)
		},
	}
	cmd.Flags().BoolVar(&subdivisions, "subdivisions", false, "print the subdivision list of the country")
	return cmd
}

func lookup(g *gen.Graph, code string) (*gen.CountryRecord, bool) {
	if len(code) == 3 {
		return g.FromAlpha3(code)
	}
	return g.FromAlpha2(code)
}
