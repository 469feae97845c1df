package main

import (
	"github.com/spf13/cobra"

	"github.com/hydromet/explorer/pkg/catalog"
)

// newSeriesCommand builds one evaluation subcommand from a series
// model's descriptor: a float flag per parameter (defaulted from the
// catalog), the grid flags, and the output format flag. The command set
// stays in lockstep with the catalog because it is generated from it.
func newSeriesCommand(kind catalog.Kind) *cobra.Command {
	d, _ := catalog.Lookup(kind)

	values := make(map[string]*float64, len(d.Params))
	var start, end float64
	var points int
	var output, solver string

	cmd := &cobra.Command{
		Use:   d.Slug,
		Short: "Evaluate the " + d.Name + " model over a time grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := make(map[string]float64, len(values))
			for key, v := range values {
				params[key] = *v
			}
			result, err := catalog.Evaluate(catalog.Request{
				Kind:   kind,
				Params: params,
				Grid:   &catalog.GridSpec{Start: start, End: end, Points: points},
				Solver: solver,
			})
			if err != nil {
				return err
			}
			return writeSeries(cmd.OutOrStdout(), result.Series, output)
		},
	}

	for _, p := range d.Params {
		usage := p.Name
		if p.Unit != "" {
			usage += " (" + p.Unit + ")"
		}
		values[p.Key] = cmd.Flags().Float64(p.Key, p.Default, usage)
	}
	cmd.Flags().Float64Var(&start, "start", d.Grid.Start, "first grid time (hours)")
	cmd.Flags().Float64Var(&end, "end", d.Grid.End, "last grid time (hours)")
	cmd.Flags().IntVar(&points, "points", d.Grid.Points, "number of grid points")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, csv, or json")
	if kind == catalog.KindGreenAmpt {
		cmd.Flags().StringVar(&solver, "solver", "explicit", "cumulative infiltration solver: explicit or implicit")
	}
	return cmd
}

func init() {
	rootCmd.AddCommand(
		newSeriesCommand(catalog.KindGreenAmpt),
		newSeriesCommand(catalog.KindPhilip),
		newSeriesCommand(catalog.KindHorton),
	)
}
