package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hydromet/explorer/pkg/catalog"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the model catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tGROUP\tSTATUS")
		for _, d := range catalog.Descriptors() {
			status := "implemented"
			if !d.Implemented {
				status = "coming soon"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.Slug, d.Name, d.Group, status)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
