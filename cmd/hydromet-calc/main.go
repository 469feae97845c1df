// hydromet-calc evaluates the explorer's models from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hydromet/explorer/internal/constants"
)

var rootCmd = &cobra.Command{
	Use:     "hydromet-calc",
	Short:   "Evaluate infiltration and runoff models from the command line",
	Long:    "Evaluates the same model catalog the explorer serves over HTTP: Green-Ampt, Philip, and Horton infiltration curves and the SCS Curve Number runoff method.",
	Version: constants.Version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
