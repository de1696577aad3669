package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mjdavy/mandelbrot/pkg/plane"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the built-in named regions",
	Long: `List the named viewport presets that can be rendered with --region,
together with the plane corners each one covers.

Examples:
  # Show all presets
  mandelbrot regions

  # Render one of them
  mandelbrot -o seahorse.png -r seahorse`,
	Run: runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tUPPER LEFT\tLOWER RIGHT\tDESCRIPTION")
	for _, r := range plane.Regions {
		fmt.Fprintf(w, "%s\t%v\t%v\t%s\n", r.Name, r.View.UpperLeft, r.View.LowerRight, r.Description)
	}
	w.Flush()
}
