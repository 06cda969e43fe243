package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheerioskun/termchart/internal/chart"
)

var (
	plotWidth     int
	plotHeight    int
	plotPrecision int
	plotMin       string
	plotMax       string
	plotRegex     string
)

// plotCmd represents the plot command
var plotCmd = &cobra.Command{
	Use:   "plot [input]",
	Short: "Plot input values over their position in the stream",
	Long: `Plot input values over their position in the stream.

Consecutive values are averaged into as many chunks as the terminal is
wide, so long streams still fit on one screen.

Examples:
  termchart plot memory-usage.txt
  vmstat 1 | termchart plot --regex '\s+(\d+)\s+\d+\s*$' --height 20 -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().IntVarP(&plotWidth, "width", "w", 110, "use this many characters as terminal width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 40, "use this many rows for the plot")
	plotCmd.Flags().StringVarP(&plotMin, "min", "m", "", "filter out values smaller than this")
	plotCmd.Flags().StringVarP(&plotMax, "max", "M", "", "filter out values bigger than this")
	plotCmd.Flags().StringVarP(&plotRegex, "regex", "R", "", "use a regex to capture input values (group named 'value', or group 1)")
	plotCmd.Flags().IntVarP(&plotPrecision, "precision", "p", -1, "decimals to display; negative selects human units")
}

func runPlot(cmd *cobra.Command, args []string) error {
	rdr, _, _, err := newValueReader(plotRegex, plotMin, plotMax)
	if err != nil {
		return err
	}
	values, err := rdr.Read(inputArg(args))
	if err != nil {
		return err
	}

	var precision *int
	if plotPrecision >= 0 {
		p := plotPrecision
		precision = &p
	}
	plot, err := chart.NewXYPlot(values, plotWidth, plotHeight, precision)
	if err != nil {
		return err
	}
	fmt.Print(newRenderer(plotWidth).XYPlot(plot))
	return nil
}
