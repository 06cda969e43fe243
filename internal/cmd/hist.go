package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cheerioskun/termchart/internal/chart"
)

var (
	histIntervals int
	histWidth     int
	histPrecision int
	histMin       string
	histMax       string
	histRegex     string
	histLogScale  bool
)

// histCmd represents the hist command
var histCmd = &cobra.Command{
	Use:   "hist [input]",
	Short: "Plot a histogram from input values",
	Long: `Plot a histogram from input values.

Bucket boundaries come from the observed range, or from --min/--max when
given. With --log-scale buckets are spaced geometrically, which requires a
strictly positive minimum.

Examples:
  termchart hist timings.txt
  cat access.log | termchart hist --regex ' time=([0-9.]+)' -
  termchart hist --min 0.001 --log-scale latencies.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHist,
}

func init() {
	rootCmd.AddCommand(histCmd)

	histCmd.Flags().IntVarP(&histIntervals, "intervals", "i", 20, "use no more than this amount of buckets to classify data")
	histCmd.Flags().StringVarP(&histMin, "min", "m", "", "filter out values smaller than this")
	histCmd.Flags().StringVarP(&histMax, "max", "M", "", "filter out values bigger than this")
	histCmd.Flags().StringVarP(&histRegex, "regex", "R", "", "use a regex to capture input values (group named 'value', or group 1)")
	histCmd.Flags().IntVarP(&histWidth, "width", "w", 110, "use this many characters as terminal width")
	histCmd.Flags().IntVarP(&histPrecision, "precision", "p", -1, "decimals to display; negative selects human units")
	histCmd.Flags().BoolVar(&histLogScale, "log-scale", false, "use logarithmic bucket spacing")
}

func runHist(cmd *cobra.Command, args []string) error {
	rdr, min, max, err := newValueReader(histRegex, histMin, histMax)
	if err != nil {
		return err
	}
	values, err := rdr.Read(inputArg(args))
	if err != nil {
		return err
	}

	opts := chart.Options{
		Intervals: histIntervals,
		Min:       min,
		Max:       max,
	}
	if histLogScale {
		opts.Scale = chart.ScaleLog
	}
	if histPrecision >= 0 {
		p := histPrecision
		opts.Precision = &p
	}
	h, err := chart.NewHistogram(values, opts)
	if err != nil {
		return err
	}
	fmt.Print(newRenderer(histWidth).Histogram(h))
	return nil
}
