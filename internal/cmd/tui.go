package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/cheerioskun/termchart/internal/chart"
	"github.com/cheerioskun/termchart/ui/histview"
)

var (
	tuiIntervals int
	tuiPrecision int
	tuiMin       string
	tuiMax       string
	tuiRegex     string
	tuiLogScale  bool
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui [input]",
	Short: "Explore a histogram interactively",
	Long: `Explore a histogram of the input values interactively.

The input is read once up front; keys then rebucket it in place:
  +/-    change the interval count
  l      toggle logarithmic bucketing
  q      quit

Examples:
  termchart tui latencies.txt
  termchart tui --regex ' time=([0-9.]+)' access.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().IntVarP(&tuiIntervals, "intervals", "i", 20, "use no more than this amount of buckets to classify data")
	tuiCmd.Flags().StringVarP(&tuiMin, "min", "m", "", "filter out values smaller than this")
	tuiCmd.Flags().StringVarP(&tuiMax, "max", "M", "", "filter out values bigger than this")
	tuiCmd.Flags().StringVarP(&tuiRegex, "regex", "R", "", "use a regex to capture input values (group named 'value', or group 1)")
	tuiCmd.Flags().IntVarP(&tuiPrecision, "precision", "p", -1, "decimals to display; negative selects human units")
	tuiCmd.Flags().BoolVar(&tuiLogScale, "log-scale", false, "start with logarithmic bucket spacing")
}

func runTUI(cmd *cobra.Command, args []string) error {
	rdr, min, max, err := newValueReader(tuiRegex, tuiMin, tuiMax)
	if err != nil {
		return err
	}
	values, err := rdr.Read(inputArg(args))
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("exploring %s: %w", inputArg(args), chart.ErrNoData)
	}

	opts := histview.Options{
		Intervals: tuiIntervals,
		Min:       min,
		Max:       max,
	}
	if tuiLogScale {
		opts.Scale = chart.ScaleLog
	}
	if tuiPrecision >= 0 {
		p := tuiPrecision
		opts.Precision = &p
	}

	program := tea.NewProgram(histview.NewModel(values, opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running interactive view: %w", err)
	}
	return nil
}
