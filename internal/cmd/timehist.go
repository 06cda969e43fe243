package cmd

import (
	"fmt"
	"regexp"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cheerioskun/termchart/internal/chart"
	"github.com/cheerioskun/termchart/internal/reader"
)

var (
	timehistIntervals int
	timehistWidth     int
	timehistFormat    string
	timehistRegex     string
	timehistDuration  string
	timehistEarlyStop bool
)

// timehistCmd represents the timehist command
var timehistCmd = &cobra.Command{
	Use:   "timehist [input]",
	Short: "Plot a histogram of matches over time",
	Long: `Plot a histogram of how many lines fall into each slice of the
input's time range.

The timestamp format is auto-detected from the first line carrying a
recognizable timestamp and then reused for the whole stream. Use --format
with a Go time layout (for example "2006-01-02 15:04:05") to skip
detection. Lines without a timestamp are skipped.

Examples:
  termchart timehist /var/log/nginx/access.log
  termchart timehist --regex 'GET /api' --duration 30m access.log
  journalctl -o short-iso | termchart timehist -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimehist,
}

func init() {
	rootCmd.AddCommand(timehistCmd)

	timehistCmd.Flags().IntVarP(&timehistIntervals, "intervals", "i", 20, "use no more than this amount of buckets to classify data")
	timehistCmd.Flags().StringVarP(&timehistFormat, "format", "f", "", "parse timestamps with this Go time layout instead of guessing")
	timehistCmd.Flags().StringVarP(&timehistRegex, "regex", "R", "", "only count lines where this regex matches")
	timehistCmd.Flags().IntVarP(&timehistWidth, "width", "w", 110, "use this many characters as terminal width")
	timehistCmd.Flags().StringVar(&timehistDuration, "duration", "", "cap the time interval at this duration (example: 3h5m)")
	timehistCmd.Flags().BoolVar(&timehistEarlyStop, "early-stop", false, "with --duration, assume monotonic times and stop reading at the cap")
}

func runTimehist(cmd *cobra.Command, args []string) error {
	rdr := reader.NewTimeReader(afero.NewOsFs())
	if timehistRegex != "" {
		re, err := regexp.Compile(timehistRegex)
		if err != nil {
			return fmt.Errorf("invalid regex %q: %w", timehistRegex, err)
		}
		rdr.SetRegex(re)
	}
	if timehistFormat != "" {
		rdr.SetLayout(timehistFormat)
	}
	if timehistDuration != "" {
		d, err := time.ParseDuration(timehistDuration)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", timehistDuration, err)
		}
		rdr.SetDuration(d, timehistEarlyStop)
	}

	ts, err := rdr.Read(inputArg(args))
	if err != nil {
		return err
	}
	th, err := chart.NewTimeHistogram(ts, timehistIntervals)
	if err != nil {
		return err
	}
	fmt.Print(newRenderer(timehistWidth).TimeHistogram(th))
	return nil
}
