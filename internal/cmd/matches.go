package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cheerioskun/termchart/internal/reader"
)

var matchesWidth int

// matchesCmd represents the matches command
var matchesCmd = &cobra.Command{
	Use:   "matches <input> <term>...",
	Short: "Plot a bar chart of lines matching the given terms",
	Long: `Plot a bar chart of how many input lines contain each given term.

A line containing several of the terms counts once per term.

Examples:
  termchart matches app.log ERROR WARN INFO
  journalctl -b | termchart matches - oom-killer segfault`,
	Args: cobra.MinimumNArgs(2),
	RunE: runMatches,
}

func init() {
	rootCmd.AddCommand(matchesCmd)

	matchesCmd.Flags().IntVarP(&matchesWidth, "width", "w", 110, "use this many characters as terminal width")
}

func runMatches(cmd *cobra.Command, args []string) error {
	rdr := reader.NewValueReader(afero.NewOsFs())
	mb, err := rdr.ReadMatches(args[0], args[1:])
	if err != nil {
		return err
	}
	fmt.Print(newRenderer(matchesWidth).MatchBar(mb))
	return nil
}
