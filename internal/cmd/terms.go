package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/cheerioskun/termchart/internal/reader"
)

var (
	termsWidth int
	termsLines int
	termsRegex string
)

// termsCmd represents the common-terms command
var termsCmd = &cobra.Command{
	Use:   "common-terms [input]",
	Short: "Plot a bar chart of the most frequent captured terms",
	Long: `Plot a bar chart of the terms most frequently captured by a regex.

The regex capture group named 'value' (or group 1) is tallied per line;
the top entries are drawn, highest first. The default regex captures the
whole line.

Examples:
  termchart common-terms --lines 5 urls.txt
  awk '{print $1}' access.log | termchart common-terms -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTerms,
}

func init() {
	rootCmd.AddCommand(termsCmd)

	termsCmd.Flags().StringVarP(&termsRegex, "regex", "R", "(.*)", "use a regex to capture the term (group named 'value', or group 1)")
	termsCmd.Flags().IntVarP(&termsLines, "lines", "l", 10, "number of terms to display")
	termsCmd.Flags().IntVarP(&termsWidth, "width", "w", 110, "use this many characters as terminal width")
}

func runTerms(cmd *cobra.Command, args []string) error {
	if termsLines < 1 {
		return fmt.Errorf("lines should be a positive number, got %d", termsLines)
	}
	re, err := regexp.Compile(termsRegex)
	if err != nil {
		return fmt.Errorf("invalid regex %q: %w", termsRegex, err)
	}
	rdr := reader.NewValueReader(afero.NewOsFs())
	rdr.SetRegex(re)
	ct, err := rdr.ReadTerms(inputArg(args), termsLines)
	if err != nil {
		return err
	}
	fmt.Print(newRenderer(termsWidth).CommonTerms(ct))
	return nil
}
