package cmd

import (
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cheerioskun/termchart/internal/reader"
	"github.com/cheerioskun/termchart/internal/render"
	"github.com/cheerioskun/termchart/internal/utils"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "termchart",
	Short: "Draw low-fi statistical charts in the terminal",
	Long: `termchart draws statistical charts from streams of text lines:
value histograms, time-bucketed histograms, XY plots, match counts and
term frequencies.

Input is a file path or "-" for standard input. Values are one float per
line, or captured with --regex from arbitrary lines.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.SetVerbose(viper.GetBool("verbose"))
	},
}

// Execute runs the CLI. Exit code 1 signals a data or processing error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("color", "c", "auto", "use colors in the output (auto|no|yes)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "be more verbose")

	// Bind flags to viper
	viper.BindPFlag("color", rootCmd.PersistentFlags().Lookup("color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// colorEnabled resolves the color mode once per run; the result is threaded
// into the renderer at construction and never toggled afterwards.
func colorEnabled() bool {
	switch viper.GetString("color") {
	case "yes":
		return true
	case "no":
		return false
	default:
		if os.Getenv("TERM") == "dumb" {
			return false
		}
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

func newRenderer(width int) *render.Renderer {
	return render.New(render.Config{Width: width, Color: colorEnabled()})
}

// inputArg resolves the optional input positional; missing means stdin.
func inputArg(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// parseBounds parses the optional --min/--max flag strings.
func parseBounds(minStr, maxStr string) (*float64, *float64, error) {
	var min, max *float64
	if minStr != "" {
		v, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid minimum %q: %w", minStr, err)
		}
		min = &v
	}
	if maxStr != "" {
		v, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid maximum %q: %w", maxStr, err)
		}
		max = &v
	}
	if min != nil && max != nil && *min > *max {
		return nil, nil, fmt.Errorf("minimum %v should be smaller than maximum %v", *min, *max)
	}
	return min, max, nil
}

// newValueReader assembles a value reader from the shared flag trio.
func newValueReader(regexStr, minStr, maxStr string) (*reader.ValueReader, *float64, *float64, error) {
	r := reader.NewValueReader(afero.NewOsFs())
	min, max, err := parseBounds(minStr, maxStr)
	if err != nil {
		return nil, nil, nil, err
	}
	r.SetRange(min, max)
	if regexStr != "" {
		re, err := regexp.Compile(regexStr)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid regex %q: %w", regexStr, err)
		}
		r.SetRegex(re)
	}
	return r, min, max, nil
}
