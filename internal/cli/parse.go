package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eddmann/daterange-cli/internal/daterange"
)

var parseCmd = &cobra.Command{
	Use:   "parse <command>",
	Short: "Parse a relative time span command into a concrete range",
	Long: `Parse a relative time span command into a concrete start/end range.

Grammar: [last|next] [quantity] unit

Direction defaults to last and quantity to 1. Units: second, minute, hour,
day, week, month, year (plural forms accepted, case-insensitive).

Examples:
  daterange parse "1 day"
  daterange parse "last 3 hours" --timezone Europe/London
  daterange parse "next 2 weeks" --format human`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

// RangeResult is a resolved range as presented to the caller.
type RangeResult struct {
	Start           string  `json:"start"`
	End             string  `json:"end"`
	Command         string  `json:"command"`
	Timezone        string  `json:"timezone"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func runParse(cmd *cobra.Command, args []string) error {
	parsed, err := daterange.Parse(args[0])
	if err != nil {
		return err
	}

	tz := GetTimezone()
	rng, err := daterange.ComputeRange(parsed, tz)
	if err != nil {
		return err
	}

	display := tz
	if display == "" {
		display = "UTC"
	}

	return Output(RangeResult{
		Start:           rng.Start.Format(time.RFC3339),
		End:             rng.End.Format(time.RFC3339),
		Command:         args[0],
		Timezone:        display,
		DurationSeconds: rng.Duration().Seconds(),
	})
}
