package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eddmann/daterange-cli/internal/daterange"
)

var zoneCmd = &cobra.Command{
	Use:   "zone [identifier]",
	Short: "Inspect a timezone identifier",
	Long: `Inspect a timezone identifier: resolve it, report its current UTC offset,
abbreviation and local time. With no argument the --timezone flag (or
$DATERANGE_TZ, or UTC) is inspected.

Useful as a quick validity check before pointing commands at a zone.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runZone,
}

func init() {
	rootCmd.AddCommand(zoneCmd)
}

// ZoneReport describes a resolved timezone at the current instant.
type ZoneReport struct {
	Timezone     string  `json:"timezone"`
	Abbreviation string  `json:"abbreviation"`
	OffsetHours  float64 `json:"offset_hours"`
	LocalTime    string  `json:"local_time"`
}

func runZone(cmd *cobra.Command, args []string) error {
	identifier := GetTimezone()
	if len(args) == 1 {
		identifier = args[0]
	}

	ctx, err := daterange.ResolveZone(identifier)
	if err != nil {
		return err
	}

	return Output(ZoneReport{
		Timezone:     ctx.Location.String(),
		Abbreviation: ctx.Abbreviation(),
		OffsetHours:  ctx.Offset().Hours(),
		LocalTime:    ctx.Now.Format(time.RFC3339),
	})
}
