package cli

import (
	"github.com/spf13/cobra"

	"github.com/eddmann/daterange-cli/internal/daterange"
)

var grammarCmd = &cobra.Command{
	Use:   "grammar",
	Short: "Show the accepted command grammar with examples",
	RunE:  runGrammar,
}

func init() {
	rootCmd.AddCommand(grammarCmd)
}

// GrammarExample documents one accepted command form.
type GrammarExample struct {
	Command     string `json:"command"`
	Direction   string `json:"direction"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

var grammarExamples = []string{
	"1 day",
	"day",
	"last 3 hours",
	"last 30 minutes",
	"next 2 weeks",
	"next month",
	"last 1 year",
}

func runGrammar(cmd *cobra.Command, args []string) error {
	examples := make([]GrammarExample, 0, len(grammarExamples))
	for _, text := range grammarExamples {
		parsed, err := daterange.Parse(text)
		if err != nil {
			return err
		}
		examples = append(examples, GrammarExample{
			Command:     text,
			Direction:   string(parsed.Direction),
			Quantity:    parsed.Quantity,
			Unit:        string(parsed.Unit),
			Description: describe(text, parsed),
		})
	}
	return Output(examples)
}

func describe(text string, parsed daterange.Command) string {
	switch {
	case text == "day":
		return "bare unit word, direction and quantity default"
	case parsed.Direction == daterange.DirectionNext:
		return "forward from now"
	default:
		return "backward from now"
	}
}
