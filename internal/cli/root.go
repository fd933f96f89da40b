package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"

	// Global flags
	formatFlag   string
	fieldsFlag   string
	noHeaderFlag bool
	timezoneFlag string
	verbose      bool

	// Cached resolved format
	resolvedFormat Format
)

var rootCmd = &cobra.Command{
	Use:           "daterange",
	Short:         "Turn phrases like \"last 3 hours\" into concrete datetime ranges.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(resolveFormatOnce)

	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "", "Output format: json, jsonl, csv, tsv, human (default: json, or $DATERANGE_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&fieldsFlag, "fields", "", "Comma-separated list of fields to include in output")
	rootCmd.PersistentFlags().BoolVar(&noHeaderFlag, "no-header", false, "Skip header row in CSV/TSV output")
	rootCmd.PersistentFlags().StringVarP(&timezoneFlag, "timezone", "z", "", "IANA timezone for range computation (default: UTC, or $DATERANGE_TZ)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolP("version", "V", false, "Show version")

	rootCmd.SetVersionTemplate(fmt.Sprintf("daterange-cli %s\n", version))
	rootCmd.Version = version
}

// resolveFormatOnce caches the output format at startup
func resolveFormatOnce() {
	// Priority: flag > env var > default (json)
	f := formatFlag
	if f == "" {
		f = os.Getenv("DATERANGE_FORMAT")
	}
	if f == "" {
		f = "json"
	}

	resolvedFormat = Format(strings.ToLower(f))
	if !resolvedFormat.IsValid() {
		fmt.Fprintf(os.Stderr, "warning: invalid format %q, using json\n", f)
		resolvedFormat = FormatJSON
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// GetFormat returns the cached output format
func GetFormat() Format {
	return resolvedFormat
}

// GetTimezone returns the timezone identifier to compute ranges in.
// Priority: flag > env var > empty (UTC).
func GetTimezone() string {
	if timezoneFlag != "" {
		return timezoneFlag
	}
	return os.Getenv("DATERANGE_TZ")
}

// GetFields returns the list of fields to include in output
func GetFields() []string {
	if fieldsFlag == "" {
		return nil
	}
	fields := strings.Split(fieldsFlag, ",")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// GetOutputOptions returns the current output options
func GetOutputOptions() OutputOptions {
	return OutputOptions{
		Format:   GetFormat(),
		Fields:   GetFields(),
		NoHeader: noHeaderFlag,
	}
}

// Output helper for commands - returns error for proper handling
func Output(data any) error {
	return output(data, GetOutputOptions())
}

// IsJSON returns whether JSON output is enabled (json or jsonl)
func IsJSON() bool {
	f := GetFormat()
	return f == FormatJSON || f == FormatJSONL
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
