package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eddmann/daterange-cli/internal/server"
)

var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP date range service",
	Long: `Run the HTTP date range service.

Endpoints:
  POST /parse-date-range   {"command": "last 3 hours", "timezone": "UTC"}
  GET  /health             liveness check
  GET  /supported-formats  grammar documentation

The --timezone flag sets the default zone for requests that omit one.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default: 8080, or $PORT)")
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "Host interface to bind")
}

func runServe(cmd *cobra.Command, args []string) error {
	port := servePort
	if port == 0 {
		if env := os.Getenv("PORT"); env != "" {
			p, err := strconv.Atoi(env)
			if err != nil {
				return fmt.Errorf("invalid $PORT %q: %w", env, err)
			}
			port = p
		} else {
			port = 8080
		}
	}

	level := zerolog.InfoLevel
	if IsVerbose() {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().
		Timestamp().
		Str("module", "serve").
		Logger()

	addr := fmt.Sprintf("%s:%d", serveHost, port)
	logger.Info().Str("addr", addr).Str("default_timezone", defaultZoneName()).Msg("starting date range service")

	return server.New(logger, GetTimezone()).Start(addr)
}

func defaultZoneName() string {
	if tz := GetTimezone(); tz != "" {
		return tz
	}
	return "UTC"
}
