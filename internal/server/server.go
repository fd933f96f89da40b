package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/eddmann/daterange-cli/internal/daterange"
)

// Server is the HTTP shell around the date range core. It owns no state
// beyond its configuration; every request is an independent parse/compute.
type Server struct {
	echo        *echo.Echo
	logger      zerolog.Logger
	defaultZone string
}

// New builds a Server. defaultZone is used when a request omits the timezone
// field; empty means UTC.
func New(logger zerolog.Logger, defaultZone string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, logger: logger, defaultZone: defaultZone}

	e.Use(middleware.Recover())
	e.Use(s.requestLogger)
	e.HTTPErrorHandler = s.errorHandler

	e.POST("/parse-date-range", s.handleParseDateRange)
	e.GET("/health", s.handleHealth)
	e.GET("/supported-formats", s.handleSupportedFormats)

	return s
}

// Start listens on addr and serves until the process is stopped.
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// ServeHTTP implements http.Handler for tests and embedding.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

type parseRequest struct {
	Command  string `json:"command"`
	Timezone string `json:"timezone"`
}

type rangeResponse struct {
	Start           string  `json:"start"`
	End             string  `json:"end"`
	Command         string  `json:"command"`
	Timezone        string  `json:"timezone"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// handleParseDateRange parses a relative time span command and returns the
// resolved range as a pair of RFC 3339 timestamps.
// POST /parse-date-range
func (s *Server) handleParseDateRange(c echo.Context) error {
	var req parseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "request body must be JSON"})
	}
	if req.Command == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing required field: command"})
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = s.defaultZone
	}

	cmd, err := daterange.Parse(req.Command)
	if err != nil {
		s.logger.Debug().Err(err).Str("command", req.Command).Msg("rejected command")
		return c.JSON(http.StatusBadRequest, classify(err))
	}

	rng, err := daterange.ComputeRange(cmd, timezone)
	if err != nil {
		s.logger.Debug().Err(err).Str("timezone", timezone).Msg("rejected timezone")
		return c.JSON(http.StatusBadRequest, classify(err))
	}

	resp := rangeResponse{
		Start:           rng.Start.Format(time.RFC3339),
		End:             rng.End.Format(time.RFC3339),
		Command:         req.Command,
		Timezone:        zoneName(timezone),
		DurationSeconds: rng.Duration().Seconds(),
	}

	s.logger.Info().
		Str("command", req.Command).
		Str("timezone", resp.Timezone).
		Float64("duration_seconds", resp.DurationSeconds).
		Msg("parsed command")

	return c.JSON(http.StatusOK, resp)
}

// handleHealth reports service liveness.
// GET /health
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleSupportedFormats documents the accepted command grammar.
// GET /supported-formats
func (s *Server) handleSupportedFormats(c echo.Context) error {
	units := make([]string, 0, len(daterange.Units()))
	for _, u := range daterange.Units() {
		units = append(units, string(u))
	}

	return c.JSON(http.StatusOK, map[string]any{
		"grammar": "[last|next] [quantity] unit",
		"units":   units,
		"examples": []string{
			"1 day",
			"day",
			"last 3 hours",
			"last 30 minutes",
			"next 2 weeks",
			"next month",
			"last 1 year",
		},
		"defaults": map[string]any{
			"direction": "last",
			"quantity":  1,
			"timezone":  zoneName(s.defaultZone),
		},
		"note": "Commands are case-insensitive; singular and plural unit forms are accepted.",
	})
}

// classify maps a core error to its externally visible shape, echoing the
// offending fragment verbatim.
func classify(err error) errorResponse {
	var perr *daterange.ParseError
	if errors.As(err, &perr) {
		return errorResponse{Error: perr.Error(), Kind: string(perr.Kind)}
	}
	var terr *daterange.TimezoneError
	if errors.As(err, &terr) {
		return errorResponse{Error: terr.Error(), Kind: string(daterange.ErrInvalidTimezone)}
	}
	return errorResponse{Error: err.Error()}
}

// zoneName renders the effective timezone for responses.
func zoneName(identifier string) string {
	if identifier == "" {
		return "UTC"
	}
	return identifier
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(start)).
			Msg("request")

		return nil
	}
}

// errorHandler keeps unmatched routes and framework errors in the same error
// envelope as the handlers.
func (s *Server) errorHandler(err error, c echo.Context) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var herr *echo.HTTPError
	if errors.As(err, &herr) {
		status = herr.Code
		if msg, ok := herr.Message.(string); ok {
			message = msg
		}
	}
	if status == http.StatusNotFound {
		message = "endpoint not found"
	}

	if c.Response().Committed {
		return
	}
	if jerr := c.JSON(status, errorResponse{Error: message}); jerr != nil {
		s.logger.Error().Err(jerr).Msg("failed to write error response")
	}
}
