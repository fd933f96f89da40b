package daterange

import "fmt"

// ErrorKind identifies which expectation an input violated.
type ErrorKind string

const (
	ErrEmptyCommand    ErrorKind = "empty_command"
	ErrInvalidQuantity ErrorKind = "invalid_quantity"
	ErrUnknownUnit     ErrorKind = "unknown_unit"
	ErrTrailingTokens  ErrorKind = "trailing_tokens"
	ErrInvalidTimezone ErrorKind = "invalid_timezone"
)

// ParseError reports a command that failed to parse, carrying the original
// input and the offending token for diagnostics.
type ParseError struct {
	Kind  ErrorKind
	Input string
	Token string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrEmptyCommand:
		return "empty command"
	case ErrInvalidQuantity:
		return fmt.Sprintf("invalid quantity %q in %q: must be a positive integer", e.Token, e.Input)
	case ErrUnknownUnit:
		if e.Token == "" {
			return fmt.Sprintf("missing time unit in %q (valid: second, minute, hour, day, week, month, year)", e.Input)
		}
		return fmt.Sprintf("unknown time unit %q in %q (valid: second, minute, hour, day, week, month, year)", e.Token, e.Input)
	case ErrTrailingTokens:
		return fmt.Sprintf("unexpected token %q after unit in %q", e.Token, e.Input)
	}
	return fmt.Sprintf("unable to parse %q", e.Input)
}

// TimezoneError reports an unrecognized timezone identifier.
type TimezoneError struct {
	Identifier string
	Err        error
}

func (e *TimezoneError) Error() string {
	return fmt.Sprintf("invalid timezone: %s", e.Identifier)
}

func (e *TimezoneError) Unwrap() error {
	return e.Err
}
