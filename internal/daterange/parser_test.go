package daterange

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Command
	}{
		{
			name:  "full command",
			input: "last 3 hours",
			want:  Command{Direction: DirectionLast, Quantity: 3, Unit: UnitHour},
		},
		{
			name:  "forward direction",
			input: "next 2 weeks",
			want:  Command{Direction: DirectionNext, Quantity: 2, Unit: UnitWeek},
		},
		{
			name:  "direction defaults to last",
			input: "1 day",
			want:  Command{Direction: DirectionLast, Quantity: 1, Unit: UnitDay},
		},
		{
			name:  "quantity defaults to one",
			input: "last month",
			want:  Command{Direction: DirectionLast, Quantity: 1, Unit: UnitMonth},
		},
		{
			name:  "bare unit word",
			input: "day",
			want:  Command{Direction: DirectionLast, Quantity: 1, Unit: UnitDay},
		},
		{
			name:  "singular unit",
			input: "last 1 second",
			want:  Command{Direction: DirectionLast, Quantity: 1, Unit: UnitSecond},
		},
		{
			name:  "plural unit",
			input: "next 45 minutes",
			want:  Command{Direction: DirectionNext, Quantity: 45, Unit: UnitMinute},
		},
		{
			name:  "mixed case and extra whitespace",
			input: "  LAST   3   Hours  ",
			want:  Command{Direction: DirectionLast, Quantity: 3, Unit: UnitHour},
		},
		{
			name:  "explicit plus sign",
			input: "next +2 days",
			want:  Command{Direction: DirectionNext, Quantity: 2, Unit: UnitDay},
		},
		{
			name:  "years",
			input: "last 10 years",
			want:  Command{Direction: DirectionLast, Quantity: 10, Unit: UnitYear},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNormalizationIsIdempotent(t *testing.T) {
	a, err := Parse("  LAST   3   Hours  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Parse("last 3 hours")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("normalized parses differ: %+v vs %+v", a, b)
	}
}

func TestParseDefaultsMatchExplicitForms(t *testing.T) {
	pairs := [][2]string{
		{"1 day", "last 1 day"},
		{"day", "1 day"},
		{"hours", "last 1 hours"},
	}

	for _, pair := range pairs {
		a, err := Parse(pair[0])
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", pair[0], err)
		}
		b, err := Parse(pair[1])
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", pair[1], err)
		}
		if a != b {
			t.Fatalf("Parse(%q) = %+v, Parse(%q) = %+v, want equal", pair[0], a, pair[1], b)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKind  ErrorKind
		wantToken string
	}{
		{
			name:     "empty string",
			input:    "",
			wantKind: ErrEmptyCommand,
		},
		{
			name:     "whitespace only",
			input:    "   ",
			wantKind: ErrEmptyCommand,
		},
		{
			name:      "unknown unit",
			input:     "3 decades",
			wantKind:  ErrUnknownUnit,
			wantToken: "decades",
		},
		{
			name:      "unit before quantity",
			input:     "last hours 3",
			wantKind:  ErrTrailingTokens,
			wantToken: "3",
		},
		{
			name:      "negative quantity",
			input:     "-1 day",
			wantKind:  ErrInvalidQuantity,
			wantToken: "-1",
		},
		{
			name:      "zero quantity",
			input:     "0 days",
			wantKind:  ErrInvalidQuantity,
			wantToken: "0",
		},
		{
			name:      "fractional quantity",
			input:     "last 2.5 hours",
			wantKind:  ErrInvalidQuantity,
			wantToken: "2.5",
		},
		{
			name:      "quantity glued to unit",
			input:     "3days",
			wantKind:  ErrInvalidQuantity,
			wantToken: "3days",
		},
		{
			name:     "direction without unit",
			input:    "last",
			wantKind: ErrUnknownUnit,
		},
		{
			name:     "quantity without unit",
			input:    "last 3",
			wantKind: ErrUnknownUnit,
		},
		{
			name:      "trailing token after unit",
			input:     "last 3 hours ago",
			wantKind:  ErrTrailingTokens,
			wantToken: "ago",
		},
		{
			name:      "absolute date expression",
			input:     "from 2023-01-01 to 2023-01-31",
			wantKind:  ErrUnknownUnit,
			wantToken: "from",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got none", tt.input)
			}

			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error = %T, want *ParseError", tt.input, err)
			}
			if perr.Kind != tt.wantKind {
				t.Fatalf("Parse(%q) kind = %q, want %q", tt.input, perr.Kind, tt.wantKind)
			}
			if perr.Token != tt.wantToken {
				t.Fatalf("Parse(%q) token = %q, want %q", tt.input, perr.Token, tt.wantToken)
			}
			if perr.Input != tt.input {
				t.Fatalf("Parse(%q) input = %q, want original input", tt.input, perr.Input)
			}
		})
	}
}
