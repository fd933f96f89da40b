package daterange

import (
	"strconv"
	"strings"
)

// Parse tokenizes a relative time span command such as "last 3 hours" into a
// Command.
//
// Grammar: [last|next] [quantity] unit
//
// Direction defaults to last and quantity to 1 when omitted. Unit words are
// matched case-insensitively with an optional trailing "s". The whole string
// must be consumed; anything after the unit is an error.
func Parse(text string) (Command, error) {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return Command{}, &ParseError{Kind: ErrEmptyCommand, Input: text}
	}

	cmd := Command{Direction: DirectionLast, Quantity: 1}
	i := 0

	switch tokens[i] {
	case "last":
		cmd.Direction = DirectionLast
		i++
	case "next":
		cmd.Direction = DirectionNext
		i++
	}

	if i < len(tokens) && quantityLike(tokens[i]) {
		n, err := strconv.Atoi(tokens[i])
		if err != nil || n < 1 {
			return Command{}, &ParseError{Kind: ErrInvalidQuantity, Input: text, Token: tokens[i]}
		}
		cmd.Quantity = n
		i++
	}

	if i == len(tokens) {
		return Command{}, &ParseError{Kind: ErrUnknownUnit, Input: text}
	}

	unit, ok := units[strings.TrimSuffix(tokens[i], "s")]
	if !ok {
		return Command{}, &ParseError{Kind: ErrUnknownUnit, Input: text, Token: tokens[i]}
	}
	cmd.Unit = unit
	i++

	if i < len(tokens) {
		return Command{}, &ParseError{Kind: ErrTrailingTokens, Input: text, Token: tokens[i]}
	}

	return cmd, nil
}

// quantityLike reports whether a token sits in quantity position: anything
// starting with a digit or an explicit sign is judged as a quantity, so that
// "-1 day" fails as a bad quantity rather than an unknown unit.
func quantityLike(token string) bool {
	if token == "" {
		return false
	}
	c := token[0]
	return (c >= '0' && c <= '9') || c == '+' || c == '-'
}
