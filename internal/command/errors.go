package command

import (
	"fmt"
	"strings"
)

// ParseErrorKind classifies a parse failure
type ParseErrorKind string

const (
	// UnknownCommand means the leading keywords match no grammar production
	UnknownCommand ParseErrorKind = "unknown_command"
	// TypeMismatch means a token could not be read as the expected type
	TypeMismatch ParseErrorKind = "type_mismatch"
	// MissingField means the line ended before a required token
	MissingField ParseErrorKind = "missing_field"
	// OutOfOrderClause means an optional clause appeared out of grammar order
	OutOfOrderClause ParseErrorKind = "out_of_order_clause"
)

// ParseError identifies the offending token and the expected alternatives.
// The state is never touched by a command that fails to parse.
type ParseError struct {
	Kind     ParseErrorKind
	Token    string
	Expected []string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	switch e.Kind {
	case UnknownCommand:
		fmt.Fprintf(&b, "unknown command %q", e.Token)
	case TypeMismatch:
		fmt.Fprintf(&b, "unexpected token %q", e.Token)
	case MissingField:
		b.WriteString("unexpected end of command")
	case OutOfOrderClause:
		fmt.Fprintf(&b, "clause %q out of order", e.Token)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ", expected %s", strings.Join(e.Expected, " or "))
	}
	return b.String()
}
