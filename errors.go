package seximal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigit reports a character outside the base-6 alphabet, a sign
	// on an unsigned type, a separator on an integer type, or a digit run
	// that is missing altogether.
	ErrInvalidDigit = errors.New("invalid digit")

	// ErrOverflow reports a value that does not fit the target type, whether
	// it came from parsing, a conversion or integer arithmetic.
	ErrOverflow = errors.New("overflow")

	// ErrDivideByZero reports integer division or remainder by zero.
	ErrDivideByZero = errors.New("division by zero")

	ErrKindMismatch = errors.New("kind mismatch")
	ErrUnknownKind  = errors.New("unknown kind")
)

// ParseError is returned by every parser in the package. Err is one of
// ErrInvalidDigit or ErrOverflow.
type ParseError struct {
	Kind Kind
	Text string

	// Offset is the byte offset of the offending character. It equals
	// len(Text) when a digit run ended early.
	Offset int

	Err error
}

func (e *ParseError) Error() string {
	if e.Err == ErrOverflow {
		return fmt.Sprintf("seximal: parsing %s %q: %v", e.Kind, e.Text, e.Err)
	}
	return fmt.Sprintf("seximal: parsing %s %q: %v at offset %d", e.Kind, e.Text, e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseErr(kind Kind, text string, offset int, err error) *ParseError {
	return &ParseError{Kind: kind, Text: text, Offset: offset, Err: err}
}

// ConvError is returned when a conversion between two kinds fails. Value
// holds the base-6 text of the source.
type ConvError struct {
	From, To Kind
	Value    string
	Err      error
}

func (e *ConvError) Error() string {
	return fmt.Sprintf("seximal: converting %s %s to %s: %v", e.From, e.Value, e.To, e.Err)
}

func (e *ConvError) Unwrap() error { return e.Err }

func convErr(from, to Kind, v fmt.Stringer) *ConvError {
	return &ConvError{From: from, To: to, Value: v.String(), Err: ErrOverflow}
}

func arithErr(kind Kind, a fmt.Stringer, op Op, b fmt.Stringer, err error) error {
	return fmt.Errorf("seximal: %s %s %s %s: %w", kind, a, op, b, err)
}
