package calculator

import "strconv"

// BadTokenError is an error indicating a rune that cannot appear in an
// expression, or a decimal point where no number is being read. It implements
// InputError.
type BadTokenError struct {
	// Col is the position of the rune.
	Col int
	// Rune is the rune that was not understood.
	Rune rune
}

func (err *BadTokenError) Error() string {
	if err.Rune == '.' {
		return errpos(err.Col, "decimal point outside a number")
	}
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Rune))
}

func (err *BadTokenError) Pos() int {
	return err.Col
}

// ParenError is an error indicating mismatched parentheses in the input. It
// implements InputError.
type ParenError struct {
	// Col is the position of the offending bracket. For an unclosed open
	// bracket, it is the innermost one.
	Col int
	// Open is true for an open bracket with no close bracket and false for a
	// close bracket with no open bracket.
	Open bool
}

func (err *ParenError) Error() string {
	if err.Open {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *ParenError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error.
	Pos() int
}

var (
	_ InputError = (*BadTokenError)(nil)
	_ InputError = (*ParenError)(nil)
)
