// Package tape records the expressions a calculator has evaluated, like the
// paper tape of a desk calculator.
package tape

import (
	"time"

	"github.com/zephyrtronium/calculator"
)

// Entry is one line of the tape.
type Entry struct {
	// ID is assigned by the store when the entry is appended.
	ID int64
	// Expr is the expression as typed.
	Expr string
	// Result is the formatted result. It is empty if OK is false.
	Result string
	// OK is whether the expression resolved.
	OK bool
	// At is when the expression was evaluated.
	At time.Time
}

// Resolve evaluates an expression and creates a tape entry for it.
func Resolve(expr string, at time.Time) Entry {
	r, ok := calculator.Resolve(expr)
	return Entry{Expr: expr, Result: r, OK: ok, At: at}
}

func (e Entry) String() string {
	if !e.OK {
		return e.Expr + " = ?"
	}
	return e.Expr + " = " + e.Result
}

// Store is a tape.
type Store interface {
	// Append adds an entry to the end of the tape and returns its ID. The
	// ID in e is ignored.
	Append(e Entry) (int64, error)
	// Recent returns up to n of the latest entries, oldest first.
	Recent(n int) ([]Entry, error)
	// Close releases resources.
	Close() error
}
