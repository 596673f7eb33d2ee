// Package editor implements the input buffer of a keypad calculator. It
// decides which key presses may extend the expression on the display, so that
// the expression handed to the calculator is usually well-formed.
package editor

import (
	"strings"

	"github.com/zephyrtronium/calculator"
)

// Keys with special meaning to Press.
const (
	KeyClear   = 'C'
	KeyResolve = '='
)

// Buffer is the expression being typed and the result of the last resolve.
// The zero value is an empty buffer; New gives the "0" a calculator shows when
// it is switched on.
type Buffer struct {
	expr   string
	result string
	ok     bool
}

// New creates a buffer holding the placeholder "0".
func New() *Buffer {
	return &Buffer{expr: "0"}
}

// String returns the expression on the display.
func (b *Buffer) String() string {
	return b.expr
}

// Result returns the result of the last call to Resolve, or false if there
// has been none or it failed.
func (b *Buffer) Result() (string, bool) {
	return b.result, b.ok
}

// Edit appends r to the expression. A lone placeholder "0" is replaced by
// anything but a decimal point. If r cannot follow the expression, e.g. an
// operator directly after another operator, the buffer is unchanged and the
// result is false.
func (b *Buffer) Edit(r rune) bool {
	expr := b.expr
	if expr == "0" && r != '.' {
		expr = ""
	}
	if !accepts(last(expr), r) {
		return false
	}
	b.expr = expr + string(r)
	return true
}

// accepts reports whether r may follow prev. prev is 0 for an empty
// expression.
func accepts(prev, r rune) bool {
	switch {
	case isDigit(r):
		return true
	case r == '.', r == ')':
		return isDigit(prev)
	case strings.ContainsRune(calculator.Operators, r):
		return isDigit(prev) || prev == ')'
	case r == '(':
		return !isDigit(prev) && prev != '.' && prev != ')'
	default:
		return false
	}
}

// Clear empties the expression.
func (b *Buffer) Clear() {
	b.expr = ""
}

// Resolve evaluates the expression. The display then shows the result, or
// nothing if the expression is invalid.
func (b *Buffer) Resolve() (string, bool) {
	b.result, b.ok = calculator.Resolve(b.expr)
	b.expr = b.result
	return b.result, b.ok
}

// Press handles a key press. KeyClear clears, KeyResolve resolves, and any
// other key is an edit. The result is false if the key was rejected or the
// expression failed to resolve.
func (b *Buffer) Press(key rune) bool {
	switch key {
	case KeyClear:
		b.Clear()
		return true
	case KeyResolve:
		_, ok := b.Resolve()
		return ok
	default:
		return b.Edit(key)
	}
}

func last(s string) rune {
	if s == "" {
		return 0
	}
	return rune(s[len(s)-1])
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
