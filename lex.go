package calculator

import (
	"errors"
	"io"
	"strings"

	"github.com/ahrtr/gocontainer/stack"
)

// lexer holds the state of a single scan.
type lexer struct {
	src  io.RuneReader
	toks []Token
	// parens holds the columns of open brackets not yet closed.
	parens stack.Interface
	// col is the number of runes read so far.
	col int
	// num indicates that the last token is a number literal still accepting
	// digits. frac indicates that its decimal point has been read, and place
	// is the weight of the next fractional digit.
	num, frac bool
	place     float32
}

// Parse scans an expression into tokens. Consecutive digits and at most one
// decimal point form a single number. Spaces and newlines separate numbers
// and are otherwise ignored. The result is nil if there is any error; parsing
// stops at the first one.
func Parse(src io.RuneReader) ([]Token, error) {
	l := lexer{src: src, parens: stack.New()}
	if err := l.scan(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) ([]Token, error) {
	return Parse(strings.NewReader(src))
}

func (l *lexer) scan() error {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		l.col++
		if d, ok := digit(r); ok {
			l.addDigit(d)
			continue
		}
		switch r {
		case '.':
			if !l.num || l.frac {
				return &BadTokenError{Col: l.col, Rune: r}
			}
			l.frac = true
			l.place = 0.1
			continue
		case '(':
			l.emit(Bracket('('))
			l.parens.Push(l.col)
		case ')':
			l.emit(Bracket(')'))
			if l.parens.IsEmpty() {
				return &ParenError{Col: l.col, Open: false}
			}
			l.parens.Pop()
		case ' ', '\n':
			// Only terminates a number.
		default:
			k := strings.IndexRune(Operators, r)
			if k < 0 {
				return &BadTokenError{Col: l.col, Rune: r}
			}
			l.emit(Operator(Op(k)))
		}
		l.num, l.frac = false, false
	}
	if !l.parens.IsEmpty() {
		return &ParenError{Col: l.parens.Pop().(int), Open: true}
	}
	return nil
}

// addDigit adds a decimal digit to the number being read, or starts a new
// number if there is none.
func (l *lexer) addDigit(d int) {
	if !l.num {
		l.emit(Number(float32(d)))
		l.num = true
		return
	}
	t := &l.toks[len(l.toks)-1]
	if l.frac {
		t.Num += float32(d) * l.place
		l.place *= 0.1
		return
	}
	t.Num = t.Num*10 + float32(d)
}

func (l *lexer) emit(t Token) {
	l.toks = append(l.toks, t)
}

// digit returns the value of a decimal digit rune.
func digit(r rune) (int, bool) {
	if '0' <= r && r <= '9' {
		return int(r - '0'), true
	}
	return 0, false
}
