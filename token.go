package calculator

import (
	"strconv"
	"strings"
)

// Token is a single element of an expression. Exactly one of Num, Op, and
// Bracket is meaningful, according to Kind.
type Token struct {
	Kind Kind
	// Num is the value of a KindNumber token.
	Num float32
	// Op is the operator of a KindOperator token.
	Op Op
	// Bracket is '(' or ')' for a KindBracket token.
	Bracket rune
}

// Kind is the variant of a Token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNumber is a numeric literal.
	KindNumber
	// KindOperator is one of + - * /.
	KindOperator
	// KindBracket is an open or close parenthesis.
	KindBracket
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind

// Number returns a number token.
func Number(v float32) Token {
	return Token{Kind: KindNumber, Num: v}
}

// Operator returns an operator token.
func Operator(op Op) Token {
	return Token{Kind: KindOperator, Op: op}
}

// Bracket returns a bracket token. b should be '(' or ')'.
func Bracket(b rune) Token {
	return Token{Kind: KindBracket, Bracket: b}
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return strconv.FormatFloat(float64(t.Num), 'g', -1, 32)
	case KindOperator:
		return t.Op.String()
	case KindBracket:
		return string(t.Bracket)
	default:
		return "<" + t.Kind.String() + ">"
	}
}

// isOpen reports whether t is an open bracket.
func (t Token) isOpen() bool {
	return t.Kind == KindBracket && t.Bracket == '('
}

// FormatTokens writes a token sequence separated by spaces. For postfix
// sequences this is the usual reverse Polish notation, e.g. "1 2 3 * +".
func FormatTokens(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Op is an arithmetic operator.
type Op int8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Operators contains the runes which are operators, in Op order.
const Operators = "+-*/"

func (op Op) String() string {
	if op < 0 || int(op) >= len(Operators) {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
	return Operators[op : op+1]
}

// Prec returns the precedence weight of the operator. Higher binds tighter.
func (op Op) Prec() int8 {
	switch op {
	case OpAdd, OpSub:
		return 0
	case OpMul, OpDiv:
		return 5
	default:
		panic("calculator: invalid operator " + op.String())
	}
}

// apply computes l op r.
func (op Op) apply(l, r float32) float32 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	default:
		panic("calculator: invalid operator " + op.String())
	}
}
