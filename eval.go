package calculator

import (
	"math"
	"strconv"
)

// Evaluate computes the value of a postfix token sequence, as produced by
// Postfix. Each operator takes the two values below it on the stack, the
// deeper one being its left operand. The result is false if the sequence does
// not reduce to exactly one value, including when it is empty, when an
// operator lacks operands, or when it contains a bracket.
//
// Division by zero is not an error; it gives an infinity or NaN.
func Evaluate(toks []Token) (float32, bool) {
	var s values
	for _, t := range toks {
		switch t.Kind {
		case KindNumber:
			s.push(t.Num)
		case KindOperator:
			if len(s) < 2 {
				return 0, false
			}
			r := s.pop()
			l := s.pop()
			s.push(t.Op.apply(l, r))
		default:
			return 0, false
		}
	}
	if len(s) != 1 {
		return 0, false
	}
	return s[0], true
}

// values is the stack for evaluation.
type values []float32

func (s *values) push(v float32) {
	*s = append(*s, v)
}

// pop removes the top from the stack and returns it. Panics if the stack is
// empty.
func (s *values) pop() float32 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

// Format renders a result for display. Whole numbers have no fractional part,
// so 6 is "6" and never "6.0". Other finite values use the shortest decimal
// that reads back as the same float32, like "0.5" or "0.33333334". Infinities
// and NaN are "+Inf", "-Inf", and "NaN".
func Format(v float32) string {
	f := float64(v)
	switch {
	case math.IsInf(f, 0), math.IsNaN(f):
		return strconv.FormatFloat(f, 'g', -1, 32)
	case f == 0:
		// Also covers negative zero.
		return "0"
	case f == math.Trunc(f):
		return strconv.FormatFloat(f, 'f', 0, 32)
	default:
		return strconv.FormatFloat(f, 'f', -1, 32)
	}
}

// Resolve parses, reorders, and evaluates an expression, and formats its
// value. The result is false if the expression is invalid in any way; use
// Parse and Evaluate directly to find out why.
func Resolve(src string) (string, bool) {
	toks, err := ParseString(src)
	if err != nil {
		return "", false
	}
	v, ok := Evaluate(Postfix(toks))
	if !ok {
		return "", false
	}
	return Format(v), true
}
