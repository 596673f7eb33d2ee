package calculator

import (
	"github.com/edwingeng/deque"
)

// Postfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Operators of equal precedence associate to the
// left, so "8-2-1" becomes "8 2 - 1 -". Brackets do not appear in the result.
//
// toks should come from a successful Parse. Postfix has no failure path of its
// own; structural problems like "1 +" are left for Evaluate to reject.
func Postfix(toks []Token) []Token {
	out := make([]Token, 0, len(toks))
	ops := deque.NewDeque()
	for _, t := range toks {
		switch t.Kind {
		case KindNumber:
			out = append(out, t)
		case KindOperator:
			for ops.Len() != 0 {
				top := ops.Back().(Token)
				if top.isOpen() || top.Op.Prec() < t.Op.Prec() {
					break
				}
				out = append(out, top)
				ops.PopBack()
			}
			ops.PushBack(t)
		case KindBracket:
			if t.isOpen() {
				ops.PushBack(t)
				continue
			}
			for ops.Len() != 0 && !ops.Back().(Token).isOpen() {
				out = append(out, ops.PopBack().(Token))
			}
			if ops.Len() != 0 {
				// Discard the matching open bracket.
				ops.PopBack()
			}
		default:
			// Evaluate rejects it.
			out = append(out, t)
		}
	}
	for ops.Len() != 0 {
		out = append(out, ops.PopBack().(Token))
	}
	return out
}
