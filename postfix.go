package mathparser

import "strings"

// ToPostfix converts an infix expression to space-separated postfix notation.
// Unary markers and function calls appear in the output as they are written
// after ResolveUnary, e.g. "50 * -45" becomes "50 45 m *" and
// "2 * log(100, 10)" becomes "2 log!100,10 *".
func ToPostfix(src string) (string, error) {
	toks, err := convert(src)
	if err != nil {
		return "", err
	}
	return joinTokens(toks), nil
}

func joinTokens(toks []lexToken) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

// convert resolves unary operators in src and converts it to postfix order
// using the shunting-yard algorithm.
//
// A malformed operator sequence is remembered rather than returned at once so
// that a parenthesis mismatch anywhere in the input is reported in preference.
func convert(src string) ([]lexToken, error) {
	s := stripSpace(src)
	if err := resolveUnary(s); err != nil {
		return nil, err
	}
	scan := lex(s)
	var (
		out []lexToken
		ops []operator
		bad error
		// operand is whether the next token must begin an operand.
		operand = true
	)
	expect := func(want bool) {
		if operand != want && bad == nil {
			bad = InvalidNotation
		}
	}
	// pop moves the top of the operator stack to the output.
	pop := func() operator {
		o := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if o.sym != leftParen {
			kind := tokenOp
			if o.unary {
				kind = tokenUnary
			}
			out = append(out, lexToken{text: string(o.sym), kind: kind})
		}
		return o
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenCall:
			expect(true)
			out = append(out, tok)
			operand = false
		case tokenUnary:
			// Prefix operators bind to what follows, so nothing is popped.
			expect(true)
			o, _ := lookupOperator([]rune(tok.text)[0])
			ops = append(ops, o)
		case tokenOp:
			expect(false)
			o, _ := lookupOperator([]rune(tok.text)[0])
			for len(ops) > 0 && ops[len(ops)-1].popsFor(o) {
				pop()
			}
			ops = append(ops, o)
			operand = true
		case tokenOpen:
			expect(true)
			ops = append(ops, operators[leftParen])
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, MismatchedParenthesis
				}
				if pop().sym == leftParen {
					break
				}
			}
			expect(false)
			operand = false
		case tokenEOF:
			for len(ops) > 0 {
				if pop().sym == leftParen {
					return nil, MismatchedParenthesis
				}
			}
			expect(false)
			if bad != nil {
				return nil, bad
			}
			return out, nil
		default:
			panic("mathparser: unknown token: " + tok.kind.String())
		}
	}
}
