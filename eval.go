package mathparser

import (
	"math"
	"strings"
	"unicode"
)

// Eval evaluates an infix expression. Whitespace in src is ignored. With the
// Trace option, the second result lists each computation step in the order it
// was performed; otherwise it is nil.
func Eval(src string, opts ...Option) (float32, []string, error) {
	cfg := newConfig(opts)
	toks, err := convert(src)
	if err != nil {
		return 0, nil, err
	}
	var ev evaluator
	ev.init(cfg, len(toks))
	r, err := ev.eval(toks)
	if err != nil {
		return 0, nil, err
	}
	return r, ev.trace, nil
}

// EvalPostfix evaluates an expression in space-separated postfix notation, as
// produced by ToPostfix, and returns the formatted result.
func EvalPostfix(src string, opts ...Option) (string, []string, error) {
	cfg := newConfig(opts)
	toks, err := postfixTokens(src)
	if err != nil {
		return "", nil, err
	}
	var ev evaluator
	ev.init(cfg, len(toks))
	r, err := ev.eval(toks)
	if err != nil {
		return "", nil, err
	}
	return FormatFloat(r), ev.trace, nil
}

// postfixTokens splits postfix text into tokens. Anything that is not an
// operator or a call is taken as a number, to be parsed during reduction.
func postfixTokens(src string) ([]lexToken, error) {
	fields := strings.Fields(src)
	toks := make([]lexToken, 0, len(fields))
	for _, f := range fields {
		tok := lexToken{text: f}
		switch k := strings.IndexByte(f, '!'); {
		case k >= 0:
			tok.kind = tokenCall
			tok.text = f[:k]
			if tok.text == "" || strings.IndexFunc(tok.text, notLetter) >= 0 {
				return nil, InvalidFunction
			}
			tok.args = splitArgs(f[k+1:])
		case len(f) == 1 && isBinary(rune(f[0])):
			tok.kind = tokenOp
		case f == string(unaryPlus), f == string(unaryMinus):
			tok.kind = tokenUnary
		default:
			tok.kind = tokenNum
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func notLetter(r rune) bool {
	return !unicode.IsLetter(r)
}

// evaluator reduces postfix tokens to a value. It is created fresh for each
// evaluation.
type evaluator struct {
	stack   []float32
	trace   []string
	tracing bool
}

func (ev *evaluator) init(cfg config, n int) {
	ev.stack = make([]float32, 0, n)
	ev.tracing = cfg.trace
}

// eval runs both passes over toks: first every call is replaced by its value,
// then the operators are reduced. toks is modified.
func (ev *evaluator) eval(toks []lexToken) (float32, error) {
	for i, tok := range toks {
		if tok.kind != tokenCall {
			continue
		}
		r, err := ev.call(tok)
		if err != nil {
			return 0, err
		}
		toks[i] = lexToken{kind: tokenVal, val: r}
	}
	for _, tok := range toks {
		if err := ev.reduce(tok); err != nil {
			return 0, err
		}
	}
	if len(ev.stack) != 1 {
		return 0, InvalidNotation
	}
	return ev.stack[0], nil
}

// call evaluates a function call token.
func (ev *evaluator) call(tok lexToken) (float32, error) {
	fn, err := checkCall(tok.text, tok.args)
	if err != nil {
		return 0, err
	}
	x, err := parseFloat(tok.args[0])
	if err != nil {
		return 0, err
	}
	y := nan32()
	if fn.arity == 2 {
		if y, err = parseFloat(tok.args[1]); err != nil {
			return 0, err
		}
	}
	r := fn.f(x, y)
	if ev.tracing {
		ev.step(fn.name+" "+FormatFloat(x)+" "+FormatFloat(y), r)
	}
	return r, nil
}

// reduce applies a single token to the value stack.
func (ev *evaluator) reduce(tok lexToken) error {
	switch tok.kind {
	case tokenNum:
		f, err := parseFloat(tok.text)
		if err != nil {
			return err
		}
		ev.push(f)
	case tokenVal:
		ev.push(tok.val)
	case tokenOp, tokenUnary:
		o, ok := lookupOperator([]rune(tok.text)[0])
		if !ok {
			panic("mathparser: operator token " + tok.text + " is not an operator")
		}
		y, ok := ev.pop()
		if !ok {
			return InvalidNotation
		}
		x := nan32()
		if !o.unary {
			if x, ok = ev.pop(); !ok {
				return InvalidNotation
			}
		}
		r := o.apply(x, y)
		if ev.tracing {
			ev.step(FormatFloat(x)+" "+tok.text+" "+FormatFloat(y), r)
		}
		ev.push(r)
	default:
		panic("mathparser: cannot reduce " + tok.kind.String() + " token")
	}
	return nil
}

func (ev *evaluator) push(f float32) {
	ev.stack = append(ev.stack, f)
}

// pop removes the top of the stack. The second result is false if the stack
// is empty.
func (ev *evaluator) pop() (float32, bool) {
	if len(ev.stack) == 0 {
		return 0, false
	}
	r := ev.stack[len(ev.stack)-1]
	ev.stack = ev.stack[:len(ev.stack)-1]
	return r, true
}

// step records a trace line of the form "<computation> = <result>".
func (ev *evaluator) step(comp string, r float32) {
	ev.trace = append(ev.trace, comp+" = "+FormatFloat(r))
}

func nan32() float32 {
	return float32(math.NaN())
}
