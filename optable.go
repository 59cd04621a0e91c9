package mathparser

import "math"

// Unary markers. ResolveUnary rewrites sign characters to these so that no
// later stage confuses them with binary + and -.
const (
	unaryPlus  = 'p'
	unaryMinus = 'm'
)

// leftParen is the sentinel pushed on the operator stack for an open
// parenthesis.
const leftParen = '('

type operator struct {
	// sym is the operator's symbol as it appears in postfix text.
	sym rune
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// unary indicates a prefix operator taking one operand.
	unary bool
}

// popsFor reports whether o, on top of the operator stack, must be output
// before pushing the incoming binary operator in.
func (o operator) popsFor(in operator) bool {
	if o.sym == leftParen {
		return false
	}
	if o.prec != in.prec {
		return o.prec > in.prec
	}
	return !in.right
}

// apply computes the operator on its operands. Unary operators use only y.
func (o operator) apply(x, y float32) float32 {
	switch o.sym {
	case '+':
		return x + y
	case '-':
		return x - y
	case '*':
		return x * y
	case '/':
		return x / y
	case '^':
		return pow32(x, y)
	case unaryPlus:
		return y
	case unaryMinus:
		return -y
	default:
		panic("mathparser: apply on non-operator " + string(o.sym))
	}
}

var operators = map[rune]operator{
	'+':        {'+', 2, false, false},
	'-':        {'-', 2, false, false},
	'*':        {'*', 3, false, false},
	'/':        {'/', 3, false, false},
	'^':        {'^', 4, true, false},
	unaryPlus:  {unaryPlus, 5, false, true},
	unaryMinus: {unaryMinus, 5, false, true},
	leftParen:  {leftParen, -1, false, false},
}

// lookupOperator gets the operator for a symbol. The second result is false if
// the symbol is not an operator.
func lookupOperator(r rune) (operator, bool) {
	o, ok := operators[r]
	return o, ok
}

// isBinary reports whether r is one of the binary operators.
func isBinary(r rune) bool {
	o, ok := operators[r]
	return ok && !o.unary && o.sym != leftParen
}

type function struct {
	name  string
	arity int
	// f computes the function. One-argument functions ignore y.
	f func(x, y float32) float32
}

var functions = map[string]function{
	"sin": {"sin", 1, monadic(math.Sin)},
	"cos": {"cos", 1, monadic(math.Cos)},
	"tan": {"tan", 1, monadic(math.Tan)},
	"log": {"log", 2, log32},
}

// lookupFunc gets a function by name.
func lookupFunc(name string) (function, bool) {
	f, ok := functions[name]
	return f, ok
}

// monadic adapts a float64 function of one variable to float32.
func monadic(f func(float64) float64) func(x, y float32) float32 {
	return func(x, _ float32) float32 {
		return float32(f(float64(x)))
	}
}
