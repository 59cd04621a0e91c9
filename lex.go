package mathparser

import (
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	// text is the number, the operator symbol, or the function name.
	text string
	// args is the literal argument list of a call.
	args []string
	// val is the value of a tokenVal.
	val  float32
	kind tokenKind
}

// String formats the token as it appears in postfix text.
func (t lexToken) String() string {
	switch t.kind {
	case tokenCall:
		return t.text + "!" + strings.Join(t.args, ",")
	case tokenVal:
		return FormatFloat(t.val)
	default:
		return t.text
	}
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenUnary is a unary marker produced by ResolveUnary.
	tokenUnary
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
	// tokenCall is a function call with its literal arguments.
	tokenCall
	// tokenVal is an already computed value, e.g. the result of a call.
	tokenVal
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenUnary:
		return "Unary"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenCall:
		return "Call"
	case tokenVal:
		return "Val"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// stripSpace removes all whitespace from src.
func stripSpace(src string) []rune {
	v := make([]rune, 0, len(src))
	for _, r := range src {
		if !unicode.IsSpace(r) {
			v = append(v, r)
		}
	}
	return v
}

// ResolveUnary removes whitespace from src and replaces each + or - that acts
// as a sign with a unary marker, p for plus and m for minus. A character is a
// sign when the next character is a digit and the previous one, if any, is
// neither a digit nor a close parenthesis.
//
// Any other operator in a sign position is InvalidNotation, as in "2+*5".
func ResolveUnary(src string) (string, error) {
	s := stripSpace(src)
	if err := resolveUnary(s); err != nil {
		return "", err
	}
	return string(s), nil
}

// resolveUnary rewrites sign characters in place. The look-behind sees
// characters already rewritten.
func resolveUnary(s []rune) error {
	for i, r := range s {
		if !isBinary(r) {
			continue
		}
		if i+1 >= len(s) || !isDigit(s[i+1]) {
			continue
		}
		if i > 0 && (s[i-1] == ')' || isDigit(s[i-1])) {
			continue
		}
		switch r {
		case '+':
			s[i] = unaryPlus
		case '-':
			s[i] = unaryMinus
		default:
			return InvalidNotation
		}
	}
	return nil
}

type lexer struct {
	src []rune
	pos int
}

// lex creates a lexer over unary-resolved source with no whitespace.
func lex(src []rune) *lexer {
	return &lexer{src: src}
}

// peek returns the rune at offset k from the current position, or -1 past the
// end of the input.
func (l *lexer) peek(k int) rune {
	if l.pos+k >= len(l.src) {
		return -1
	}
	return l.src[l.pos+k]
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token.
func (l *lexer) next() (lexToken, error) {
	var tok lexToken
	r := l.peek(0)
	switch {
	case r < 0:
		tok.kind = tokenEOF
	case isDigit(r), r == '.':
		tok.text = l.scan(isNumRune)
		tok.kind = tokenNum
	case (r == unaryMinus || r == unaryPlus) && isDigit(l.peek(1)):
		l.pos++
		tok.text = string(r)
		tok.kind = tokenUnary
	case unicode.IsLetter(r), r == '!':
		return l.scanCall()
	case r == '(':
		l.pos++
		tok.text = "("
		tok.kind = tokenOpen
	case r == ')':
		l.pos++
		tok.text = ")"
		tok.kind = tokenClose
	case isBinary(r):
		l.pos++
		tok.text = string(r)
		tok.kind = tokenOp
	default:
		return tok, InvalidNotation
	}
	return tok, nil
}

// scan consumes the longest run of runes satisfying ok.
func (l *lexer) scan(ok func(rune) bool) string {
	start := l.pos
	for l.pos < len(l.src) && ok(l.src[l.pos]) {
		l.pos++
	}
	return string(l.src[start:l.pos])
}

func isNumRune(r rune) bool {
	return isDigit(r) || r == '.'
}

func isArgRune(r rune) bool {
	return isDigit(r) || r == '.' || r == ','
}

// scanCall scans a function call, either name!args or name(args). Arguments
// must be literal numbers.
func (l *lexer) scanCall() (lexToken, error) {
	tok := lexToken{kind: tokenCall}
	tok.text = l.scan(unicode.IsLetter)
	var args string
	switch l.peek(0) {
	case '!':
		l.pos++
		args = l.scan(isArgRune)
	case '(':
		l.pos++
		args = l.scan(isArgRune)
		switch l.peek(0) {
		case ')':
			l.pos++
		case -1:
			return tok, MismatchedParenthesis
		default:
			// Only literal numbers are allowed as arguments.
			return tok, InvalidNotation
		}
	default:
		return tok, InvalidFunction
	}
	tok.args = splitArgs(args)
	if _, err := checkCall(tok.text, tok.args); err != nil {
		return tok, err
	}
	return tok, nil
}

// splitArgs splits a comma-separated argument list. An empty list has no
// arguments.
func splitArgs(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

// checkCall finds the function to call and checks the number of arguments.
func checkCall(name string, args []string) (function, error) {
	fn, ok := lookupFunc(name)
	if !ok || len(args) != fn.arity {
		return function{}, InvalidFunction
	}
	return fn, nil
}
