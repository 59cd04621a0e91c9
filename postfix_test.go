package mathparser_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/mathparser"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"decimal", "1.25", "1.25"},
		{"add", "1+2", "1 2 +"},
		{"precedence", "1+2*3", "1 2 3 * +"},
		{"parens", "(1+2)*3", "1 2 + 3 *"},
		{"left-assoc", "10-4-3", "10 4 - 3 -"},
		{"right-assoc", "2^3^2", "2 3 2 ^ ^"},
		{"nested", "((8*21)+89/14)^4", "8 21 * 89 14 / + 4 ^"},
		{"unary-minus", "50 * -45", "50 45 m *"},
		{"unary-plus", "3 + +4", "3 4 p +"},
		{"unary-pow", "-2^2", "2 m 2 ^"},
		{"pow-unary", "2^-3", "2 3 m ^"},
		{"call-bang", "log!100,10 + sin!1", "log!100,10 sin!1 +"},
		{"call-paren", "2 * log(100, 10)", "2 log!100,10 *"},
		{"spaces", "  ( 2 +  1 ) -4 ", "2 1 + 4 -"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := mathparser.ToPostfix(c.src)
			if err != nil {
				t.Fatalf("%q failed to convert: %v", c.src, err)
			}
			if got != c.want {
				t.Errorf("%q: want %q, got %q", c.src, c.want, got)
			}
			if strings.Contains(got, "  ") {
				t.Errorf("%q: output %q has consecutive separators", c.src, got)
			}
		})
	}
}

func TestToPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"unclosed", "(5 + 5", mathparser.MismatchedParenthesis},
		{"unopened", "5 + 5)", mathparser.MismatchedParenthesis},
		{"extra-close", "(1))", mathparser.MismatchedParenthesis},
		{"extra-open", "((1)", mathparser.MismatchedParenthesis},
		{"unclosed-call", "sin(1", mathparser.MismatchedParenthesis},
		{"paren-beats-notation", "(5 */ (2)", mathparser.MismatchedParenthesis},
		{"double-op", "50 **/ (-45)", mathparser.InvalidNotation},
		{"op-as-sign", "928 / 2 +* 4", mathparser.InvalidNotation},
		{"trailing-op", "2*", mathparser.InvalidNotation},
		{"leading-op", "*2", mathparser.InvalidNotation},
		{"empty", "", mathparser.InvalidNotation},
		{"blank", " \t", mathparser.InvalidNotation},
		{"empty-parens", "()", mathparser.InvalidNotation},
		{"open-op", "(*2)", mathparser.InvalidNotation},
		{"adjacent-groups", "(2)(3)", mathparser.InvalidNotation},
		{"sign-without-digit", "-(2)", mathparser.InvalidNotation},
		{"comma", "1,5", mathparser.InvalidNotation},
		{"symbol", "2 $ 3", mathparser.InvalidNotation},
		{"nested-arg", "sin(1+2)", mathparser.InvalidNotation},
		{"unknown-func", "foo!1", mathparser.InvalidFunction},
		{"no-args", "sin", mathparser.InvalidFunction},
		{"arity", "log!100", mathparser.InvalidFunction},
		{"arity-paren", "log(100)", mathparser.InvalidFunction},
		{"negative-arg", "log!-10,10 / 1", mathparser.InvalidFunction},
		{"bang", "5!", mathparser.InvalidFunction},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := mathparser.ToPostfix(c.src)
			if err != c.err {
				t.Fatalf("%q: want error %v, got %q with error %v", c.src, c.err, got, err)
			}
			if got != "" {
				t.Errorf("%q: want no output with error, got %q", c.src, got)
			}
		})
	}
}
