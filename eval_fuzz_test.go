//go:build go1.18
// +build go1.18

package mathparser_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/mathparser"
)

func FuzzEval(f *testing.F) {
	f.Add("((8*21)+89/14)^4")
	f.Add("50 * -45")
	f.Add("log!100,10 + sin(1)")
	f.Add("50 **/ (-45)")
	f.Add("(5 + 5")
	f.Fuzz(func(t *testing.T, s string) {
		_, _, err := mathparser.Eval(s, mathparser.Trace(true))
		if err == nil {
			return
		}
		var kind mathparser.Error
		if !errors.As(err, &kind) {
			t.Errorf("%q gave error of type %T: %v", s, err, err)
		}
	})
}

func FuzzEvalPostfix(f *testing.F) {
	f.Add("8 21 * 89 14 / + 2 ^")
	f.Add("50 45 m *")
	f.Add("log!100,10 3 *")
	f.Fuzz(func(t *testing.T, s string) {
		mathparser.EvalPostfix(s, mathparser.Trace(true))
	})
}

// FuzzRoundTrip checks that evaluating the postfix form of an expression
// gives the same result as evaluating the expression.
func FuzzRoundTrip(f *testing.F) {
	f.Add("((2048/4)-12)*log(100,10)")
	f.Add("-2^-2")
	f.Fuzz(func(t *testing.T, s string) {
		p, err := mathparser.ToPostfix(s)
		if err != nil {
			return
		}
		r, _, err := mathparser.Eval(s)
		if err != nil {
			// Conversion succeeded, so only evaluation can have failed.
			if _, _, perr := mathparser.EvalPostfix(p); perr != err {
				t.Errorf("%q gave %v but postfix %q gave %v", s, err, p, perr)
			}
			return
		}
		q, _, err := mathparser.EvalPostfix(p)
		if err != nil {
			t.Fatalf("%q evaluated but postfix %q gave %v", s, p, err)
		}
		if want := mathparser.FormatFloat(r); q != want {
			t.Errorf("%q gave %s but postfix %q gave %s", s, want, p, q)
		}
	})
}
