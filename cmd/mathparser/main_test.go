package main

import (
	"context"
	"strings"
	"testing"

	"github.com/zephyrtronium/mathparser/internal/history"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		trace   bool
		postfix bool
		ok      bool
		out     string
	}{
		{"result", "((2048/4)-12)*log(100,10)", false, false, true, "1000\n"},
		{"trace", "50 * -45", true, false, true, "NaN m 45 = -45\n50 * -45 = -2250\n-2250\n"},
		{"error", "(5 + 5", false, false, false, "Mismatched parenthesis\n"},
		{"function", "sqrt!4", false, false, false, "Invalid function\n"},
		{"postfix", "((8*21)+89/14)^4", false, true, true, "8 21 * 89 14 / + 4 ^\n"},
		{"blank", "  ", false, false, true, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b strings.Builder
			calc := calc{out: &b, trace: c.trace, postfix: c.postfix}
			if ok := calc.run(context.Background(), c.src); ok != c.ok {
				t.Errorf("%q: want ok=%t, got %t", c.src, c.ok, ok)
			}
			if b.String() != c.out {
				t.Errorf("%q: want output %q, got %q", c.src, c.out, b.String())
			}
		})
	}
}

func TestRunReader(t *testing.T) {
	in := "1+2\n\n(5 + 5\n50 * -45\n"
	var b strings.Builder
	h := history.NewMemory()
	c := calc{out: &b, hist: h}
	ok, err := c.runReader(context.Background(), strings.NewReader(in), true)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("expected failure from mismatched parenthesis")
	}
	want := "3\nMismatched parenthesis\n-2250\n"
	if b.String() != want {
		t.Errorf("want output %q, got %q", want, b.String())
	}
	es, err := h.Recent(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(es) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(es))
	}
	if es[1].Expr != "(5 + 5" || es[1].Err != "Mismatched parenthesis" {
		t.Errorf("wrong history entry %+v", es[1])
	}
	if es[0].Result != "-2250" || es[0].Steps != 0 {
		t.Errorf("wrong history entry %+v", es[0])
	}
}

func TestRunReaderWhole(t *testing.T) {
	var b strings.Builder
	c := calc{out: &b}
	ok, err := c.runReader(context.Background(), strings.NewReader("(1 +\n2)\n* 3\n"), false)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || b.String() != "9\n" {
		t.Errorf("want 9, got ok=%t output %q", ok, b.String())
	}
}

func TestCommand(t *testing.T) {
	ctx := context.Background()
	var b strings.Builder
	h := history.NewMemory()
	c := calc{out: &b, hist: h}
	c.run(ctx, "1+1")
	c.run(ctx, "2*")
	b.Reset()
	if c.command(ctx, ":history 5") {
		t.Errorf(":history asked to exit")
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 history lines, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "1\t") || !strings.HasSuffix(lines[0], "1+1 = 2") {
		t.Errorf("wrong first history line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "2* = Invalid notation") {
		t.Errorf("wrong second history line %q", lines[1])
	}
	if !c.command(ctx, ":quit") {
		t.Errorf(":quit didn't ask to exit")
	}
	c.command(ctx, ":debug")
	if !c.trace {
		t.Errorf(":debug didn't enable tracing")
	}
}
