package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/zephyrtronium/mathparser"
	"github.com/zephyrtronium/mathparser/internal/history"
)

func main() {
	log.SetFlags(0)
	var (
		src, inname, histname string
		nl, debug, postfix    bool
	)
	flag.StringVar(&src, "s", "", "expression to evaluate")
	flag.StringVar(&inname, "f", "", "input file (- for stdin)")
	flag.StringVar(&histname, "history", "", "sqlite file to record evaluations in")
	flag.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	flag.BoolVar(&debug, "d", false, "print each step of evaluation")
	flag.BoolVar(&postfix, "postfix", false, "print postfix notation instead of evaluating")
	flag.Parse()

	ctx := context.Background()
	c := calc{out: os.Stdout, trace: debug, postfix: postfix}
	if histname != "" {
		h, err := history.NewSQLite(histname)
		if err != nil {
			log.Fatal(err)
		}
		c.hist = h
	}

	ok := true
	for _, arg := range flag.Args() {
		ok = c.run(ctx, arg) && ok
	}
	if src != "" {
		ok = c.run(ctx, src) && ok
	}
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		r, err := c.runReader(ctx, f, nl)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		ok = r && ok
	case inname == "-", src == "" && flag.NArg() == 0:
		if inname == "" && term.IsTerminal(int(os.Stdin.Fd())) {
			if err := c.repl(ctx); err != nil {
				log.Fatal(err)
			}
			break
		}
		// Piped input is line oriented unless it came from -f.
		r, err := c.runReader(ctx, os.Stdin, nl || inname == "")
		if err != nil {
			log.Fatal(err)
		}
		ok = r && ok
	}
	if c.hist != nil {
		if err := c.hist.Close(); err != nil {
			log.Println(err)
		}
	}
	if !ok {
		os.Exit(1)
	}
}

// calc evaluates expressions and prints their results.
type calc struct {
	out     io.Writer
	trace   bool
	postfix bool
	hist    history.Store
}

// run evaluates one expression, printing its trace and result or its error.
// It reports whether evaluation succeeded. Blank input succeeds silently.
func (c *calc) run(ctx context.Context, src string) bool {
	if strings.TrimSpace(src) == "" {
		return true
	}
	var (
		r     string
		trace []string
		err   error
	)
	if c.postfix {
		r, err = mathparser.ToPostfix(src)
	} else {
		var f float32
		f, trace, err = mathparser.Eval(src, mathparser.Trace(c.trace))
		r = mathparser.FormatFloat(f)
	}
	for _, step := range trace {
		fmt.Fprintln(c.out, step)
	}
	e := history.Entry{Expr: strings.TrimSpace(src), Steps: len(trace)}
	if err != nil {
		fmt.Fprintln(c.out, err)
		e.Err = err.Error()
	} else {
		fmt.Fprintln(c.out, r)
		e.Result = r
	}
	if c.hist != nil && !c.postfix {
		if _, herr := c.hist.Add(ctx, e); herr != nil {
			log.Println(herr)
		}
	}
	return err == nil
}

// runReader evaluates the contents of r, either as one expression or as one
// expression per line. It reports whether every expression succeeded.
func (c *calc) runReader(ctx context.Context, r io.Reader, lines bool) (bool, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return false, err
		}
		return c.run(ctx, string(b)), nil
	}
	ok := true
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ok = c.run(ctx, sc.Text()) && ok
	}
	return ok, sc.Err()
}
