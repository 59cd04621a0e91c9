package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
)

const historyFile = ".mathparser_history"

// repl runs an interactive prompt until EOF or :quit.
func (c *calc) repl(ctx context.Context) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(line, ":") {
			if c.command(ctx, line) {
				return nil
			}
			continue
		}
		c.run(ctx, line)
	}
}

// command runs a REPL command and reports whether the REPL should exit.
func (c *calc) command(ctx context.Context, line string) (exit bool) {
	f := strings.Fields(line)
	switch strings.ToLower(f[0]) {
	case ":quit", ":q":
		return true
	case ":history":
		if c.hist == nil {
			fmt.Fprintln(c.out, "no history; start with -history file.db")
			return false
		}
		n := 10
		if len(f) > 1 {
			k, err := strconv.Atoi(f[1])
			if err != nil {
				fmt.Fprintf(c.out, "bad count %q\n", f[1])
				return false
			}
			n = k
		}
		es, err := c.hist.Recent(ctx, n)
		if err != nil {
			fmt.Fprintln(c.out, err)
			return false
		}
		// Oldest first reads naturally above the prompt.
		for i := len(es) - 1; i >= 0; i-- {
			e := es[i]
			r := e.Result
			if e.Err != "" {
				r = e.Err
			}
			fmt.Fprintf(c.out, "%d\t%s\t%s = %s\n", e.ID, e.At.Format("2006-01-02 15:04:05"), e.Expr, r)
		}
	case ":postfix":
		c.postfix = !c.postfix
		fmt.Fprintf(c.out, "postfix %v\n", c.postfix)
	case ":debug":
		c.trace = !c.trace
		fmt.Fprintf(c.out, "debug %v\n", c.trace)
	default:
		fmt.Fprintln(c.out, "unknown command; try :quit :history [n] :postfix :debug")
	}
	return false
}
