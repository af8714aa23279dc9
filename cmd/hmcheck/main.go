// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// hmcheck infers types for programs written in the YAML program format and prints the type of
// each top-level declaration.
//
// Usage:
//
//	hmcheck [-color auto|always|never] [-v] [file.yaml ...]
//
// The program is read from stdin when no files are given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/wdamron/hm"
	"github.com/wdamron/hm/ast"
	"github.com/wdamron/hm/types"
)

const (
	colorName  = "\x1b[1;36m"
	colorError = "\x1b[1;31m"
	colorReset = "\x1b[0m"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type checker struct {
	ctx    *hm.InferenceContext
	logger *log.Logger
	stdout io.Writer
	stderr io.Writer
	color  bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hmcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	colorMode := fs.String("color", "auto", "colorize output: auto, always, or never")
	verbose := fs.Bool("v", false, "log progress to stderr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: hmcheck [options] [file.yaml ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	color, err := useColor(*colorMode, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "hmcheck:", err)
		return 2
	}

	c := &checker{
		ctx:    hm.NewContext(),
		logger: log.New(io.Discard, "hmcheck: ", 0),
		stdout: stdout,
		stderr: stderr,
		color:  color,
	}
	if *verbose {
		c.logger.SetOutput(stderr)
	}

	if fs.NArg() == 0 {
		return c.check("<stdin>", stdin)
	}
	status := 0
	for _, path := range fs.Args() {
		if fs.NArg() > 1 {
			fmt.Fprintf(stdout, "%s:\n", path)
		}
		if code := c.checkFile(path); code != 0 {
			status = code
		}
	}
	return status
}

func (c *checker) checkFile(path string) int {
	f, err := os.Open(path)
	if err != nil {
		c.errorf("%v", err)
		return 1
	}
	defer f.Close()
	return c.check(path, f)
}

func (c *checker) check(name string, r io.Reader) int {
	stmts, err := ast.DecodeProgram(r)
	if err != nil {
		c.errorf("%s: %v", name, err)
		return 1
	}
	c.logger.Printf("%s: decoded %d statements (%d expressions)", name, len(stmts), ast.CountExprs(stmts))

	env, err := c.ctx.InferProgram(hm.NewTypeEnv(), stmts)
	c.logger.Printf("%s: allocated %d type-variables", name, c.ctx.VarCount())
	if err != nil {
		c.errorf("%s: statement %d: %v", name, c.ctx.InvalidStmt()+1, err)
		if e := c.ctx.InvalidExpr(); e != nil {
			fmt.Fprintf(c.stderr, "  in %s: %s\n", e.ExprName(), ast.ExprString(e))
		}
		return 1
	}

	env.Range(func(name string, s *types.Scheme) bool {
		if c.color {
			fmt.Fprintf(c.stdout, "%s%s%s : %s\n", colorName, name, colorReset, s)
		} else {
			fmt.Fprintf(c.stdout, "%s : %s\n", name, s)
		}
		return true
	})
	return 0
}

func (c *checker) errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.color {
		msg = colorError + msg + colorReset
	}
	fmt.Fprintln(c.stderr, msg)
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		// NO_COLOR convention: https://no-color.org/
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	}
	return false, errors.New("unknown color mode " + mode)
}
