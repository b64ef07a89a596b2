package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/RZakaria1/LDI-Interpreter/ast"
	"github.com/RZakaria1/LDI-Interpreter/config"
	"github.com/RZakaria1/LDI-Interpreter/evaluator"
	"github.com/RZakaria1/LDI-Interpreter/lexer"
	"github.com/RZakaria1/LDI-Interpreter/object"
	"github.com/RZakaria1/LDI-Interpreter/parser"
)

// ErrRunFailed is returned by Run when at least one line failed and the
// run continued past it.
var ErrRunFailed = errors.New("run failed")

// LineError ties a failure to the source line that caused it.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// newLineScanner splits in into lines without the default 64 KiB cap on
// line length.
func newLineScanner(in io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	return scanner
}

// session is the state shared by all lines of one run.
type session struct {
	cfg    *config.Config
	env    *object.Environment
	eval   *evaluator.Evaluator
	errOut io.Writer
}

func newSession(out, errOut io.Writer, cfg *config.Config) *session {
	return &session{
		cfg:    cfg,
		env:    object.NewEnvironment(),
		eval:   evaluator.New(out),
		errOut: errOut,
	}
}

// execLine lexes, parses and evaluates one line. The statement is nil for a
// line without tokens.
func (s *session) execLine(line string) (ast.Statement, object.Object, error) {
	p := parser.New(lexer.New(line))
	stmt, err := p.ParseStatement()
	if err != nil || stmt == nil {
		return nil, nil, err
	}

	if s.cfg.DumpAST {
		dumper.Fdump(s.errOut, stmt)
	}

	val, err := s.eval.Eval(stmt, s.env)
	return stmt, val, err
}

// Run executes a program read line by line from in. Blank lines are
// skipped. print output and echoed values go to out, diagnostics to errOut.
//
// With cfg.FailFast the first failing line ends the run and its *LineError
// is returned. Otherwise every failure is reported and the run continues;
// the result then wraps ErrRunFailed.
func Run(in io.Reader, out, errOut io.Writer, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}
	s := newSession(out, errOut, cfg)
	diag := newPrinter(errOut, cfg.Color)

	scanner := newLineScanner(in)
	lineNo, failed := 0, 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		stmt, val, err := s.execLine(line)
		if err != nil {
			lineErr := &LineError{Line: lineNo, Text: strings.TrimSpace(line), Err: err}
			diag.printError(lineErr, s.env.Names())
			if cfg.FailFast {
				return lineErr
			}
			failed++
			continue
		}

		if cfg.Echo {
			if _, ok := stmt.(*ast.ExpressionStatement); ok {
				fmt.Fprintf(out, "%s = %s\n", strings.TrimSpace(line), val.Inspect())
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading program: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d line(s) failed", ErrRunFailed, failed)
	}
	return nil
}
