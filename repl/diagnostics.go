package repl

import (
	"errors"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/RZakaria1/LDI-Interpreter/config"
	"github.com/RZakaria1/LDI-Interpreter/evaluator"
	"github.com/RZakaria1/LDI-Interpreter/lexer"
	"github.com/RZakaria1/LDI-Interpreter/parser"
)

type printer struct {
	out    io.Writer
	header *color.Color
	detail *color.Color
}

func newPrinter(out io.Writer, mode config.ColorMode) *printer {
	p := &printer{
		out:    out,
		header: color.New(color.FgRed, color.Bold),
		detail: color.New(color.FgYellow),
	}
	switch mode {
	case config.ColorAlways:
		p.header.EnableColor()
		p.detail.EnableColor()
	case config.ColorNever:
		p.header.DisableColor()
		p.detail.DisableColor()
	}
	return p
}

// errorKind names the class of failure for the diagnostic header.
func errorKind(err error) string {
	var (
		lexErr  *lexer.Error
		synErr  *parser.Error
		nameErr *evaluator.NameError
		typeErr *evaluator.TypeError
	)
	switch {
	case errors.As(err, &lexErr):
		return "lexer"
	case errors.As(err, &synErr):
		return "parser"
	case errors.As(err, &nameErr):
		return "name"
	case errors.As(err, &typeErr):
		return "type"
	default:
		return "runtime"
	}
}

// printError reports a failed line. A name error also lists the names
// bound at that point.
func (p *printer) printError(err *LineError, bound []string) {
	p.header.Fprintf(p.out, "Woops! line %d: %s error\n", err.Line, errorKind(err.Err))
	p.detail.Fprintf(p.out, "\t%s\n", err.Text)
	p.detail.Fprintf(p.out, "\t%s\n", err.Err)

	var nameErr *evaluator.NameError
	if !errors.As(err.Err, &nameErr) {
		return
	}
	if len(bound) == 0 {
		p.detail.Fprintf(p.out, "\tbound: (none)\n")
		return
	}
	p.detail.Fprintf(p.out, "\tbound: %s\n", strings.Join(bound, ", "))
}
