package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/RZakaria1/LDI-Interpreter/config"
	"github.com/RZakaria1/LDI-Interpreter/object"
)

// Start runs an interactive session: one statement per prompt, values of
// expression statements are echoed, failures are reported and the session
// goes on. Bindings live until in is exhausted.
func Start(in io.Reader, out io.Writer, cfg *config.Config) {
	if cfg == nil {
		cfg = config.Default()
	}
	s := newSession(out, out, cfg)
	diag := newPrinter(out, cfg.Color)

	scanner := newLineScanner(in)
	lineNo := 0
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintf(out, "Bye!!\n")
			return
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		_, val, err := s.execLine(line)
		if err != nil {
			diag.printError(&LineError{Line: lineNo, Text: line, Err: err}, s.env.Names())
			continue
		}
		if val != nil && val != object.NULL {
			io.WriteString(out, val.Inspect())
			io.WriteString(out, "\n")
		}
	}
}
