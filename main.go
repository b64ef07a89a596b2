package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/RZakaria1/LDI-Interpreter/config"
	"github.com/RZakaria1/LDI-Interpreter/repl"
)

const version = "ldi 0.1.0"

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run parses argv and executes the program it names. It returns the process
// exit code.
func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "ldi: ", 0)

	opts, optind, err := getopt.Getopts(argv, "c:efdC:ihV")
	if err != nil {
		logger.Println(err)
		printUsage(stderr)
		return 2
	}
	args := argv[optind:]

	cfg := config.Default()
	for _, opt := range opts {
		if opt.Option == 'c' {
			if cfg, err = config.Load(opt.Value); err != nil {
				logger.Println(err)
				return 1
			}
		}
	}

	interactive := false
	for _, opt := range opts {
		switch opt.Option {
		case 'e':
			cfg.Echo = true
		case 'f':
			cfg.FailFast = true
		case 'd':
			cfg.DumpAST = true
		case 'C':
			cfg.Color = config.ColorMode(opt.Value)
			if err := cfg.Validate(); err != nil {
				logger.Println(err)
				return 2
			}
		case 'i':
			interactive = true
		case 'h':
			printUsage(stdout)
			return 0
		case 'V':
			fmt.Fprintln(stdout, version)
			return 0
		}
	}

	if interactive {
		// -i takes no source file; one given alongside it is a request for help
		if len(args) != 0 {
			printUsage(stdout)
			return 0
		}
		repl.Start(stdin, stdout, cfg)
		return 0
	}

	// anything but exactly one source is a request for help, not an error
	if len(args) != 1 {
		printUsage(stdout)
		return 0
	}

	in := stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			logger.Println(err)
			return 1
		}
		defer f.Close()
		in = f
	}

	if err := repl.Run(in, stdout, stderr, cfg); err != nil {
		// a fail-fast *LineError has already been reported by the runner
		var lineErr *repl.LineError
		if !errors.As(err, &lineErr) {
			logger.Println(err)
		}
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: ldi [options] <source_file>
Runs <source_file> one statement per line; "-" reads standard input.
options:
  -c FILE  read settings from a YAML config file
  -e       echo "<line> = <value>" for expression statements
  -f       stop at the first failing line
  -d       dump each parsed statement to stderr
  -C MODE  color diagnostics: auto, always or never
  -i       start an interactive session; no <source_file> may be given
  -h       show this help
  -V       print the version
`)
}
