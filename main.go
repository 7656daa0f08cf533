package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gibberish-lang/gibberish/internal/logio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run implements the CLI entry point: `<prog> [-trace] <filename> | -`, plus
// the -timeout/-dump auxiliary flags. It is factored out of main so tests can
// drive it without touching the real process streams or exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gibberish", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [-trace] [-timeout duration] [-dump] <filename> | -\n", fs.Name())
	}
	var (
		trace   bool
		dump    bool
		timeout time.Duration
	)
	fs.BoolVar(&trace, "trace", false, "enable per-step trace logging")
	fs.BoolVar(&dump, "dump", false, "print the final stack and active set after a clean run")
	fs.DurationVar(&timeout, "timeout", 0, "bound total run time")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}
	fname := fs.Arg(0)

	var src io.Reader
	if fname == "-" {
		src = stdin
	} else {
		f, err := os.Open(fname)
		if err != nil {
			fmt.Fprintf(stderr, "Can't open file %s\n", fname)
			return 3
		}
		defer f.Close()
		src = f
	}
	source, err := io.ReadAll(src)
	if err != nil {
		fmt.Fprintf(stderr, "Can't open file %s\n", fname)
		return 3
	}

	log := logio.Logger{}
	log.SetOutput(nopCloser{stderr})

	opts := []HostOption{
		WithInput(stdin),
		WithOutput(stdout),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	h := New(opts...)
	defer h.Close()

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	err2 := h.Run(ctx, string(source))

	if dump && err2 == nil {
		h.Dump(stderr)
	}

	switch e := err2.(type) {
	case nil:
		return 0
	case parseError:
		fmt.Fprintf(stderr, "Parse error: %v\n", e)
		return 1
	default:
		fmt.Fprintf(stderr, "Run-time error: %v\n", e)
		return 1
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
