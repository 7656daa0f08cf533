package main

import (
	"bufio"
	"context"
	"io"
	"io/ioutil"
	"strings"

	"github.com/gibberish-lang/gibberish/internal/flushio"
	"github.com/gibberish-lang/gibberish/internal/panicerr"
)

// Host owns the Stack, the process's I/O streams, and the quit signal for
// the lifetime of one run. It constructs the top-level Interpreter and,
// indirectly (through Interpreter.exec), every child Interpreter spawned by
// exec/while/recall-while -- all of which share this Host's Stack by
// reference.
type Host struct {
	stack Stack

	in  *bufio.Reader
	out flushio.WriteFlusher

	closers []io.Closer

	logf      func(mess string, args ...interface{})
	stepLimit int
	steps     int

	ctx context.Context

	top *Interpreter
}

// Dump writes the final stack and active set of the most recent top-level
// run to w, for the -dump CLI flag. It is a no-op if Run has not been
// called yet.
func (h *Host) Dump(w io.Writer) {
	if h.top != nil {
		dump(h.top, w)
	}
}

// New builds a Host from the given options. Input defaults to an empty
// reader and output to io.Discard, matching the teacher-style "safe zero
// value" default options pattern.
func New(opts ...HostOption) *Host {
	h := &Host{
		in:  bufio.NewReader(strings.NewReader("")),
		out: flushio.NewWriteFlusher(ioutil.Discard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(h)
		}
	}
	return h
}

// Close releases any resources registered by WithOutput/WithTee (closers on
// the underlying writers), in reverse registration order.
func (h *Host) Close() (err error) {
	for i := len(h.closers) - 1; i >= 0; i-- {
		if cerr := h.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// Run parses source and executes it as the top-level program, to
// completion, a quit, an error, or the expiry of ctx (checked once per step,
// alongside the step-limit budget -- see countStep). The whole run happens
// inside a single isolated goroutine (see internal/panicerr) so that an
// internal invariant violation surfaced as a Go panic is reported as a plain
// error rather than crashing the process -- this adds no concurrency to the
// language itself, since exactly one goroutine ever executes user code at a
// time.
func (h *Host) Run(ctx context.Context, source string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	h.ctx = ctx
	err := panicerr.Recover("gibberish", func() error {
		prog, err := Parse(source)
		if err != nil {
			return err
		}
		it := newInterpreter(h, prog, 0)
		h.top = it
		return it.Run()
	})
	if ferr := h.out.Flush(); err == nil {
		err = ferr
	}
	if _, isQuit := err.(quitSignal); isQuit {
		return nil
	}
	return err
}

// readByte reads one byte from stdin, returning -1 (as a Number) at EOF,
// per the 'n' (read-char) command.
func (h *Host) readByte() (Value, error) {
	b, err := h.in.ReadByte()
	if err == io.EOF {
		return Number(-1), nil
	}
	if err != nil {
		return Value{}, err
	}
	return Number(float64(b)), nil
}

// readLine reads through the next newline inclusive, or returns an empty
// String at EOF, per the 'l' (read-line) command. An empty input line
// ("\n") is distinguished from EOF ("") because ReadString returns the
// accumulated bytes (here just "\n") together with a nil error, while EOF
// with nothing read returns "" with io.EOF.
func (h *Host) readLine() (Value, error) {
	line, err := h.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return Value{}, err
	}
	return String(line), nil
}

// writeString writes v2str-formatted output through the flush-aware writer
// and flushes it, so that output is visible before the program reads input.
func (h *Host) writeString(s string) error {
	if _, err := h.out.Write([]byte(s)); err != nil {
		return err
	}
	return h.out.Flush()
}

// quit unwinds every Interpreter frame back to the top of Run by returning
// a quitSignal as a normal Go error -- it is not recovered or retried
// anywhere along the way.
func (h *Host) quit() error {
	return quitSignal{}
}
