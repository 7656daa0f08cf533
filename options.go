package main

import (
	"bufio"
	"io"

	"github.com/gibberish-lang/gibberish/internal/flushio"
)

// HostOption configures a Host at construction time, following the
// functional-options pattern: small option values, each knowing how to
// apply itself to a *Host.
type HostOption interface{ apply(h *Host) }

type optionFunc func(h *Host)

func (f optionFunc) apply(h *Host) { f(h) }

// WithInput sets the stream read by read-char/read-line.
func WithInput(r io.Reader) HostOption {
	return optionFunc(func(h *Host) { h.in = bufio.NewReader(r) })
}

// WithOutput sets the stream written by output-line/output-inline. Any
// previously set output is flushed first. If w implements io.Closer, it is
// closed by Host.Close.
func WithOutput(w io.Writer) HostOption {
	return optionFunc(func(h *Host) {
		if h.out != nil {
			h.out.Flush()
		}
		h.out = flushio.NewWriteFlusher(w)
		if cl, ok := w.(io.Closer); ok {
			h.closers = append(h.closers, cl)
		}
	})
}

// WithTee mirrors all output written through WithOutput's writer into w as
// well -- useful for capturing a transcript alongside the real output
// stream in tests and tracing.
func WithTee(w io.Writer) HostOption {
	return optionFunc(func(h *Host) {
		h.out = flushio.WriteFlushers(h.out, flushio.NewWriteFlusher(w))
		if cl, ok := w.(io.Closer); ok {
			h.closers = append(h.closers, cl)
		}
	})
}

// WithLogf installs a leveled trace sink; when set, every step logs its ip,
// Item, active set, and stack contents.
func WithLogf(logf func(mess string, args ...interface{})) HostOption {
	return optionFunc(func(h *Host) { h.logf = logf })
}

// WithStepLimit bounds the total number of Items any Run may execute across
// the top-level Interpreter and every child it spawns, failing with a
// runtime error once exceeded. Zero (the default) means unbounded.
func WithStepLimit(limit int) HostOption {
	return optionFunc(func(h *Host) { h.stepLimit = limit })
}
