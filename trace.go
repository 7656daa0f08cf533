package main

import (
	"fmt"
	"io"
)

var errStepLimit = fmt.Errorf("step limit exceeded")

// countStep enforces an optional total-step budget and the run's context
// deadline, both shared across the top-level Interpreter and every child it
// spawns (they all share the same Host).
func (h *Host) countStep() error {
	if h.ctx != nil {
		if err := h.ctx.Err(); err != nil {
			return err
		}
	}
	if h.stepLimit == 0 {
		return nil
	}
	h.steps++
	if h.steps > h.stepLimit {
		return errStepLimit
	}
	return nil
}

// trace logs one step's ip, Item, active set, and stack contents, if a
// trace sink was installed via WithLogf. This is the -trace CLI facility.
func (h *Host) trace(it *Interpreter, item Item) {
	if h.logf == nil {
		return
	}
	h.logf("@%-4v %-8v set:%v stack:%v", it.ip, item, it.activeSet, h.stack.Values())
}

// dump renders the final stack and active set after a clean run, for the
// -dump CLI flag.
func dump(it *Interpreter, w io.Writer) {
	fmt.Fprintf(w, "# dump\n  active set: %v\n  stack: %v\n", it.activeSet, it.host.stack.Values())
}
