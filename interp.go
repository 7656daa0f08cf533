package main

// Interpreter executes one Program against the shared Stack owned by a
// Host. It holds only per-run state: the instruction pointer and the
// currently active instruction set. A child Interpreter spawned for
// exec/while inherits the parent's active set at construction time but
// never writes back to it; the parent's ip is untouched by anything a child
// does.
type Interpreter struct {
	prog      Program
	ip        int
	activeSet int
	host      *Host
}

// newInterpreter builds an Interpreter over prog, inheriting activeSet from
// whatever spawned it (0 for the top-level run).
func newInterpreter(host *Host, prog Program, activeSet int) *Interpreter {
	return &Interpreter{prog: prog, ip: 0, activeSet: activeSet, host: host}
}

// Run drives step() to completion, returning the first error encountered (if
// any). A quitSignal bubbles up unchanged so the Host can unwind every
// nested frame.
func (it *Interpreter) Run() error {
	for {
		done, err := it.step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// step executes exactly one Item and reports whether the program has run to
// completion.
func (it *Interpreter) step() (done bool, err error) {
	if it.ip >= len(it.prog) {
		return true, nil
	}

	item := it.prog[it.ip]
	if err := it.host.countStep(); err != nil {
		return false, programError{ip: it.ip, prog: it.prog, cause: err}
	}
	it.host.trace(it, item)

	if !item.IsCommand() {
		it.host.stack.Push(item.constant)
		it.ip++
		return false, nil
	}

	if err := it.dispatch(item.command); err != nil {
		if _, isQuit := err.(quitSignal); isQuit {
			return false, err
		}
		return false, programError{ip: it.ip, prog: it.prog, cause: err}
	}
	it.ip++
	return false, nil
}

// dispatch implements the priority rule: set 0 is tried first on every
// command, regardless of the active set; only if it doesn't claim the
// command does the active set get a chance.
func (it *Interpreter) dispatch(c byte) error {
	if h, ok := instructionSets[0][c]; ok {
		return h(it)
	}
	if it.activeSet < 0 || it.activeSet >= len(instructionSets) {
		return errNoSuchSet(it.activeSet)
	}
	h, ok := instructionSets[it.activeSet][c]
	if !ok {
		return errNoSuchCommand(it.activeSet, c)
	}
	return h(it)
}

// skip adjusts ip by delta BEFORE step's own post-increment, so the net
// effect on ip is delta+1 (skipBy/skipByDouble in set 2).
func (it *Interpreter) skip(delta int) {
	it.ip += delta
}

// exec runs code as a freshly parsed child Program, sharing this
// Interpreter's Stack (via the Host) and inheriting its active set. Errors
// are wrapped per the exec-error prefixing rule (see errors.go).
func (it *Interpreter) exec(code string) error {
	prog, err := Parse(code)
	if err != nil {
		return execError{kind: "parse", cause: err}
	}
	child := newInterpreter(it.host, prog, it.activeSet)
	if err := child.Run(); err != nil {
		if _, isQuit := err.(quitSignal); isQuit {
			return err
		}
		if _, isProgErr := err.(programError); isProgErr {
			return execError{kind: "runtime", cause: err}
		}
		return execError{kind: "other", cause: err}
	}
	return nil
}
