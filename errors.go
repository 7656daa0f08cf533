package main

import (
	"fmt"
	"strings"
)

// typeError reports that an operand had the wrong Value variant.
type typeError struct {
	expected valueType
	got      valueType
}

func (err typeError) Error() string {
	return fmt.Sprintf("type error: expected %v, got %v", err.expected, err.got)
}

// stackError reports an out-of-range stack access: pop from empty, an index
// beyond the bottom, or an insert at an invalid index.
type stackError struct {
	op    string
	cause error
}

func (err stackError) Error() string {
	if err.cause != nil {
		return fmt.Sprintf("stack error in %v: %v", err.op, err.cause)
	}
	return fmt.Sprintf("stack error in %v", err.op)
}

func (err stackError) Unwrap() error { return err.cause }

var errStackEmpty = fmt.Errorf("stack is empty")

// indexError names an out-of-range index derived from a stack/string
// operation's Number operand.
type indexError struct {
	index int
	size  int
}

func (err indexError) Error() string {
	return fmt.Sprintf("index %v out of range for size %v", err.index, err.size)
}

// dispatchError reports an invalid active-set selection or a command
// character absent from whichever set it was dispatched against.
type dispatchError struct {
	mess string
}

func (err dispatchError) Error() string { return err.mess }

func errNoSuchSet(n int) error {
	return dispatchError{fmt.Sprintf("no such set %v", n)}
}

func errNoSuchCommand(set int, c byte) error {
	return dispatchError{fmt.Sprintf("set %v has no command %q", set, string(c))}
}

// arithError reports division or modulo by zero.
type arithError struct{ op string }

func (err arithError) Error() string { return fmt.Sprintf("%v by zero", err.op) }

// boundsError reports a char-at/replace-char index outside [0, len).
type boundsError struct {
	index int
	len   int
}

func (err boundsError) Error() string {
	return fmt.Sprintf("index %v out of bounds for string of length %v", err.index, err.len)
}

// execError wraps a failure raised by a recursively evaluated String (the
// exec/while/recall-while family), per the parent-context prefixing rule.
type execError struct {
	kind  string
	cause error
}

func (err execError) Error() string {
	switch err.kind {
	case "parse":
		return fmt.Sprintf("exec: parsing of string failed: %v", err.cause)
	case "runtime":
		return fmt.Sprintf("exec: sub-interpreter runtime error: %v", err.cause)
	default:
		return fmt.Sprintf("exec: sub-interpreter failed: %v", err.cause)
	}
}

func (err execError) Unwrap() error { return err.cause }

// quitSignal is not an error in the user-facing sense: it is a cooperative
// termination request that unwinds every Interpreter frame back to the Host.
type quitSignal struct{}

func (quitSignal) Error() string { return "quit" }

// programError decorates any error raised while executing an Item with the
// instruction pointer and an ip-context window -- the same up-to-5-before/
// after, ->cur<- windowing contextWindow applies to source bytes, applied
// instead to the Item stream (see itemWindow below).
type programError struct {
	ip    int
	prog  Program
	cause error
}

func (err programError) Error() string {
	return fmt.Sprintf("runtime error at ip=%v: %v: %v", err.ip, itemWindow(err.prog, err.ip), err.cause)
}

func (err programError) Unwrap() error { return err.cause }

// itemWindow renders the up-to-5-Items-before/after window around ip in
// prog, comma-joined, with ->cur<- markers around the focal Item and
// ellipses where the window was truncated -- the Item-stream analogue of
// contextWindow's source-byte windowing, per gib.py's items_errstr.
func itemWindow(prog Program, ip int) string {
	start := ip - 5
	if start < 0 {
		start = 0
	}
	end := ip + 6
	if end > len(prog) {
		end = len(prog)
	}

	var parts []string
	if start != 0 {
		parts = append(parts, "...")
	}
	for i := start; i < ip; i++ {
		parts = append(parts, prog[i].String())
	}

	focal := "<end>"
	if ip >= 0 && ip < len(prog) {
		focal = prog[ip].String()
	}
	parts = append(parts, fmt.Sprintf("->%s<-", focal))

	for i := ip + 1; i < end; i++ {
		parts = append(parts, prog[i].String())
	}
	if end != len(prog) {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}
