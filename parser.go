package main

import (
	"fmt"
	"strings"
)

// Item is a single parsed program element: either a push-constant or a
// single-character command.
type Item struct {
	isCommand bool
	constant  Value
	command   byte
}

// Constant builds a push-constant Item.
func Constant(v Value) Item { return Item{constant: v} }

// Command builds a command Item.
func Command(c byte) Item { return Item{isCommand: true, command: c} }

// IsCommand reports whether the Item dispatches a command rather than
// pushing a constant.
func (it Item) IsCommand() bool { return it.isCommand }

func (it Item) String() string {
	if it.isCommand {
		return string(it.command)
	}
	if it.constant.IsString() {
		s, _ := it.constant.Str()
		return fmt.Sprintf("[%s]", s)
	}
	return it.constant.String()
}

// Program is the finite, immutable sequence of Items produced by a parse
// pass.
type Program []Item

// parseError reports a malformed source position, decorated with a context
// window of up to 5 characters before and after the offending index.
type parseError struct {
	source string
	pos    int
	mess   string
}

func (err parseError) Error() string {
	return fmt.Sprintf("%v at position %v (%v)", err.mess, err.pos, contextWindow(err.source, err.pos))
}

// contextWindow renders the up-to-5-characters-before/after window used by
// parse errors, with markers ->c<- around the focal character and ellipses
// where the window was truncated. Runtime errors use the same windowing
// scheme over the Item stream instead of source bytes; see itemWindow in
// errors.go.
func contextWindow(source string, pos int) string {
	start := pos - 5
	if start < 0 {
		start = 0
	}
	var prev strings.Builder
	if start != 0 {
		prev.WriteString("...")
	}
	prev.WriteString(source[start:pos])

	end := pos + 6
	if end > len(source) {
		end = len(source)
	}
	var next strings.Builder
	if pos+1 <= len(source) {
		next.WriteString(source[pos+1 : end])
	}
	if end != len(source) {
		next.WriteString("...")
	}

	focal := byte(' ')
	if pos >= 0 && pos < len(source) {
		focal = source[pos]
	}
	return fmt.Sprintf("%v ->%c<- %v", prev.String(), focal, next.String())
}

// Parse lifts source text into a Program, or returns a parseError with
// position.
func Parse(source string) (Program, error) {
	var prog Program
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch {
		case c >= '0' && c <= '9':
			prog = append(prog, Constant(Number(float64(c-'0'))))
		case c == '[':
			open := i
			var sb strings.Builder
			depth := 1
			for depth > 0 {
				i++
				if i >= len(source) {
					return nil, parseError{source: source, pos: open, mess: "unterminated ["}
				}
				switch source[i] {
				case ']':
					depth--
				case '[':
					depth++
				}
				if depth != 0 {
					sb.WriteByte(source[i])
				}
			}
			prog = append(prog, Constant(String(sb.String())))
		case c == ' ' || c == '\n' || c == '\t':
			// ignored
		case c == ']':
			return nil, parseError{source: source, pos: i, mess: "] without ["}
		default:
			prog = append(prog, Command(c))
		}
	}
	return prog, nil
}
