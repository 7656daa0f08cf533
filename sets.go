package main

// instructionSet maps a command character to its handler. Each of the four
// fixed tables is built once at package init time; set 0 has priority and is
// consulted before the active set on every dispatch (see Interpreter.dispatch).
type instructionSet map[byte]func(*Interpreter) error

var instructionSets [4]instructionSet

func init() {
	instructionSets[0] = set0
	instructionSets[1] = set1
	instructionSets[2] = set2
	instructionSets[3] = set3
}
