package main

// Set 0 has priority: every command dispatch is checked against this table
// first, regardless of which set is currently active (Interpreter.dispatch).
// Only 'x' may change the active set at runtime from a popped value; 'e'/
// 'f'/'g' are the literal equivalents baked into the program text itself.
var set0 = instructionSet{
	'e': activate1,
	'f': activate2,
	'g': activate3,
	'x': activateFromStack,
	'j': pushActive,
	'z': nop,
}

// Char  Name        Effect
//  e    activate1   active_set <- 1
func activate1(it *Interpreter) error { it.activeSet = 1; return nil }

// Char  Name        Effect
//  f    activate2   active_set <- 2
func activate2(it *Interpreter) error { it.activeSet = 2; return nil }

// Char  Name        Effect
//  g    activate3   active_set <- 3
func activate3(it *Interpreter) error { it.activeSet = 3; return nil }

// Char  Name                  Effect
//  x    activate-from-stack   pop Number n; require 0 <= floor(n) < 4;
//                             active_set <- floor(n), else fail
func activateFromStack(it *Interpreter) error {
	v, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	n, err := v.Int()
	if err != nil {
		return err
	}
	if n < 0 || n >= len(instructionSets) {
		return errNoSuchSet(n)
	}
	it.activeSet = n
	return nil
}

// Char  Name          Effect
//  j    push-active   push Number(active_set)
func pushActive(it *Interpreter) error {
	it.host.stack.Push(Number(float64(it.activeSet)))
	return nil
}

// Char  Name   Effect
//  z    nop    --
func nop(it *Interpreter) error { return nil }
