package main

// Set 3 covers process termination, recall-while, type queries, integer
// bitwise ops, character-level string access, and the inverted (bottom-
// relative) stack primitives.
var set3 = instructionSet{
	'q': quitProgram,
	'w': recallWhile,
	'n': isNumber,
	's': isString,
	'a': bitwiseAnd,
	'o': bitwiseOr,
	'i': truncateNumber,
	'm': moduloNumbers,
	't': toChar,
	'c': charAt,
	'r': replaceChar,
	'p': invCopyN,
	'k': invMoveN,
	'b': swap1,
	'd': swap2,
	'h': swap3,
}

// Char  Effect
//  q    terminate the entire program, unwinding every interpreter frame
func quitProgram(it *Interpreter) error { return it.host.quit() }

// Char  Effect
//  w    recall-while: pop String code once; then repeatedly pop test and
//       exec code while test is truthy
func recallWhile(it *Interpreter) error {
	code, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	for {
		test, err := it.host.stack.Pop()
		if err != nil {
			return err
		}
		if !test.Truthy() {
			return nil
		}
		if err := it.exec(code); err != nil {
			return err
		}
	}
}

// Char  Effect
//  n    pop v, push 1 if v is a Number else 0
func isNumber(it *Interpreter) error {
	v, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(v.IsNumber()))
	return nil
}

// Char  Effect
//  s    pop v, push 1 if v is a String else 0
func isString(it *Interpreter) error {
	v, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(v.IsString()))
	return nil
}

// Char  Effect
//  a    bitwise AND of two Numbers, each truncated to int first
func bitwiseAnd(it *Interpreter) error {
	a, b, err := popTwoInts(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(float64(a & b)))
	return nil
}

// Char  Effect
//  o    bitwise OR
func bitwiseOr(it *Interpreter) error {
	a, b, err := popTwoInts(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(float64(a | b)))
	return nil
}

// Char  Effect
//  i    truncate Number toward zero, push result as a Number
func truncateNumber(it *Interpreter) error {
	n, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(float64(n)))
	return nil
}

// Char  Effect
//  m    modulo of two Numbers (pop b then a, push a mod b); b==0 is an
//       arithmetic error
func moduloNumbers(it *Interpreter) error {
	a, b, err := popTwoInts(&it.host.stack)
	if err != nil {
		return err
	}
	if b == 0 {
		return arithError{op: "modulo"}
	}
	it.host.stack.Push(Number(float64(a % b)))
	return nil
}

// Char  Effect
//  t    pop Number k, push chr(floor(k) mod 256) as a single-byte String
func toChar(it *Interpreter) error {
	k, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	k %= 256
	if k < 0 {
		k += 256
	}
	it.host.stack.Push(String(string([]byte{byte(k)})))
	return nil
}

// Char  Effect
//  c    char-at: pop Number idx, String s; require 0 <= floor(idx) < len(s);
//       push Number(byte value)
func charAt(it *Interpreter) error {
	idx, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	s, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(s) {
		return boundsError{index: idx, len: len(s)}
	}
	it.host.stack.Push(Number(float64(s[idx])))
	return nil
}

// Char  Effect
//  r    replace-char: pop String repl, Number idx, String s; bounds-checked
//       as c; replace byte idx of s with repl[0]; push the resulting String
func replaceChar(it *Interpreter) error {
	repl, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	idx, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	s, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(s) {
		return boundsError{index: idx, len: len(s)}
	}
	if len(repl) == 0 {
		return boundsError{index: 0, len: 0}
	}
	out := []byte(s)
	out[idx] = repl[0]
	it.host.stack.Push(String(string(out)))
	return nil
}

// Char  Effect
//  p    inverted-copy: pop Number n, stack.invcopy(floor(n)) -- counts from
//       the bottom of the stack
func invCopyN(it *Interpreter) error {
	n, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	return it.host.stack.InvCopy(n)
}

// Char  Effect
//  k    inverted-move: pop Number n, stack.invmove(floor(n))
func invMoveN(it *Interpreter) error {
	n, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	return it.host.stack.InvMove(n)
}

// Char  Effect
//  b    swap = swapn(1)
func swap1(it *Interpreter) error { return it.host.stack.Swapn(1) }

// Char  Effect
//  d    swap2 = swapn(2)
func swap2(it *Interpreter) error { return it.host.stack.Swapn(2) }

// Char  Effect
//  h    swap3 = swapn(3)
func swap3(it *Interpreter) error { return it.host.stack.Swapn(3) }
