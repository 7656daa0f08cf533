package main

// Set 1 covers arithmetic, value<->string conversion, I/O, and the
// positional stack-addressing primitives. Binary arithmetic pops b then a
// and pushes f(a,b) -- operand a was pushed first, so it sits one deeper.
var set1 = instructionSet{
	'u': duplicateTop,
	'a': addNumbers,
	's': subNumbers,
	'm': mulNumbers,
	'd': divNumbers,
	't': toStr,
	'i': toNum,
	'c': concatStrings,
	'o': outputLine,
	'q': outputInline,
	'n': readChar,
	'l': readLine,
	'h': substring,
	'y': strLen,
	'v': discard,
	'p': copyN,
	'k': moveN,
	'r': stackSize,
}

// Char  Name    Function
//  u    dup     copy(0): append a duplicate of the top
func duplicateTop(it *Interpreter) error { return it.host.stack.Copy(0) }

// Char  Name   Function
//  a    add    pop b, pop a, push a+b
func addNumbers(it *Interpreter) error {
	a, b, err := popTwoNumbers(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(a + b))
	return nil
}

// Char  Name   Function
//  s    sub    pop b, pop a, push a-b
func subNumbers(it *Interpreter) error {
	a, b, err := popTwoNumbers(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(a - b))
	return nil
}

// Char  Name   Function
//  m    mul    pop b, pop a, push a*b
func mulNumbers(it *Interpreter) error {
	a, b, err := popTwoNumbers(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(a * b))
	return nil
}

// Char  Name   Function
//  d    div    pop b, pop a, push a/b; b==0 is a divide-by-zero error
func divNumbers(it *Interpreter) error {
	a, b, err := popTwoNumbers(&it.host.stack)
	if err != nil {
		return err
	}
	if b == 0 {
		return arithError{op: "division"}
	}
	it.host.stack.Push(Number(a / b))
	return nil
}

// Char  Name        Function
//  t    to-string   pop Number, push its V2Str rendering as a String
func toStr(it *Interpreter) error {
	n, err := popNumber(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(String(V2Str(Number(n))))
	return nil
}

// Char  Name        Function
//  i    to-number   pop String; push it parsed as a Number, or push the
//                    original String back unchanged if it doesn't parse
func toNum(it *Interpreter) error {
	s, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	if n, ok := parseNumber(s); ok {
		it.host.stack.Push(Number(n))
	} else {
		it.host.stack.Push(String(s))
	}
	return nil
}

// Char  Name      Function
//  c    concat    pop b, pop a, push a++b
func concatStrings(it *Interpreter) error {
	a, b, err := popTwoStrings(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(String(a + b))
	return nil
}

// Char  Name           Function
//  o    output-line    pop v, write V2Str(v) followed by a newline
func outputLine(it *Interpreter) error {
	v, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	return it.host.writeString(V2Str(v) + "\n")
}

// Char  Name             Function
//  q    output-inline    pop v, write V2Str(v) with no terminator
func outputInline(it *Interpreter) error {
	v, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	return it.host.writeString(V2Str(v))
}

// Char  Name         Function
//  n    read-char    push Number of the next input byte, or -1 at EOF
func readChar(it *Interpreter) error {
	v, err := it.host.readByte()
	if err != nil {
		return err
	}
	it.host.stack.Push(v)
	return nil
}

// Char  Name         Function
//  l    read-line    push the next input line including its trailing
//                     newline, or an empty String at EOF
func readLine(it *Interpreter) error {
	v, err := it.host.readLine()
	if err != nil {
		return err
	}
	it.host.stack.Push(v)
	return nil
}

// Char  Name         Function
//  h    substring    pop end, pop start, pop s; push s[floor(start):floor(end)]
//                     (half-open, like normal slicing)
func substring(it *Interpreter) error {
	end, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	start, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	s, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(String(pySlice(s, start, end)))
	return nil
}

// pySlice mirrors Python's forgiving string-slicing semantics, which is
// what the reference implementation's substring command does verbatim
// (strn[int(start):int(end)]): negative indices count from the end, and
// indices outside [0, len(s)] are clamped rather than rejected.
func pySlice(s string, start, end int) string {
	n := len(s)
	if start < 0 {
		start += n
	}
	if end < 0 {
		end += n
	}
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}

// Char  Name      Function
//  y    strlen    pop String, push its byte length as a Number
func strLen(it *Interpreter) error {
	s, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(float64(len(s))))
	return nil
}

// Char  Name       Function
//  v    discard    pop and drop the top value
func discard(it *Interpreter) error {
	_, err := it.host.stack.Pop()
	return err
}

// Char  Name      Function
//  p    copy-n    pop Number n, stack.copy(floor(n))
func copyN(it *Interpreter) error {
	n, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	return it.host.stack.Copy(n)
}

// Char  Name      Function
//  k    move-n    pop Number n, stack.move(floor(n))
func moveN(it *Interpreter) error {
	n, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	return it.host.stack.Move(n)
}

// Char  Name          Function
//  r    stack-size    push the current stack length as a Number
func stackSize(it *Interpreter) error {
	it.host.stack.Push(Number(float64(it.host.stack.Len())))
	return nil
}
