package main

// Set 2 covers generic comparison/equality, ip-relative branching, stack
// insertion, logical operators, integer bit-shifts, and the exec/while
// recursive-evaluation commands.
var set2 = instructionSet{
	'u': greaterThan,
	'd': lessThan,
	's': skipBy,
	't': skipByDouble,
	'p': insertAt,
	'a': logicalAnd,
	'o': logicalOr,
	'n': logicalNot,
	'c': execCommand,
	'w': whileClassic,
	'q': equalValues,
	'l': leftShift,
	'r': rightShift,
}

// Char  Effect
//  u    push 1 if a>b else 0 (generic comparison; pop b then a)
func greaterThan(it *Interpreter) error {
	a, b, err := popTwoValues(&it.host.stack)
	if err != nil {
		return err
	}
	less, err := b.Less(a)
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(less))
	return nil
}

// Char  Effect
//  d    push 1 if a<b else 0
func lessThan(it *Interpreter) error {
	a, b, err := popTwoValues(&it.host.stack)
	if err != nil {
		return err
	}
	less, err := a.Less(b)
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(less))
	return nil
}

// Char  Effect
//  s    pop Number n; ip += floor(n) (additive on top of the normal +1)
func skipBy(it *Interpreter) error {
	n, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	it.skip(n)
	return nil
}

// Char  Effect
//  t    pop Number n; ip += floor(n*2)
func skipByDouble(it *Interpreter) error {
	v, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	n, err := v.Num()
	if err != nil {
		return err
	}
	it.skip(int(n * 2))
	return nil
}

// Char  Effect
//  p    pop Number where, then Value thing; stack.insert(where, thing)
func insertAt(it *Interpreter) error {
	where, err := popInt(&it.host.stack)
	if err != nil {
		return err
	}
	thing, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	return it.host.stack.Insert(where, thing)
}

// Char  Effect
//  a    logical AND: pop both, push 1 if both truthy else 0
func logicalAnd(it *Interpreter) error {
	a, b, err := popTwoValues(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(a.Truthy() && b.Truthy()))
	return nil
}

// Char  Effect
//  o    logical OR
func logicalOr(it *Interpreter) error {
	a, b, err := popTwoValues(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(a.Truthy() || b.Truthy()))
	return nil
}

// Char  Effect
//  n    logical NOT (unary)
func logicalNot(it *Interpreter) error {
	v, err := it.host.stack.Pop()
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(!v.Truthy()))
	return nil
}

// Char  Effect
//  c    exec: pop String code; run a child interpreter over it, sharing
//       this Interpreter's Stack and starting from a copy of its active set
func execCommand(it *Interpreter) error {
	code, err := popString(&it.host.stack)
	if err != nil {
		return err
	}
	return it.exec(code)
}

// Char  Effect
//  w    while-classic: loop -- pop test, if falsy break; else pop String
//       code and exec it; repeat
func whileClassic(it *Interpreter) error {
	for {
		test, err := it.host.stack.Pop()
		if err != nil {
			return err
		}
		if !test.Truthy() {
			return nil
		}
		code, err := popString(&it.host.stack)
		if err != nil {
			return err
		}
		if err := it.exec(code); err != nil {
			return err
		}
	}
}

// Char  Effect
//  q    generic equality
func equalValues(it *Interpreter) error {
	a, b, err := popTwoValues(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(boolNumber(a.Equal(b)))
	return nil
}

// Char  Effect
//  l    floor(a) << floor(b), as signed integers
func leftShift(it *Interpreter) error {
	a, b, err := popTwoInts(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(float64(a << uint(b))))
	return nil
}

// Char  Effect
//  r    floor(a) >> floor(b)
func rightShift(it *Interpreter) error {
	a, b, err := popTwoInts(&it.host.stack)
	if err != nil {
		return err
	}
	it.host.stack.Push(Number(float64(a >> uint(b))))
	return nil
}
