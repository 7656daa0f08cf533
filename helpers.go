package main

import "strconv"

// parseNumber attempts to parse s as a float using strconv.ParseFloat's
// syntax. Surrounding whitespace is not stripped, so " 42" does not parse.
func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// popNumber pops the top of the stack and requires it to be a Number.
func popNumber(s *Stack) (float64, error) {
	v, err := s.Pop()
	if err != nil {
		return 0, err
	}
	return v.Num()
}

// popInt pops the top of the stack, requires a Number, and truncates it
// toward zero.
func popInt(s *Stack) (int, error) {
	v, err := s.Pop()
	if err != nil {
		return 0, err
	}
	return v.Int()
}

// popString pops the top of the stack and requires it to be a String.
func popString(s *Stack) (string, error) {
	v, err := s.Pop()
	if err != nil {
		return "", err
	}
	return v.Str()
}

// popTwoNumbers pops b then a (a was pushed first), both required Numbers,
// matching every binary arithmetic/comparison command's pop order.
func popTwoNumbers(s *Stack) (a, b float64, err error) {
	b, err = popNumber(s)
	if err != nil {
		return 0, 0, err
	}
	a, err = popNumber(s)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// popTwoStrings pops b then a, both required Strings.
func popTwoStrings(s *Stack) (a, b string, err error) {
	b, err = popString(s)
	if err != nil {
		return "", "", err
	}
	a, err = popString(s)
	if err != nil {
		return "", "", err
	}
	return a, b, nil
}

// popTwoInts pops b then a, both required Numbers truncated toward zero,
// for the bit-shift commands.
func popTwoInts(s *Stack) (a, b int, err error) {
	af, bf, err := popTwoNumbers(s)
	if err != nil {
		return 0, 0, err
	}
	return int(af), int(bf), nil
}

// popTwoValues pops b then a with no type requirement, for the generic
// comparison/equality commands.
func popTwoValues(s *Stack) (a, b Value, err error) {
	b, err = s.Pop()
	if err != nil {
		return Value{}, Value{}, err
	}
	a, err = s.Pop()
	if err != nil {
		return Value{}, Value{}, err
	}
	return a, b, nil
}
