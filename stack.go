package main

// Stack is the LIFO sequence of Values shared by the top-level Interpreter
// and every child Interpreter spawned underneath it. Indices n passed to
// swapn/copy/move/insert count down from the top (n=0 is the top itself);
// invcopy/invmove count up from the bottom (0 is the oldest element).
type Stack struct {
	vs []Value
}

// Len returns the current stack depth.
func (s *Stack) Len() int { return len(s.vs) }

// Push appends a Value to the top of the stack.
func (s *Stack) Push(v Value) { s.vs = append(s.vs, v) }

// Pop removes and returns the top Value, or a stack error if empty.
func (s *Stack) Pop() (Value, error) {
	i := len(s.vs) - 1
	if i < 0 {
		return Value{}, stackError{op: "pop", cause: errStackEmpty}
	}
	v := s.vs[i]
	s.vs = s.vs[:i]
	return v, nil
}

// at translates a from-the-top index n into an absolute slice index,
// validating it references an existing element.
func (s *Stack) at(n int) (int, error) {
	if n < 0 {
		return 0, stackError{op: "index", cause: indexError{index: n, size: len(s.vs)}}
	}
	i := len(s.vs) - 1 - n
	if i < 0 {
		return 0, stackError{op: "index", cause: indexError{index: n, size: len(s.vs)}}
	}
	return i, nil
}

// invAt validates an absolute from-the-bottom index.
func (s *Stack) invAt(n int) (int, error) {
	if n < 0 || n >= len(s.vs) {
		return 0, stackError{op: "index", cause: indexError{index: n, size: len(s.vs)}}
	}
	return n, nil
}

// Swapn exchanges the top of the stack with the element n below it.
func (s *Stack) Swapn(n int) error {
	i, err := s.at(n)
	if err != nil {
		return err
	}
	top := len(s.vs) - 1
	s.vs[i], s.vs[top] = s.vs[top], s.vs[i]
	return nil
}

// Copy appends a duplicate of the element n below the top.
func (s *Stack) Copy(n int) error {
	i, err := s.at(n)
	if err != nil {
		return err
	}
	s.vs = append(s.vs, s.vs[i])
	return nil
}

// Move appends the element n below the top, then removes the original, so
// the element is lifted to the top.
func (s *Stack) Move(n int) error {
	i, err := s.at(n)
	if err != nil {
		return err
	}
	v := s.vs[i]
	s.vs = append(s.vs, v)
	s.vs = append(s.vs[:i], s.vs[i+1:]...)
	return nil
}

// Insert places v so that it becomes the element at index n+1 from the top
// (one deeper than position n).
func (s *Stack) Insert(n int, v Value) error {
	if n < 0 {
		return stackError{op: "insert", cause: indexError{index: n, size: len(s.vs)}}
	}
	i := len(s.vs) - n - 1
	if i < 0 || i > len(s.vs) {
		return stackError{op: "insert", cause: indexError{index: n, size: len(s.vs)}}
	}
	s.vs = append(s.vs, Value{})
	copy(s.vs[i+1:], s.vs[i:])
	s.vs[i] = v
	return nil
}

// InvCopy appends a duplicate of the element n from the bottom (0 = oldest).
func (s *Stack) InvCopy(n int) error {
	i, err := s.invAt(n)
	if err != nil {
		return err
	}
	s.vs = append(s.vs, s.vs[i])
	return nil
}

// InvMove appends a duplicate of the element n from the bottom, then deletes
// the element at that original absolute index. The append happens first, at
// the far end of the slice, so index n still refers to the original
// element's position -- it is not shifted by the append.
func (s *Stack) InvMove(n int) error {
	i, err := s.invAt(n)
	if err != nil {
		return err
	}
	v := s.vs[i]
	s.vs = append(s.vs, v)
	s.vs = append(s.vs[:i], s.vs[i+1:]...)
	return nil
}

// Values returns a snapshot of the current stack contents, top-last, for
// diagnostics (trace printing, dumps).
func (s *Stack) Values() []Value {
	out := make([]Value, len(s.vs))
	copy(out, s.vs)
	return out
}
