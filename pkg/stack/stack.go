package stack

// Stack is a LIFO stack backed by a slice.
type Stack[T any] struct {
	xs []T
}

// New returns an empty stack with room for n elements.
func New[T any](n int) Stack[T] {
	return Stack[T]{make([]T, 0, n)}
}

func (s *Stack[T]) Push(x T) {
	s.xs = append(s.xs, x)
}

// Peek returns a pointer to the top of the stack, or nil if the stack is
// empty.  The pointer is invalidated by the next Push.
func (s Stack[T]) Peek() *T {
	if len(s.xs) == 0 {
		return nil
	}
	return &s.xs[len(s.xs)-1]
}

// Pop removes the top of the stack and returns it, or nil if the stack is
// empty.
func (s *Stack[T]) Pop() *T {
	if len(s.xs) == 0 {
		return nil
	}
	n := len(s.xs) - 1
	x := s.xs[n]
	s.xs = s.xs[:n]
	return &x
}

func (s Stack[T]) Len() int {
	return len(s.xs)
}
