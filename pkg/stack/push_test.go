package stack

import "testing"

func assertPeek[T comparable](t *testing.T, s Stack[T], x T) {
	y := s.Peek()
	if y == nil || x != *y {
		t.Fatalf("Expected top of stack to be ‘%+v’ but got ‘%+v’", x, y)
	}
}

func TestPush(t *testing.T) {
	s := New[int](0)
	if s.Peek() != nil {
		t.Fatalf("Expected empty stack to have no top")
	}
	s.Push(1)
	assertPeek(t, s, 1)
	s.Push(69)
	assertPeek(t, s, 69)
	s.Push(420)
	assertPeek(t, s, 420)
	if s.Len() != 3 {
		t.Fatalf("Expected len(s) == 3 but got %d", s.Len())
	}
}

func TestPeekMutates(t *testing.T) {
	type frame struct{ node, next int }

	s := New[frame](4)
	s.Push(frame{node: 7})
	s.Peek().next++
	s.Peek().next++
	if f := s.Pop(); f.next != 2 {
		t.Fatalf("Expected next == 2 but got %d", f.next)
	}
}
