package xio

import "testing"

type fakeCloser struct {
	closed *[]int
	id     int
	err    error
}

func (f fakeCloser) Close() error {
	*f.closed = append(*f.closed, f.id)
	return f.err
}

func TestCloserStackClosesInReverseOrder(t *testing.T) {
	var closed []int
	s := NewCloserStack()
	s.Push(fakeCloser{closed: &closed, id: 1})
	s.Push(fakeCloser{closed: &closed, id: 2})
	s.Push(fakeCloser{closed: &closed, id: 3})

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	want := []int{3, 2, 1}
	if len(closed) != len(want) {
		t.Fatalf("got %v, want %v", closed, want)
	}
	for i := range want {
		if closed[i] != want[i] {
			t.Fatalf("got %v, want %v", closed, want)
		}
	}
}

func TestCloserStackSecondCloseIsNoop(t *testing.T) {
	var closed []int
	s := NewCloserStack()
	s.Push(fakeCloser{closed: &closed, id: 1})
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if len(closed) != 1 {
		t.Fatalf("second Close should not re-close, got %v", closed)
	}
}

func TestCloserStackPushNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic pushing a nil Closer")
		}
	}()
	NewCloserStack().Push(nil)
}
