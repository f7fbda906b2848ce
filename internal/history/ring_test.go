package history

import "testing"

func TestRingNewestFirst(t *testing.T) {
	r := NewRing(3)
	r.Push(1)
	r.Push(2)
	r.Push(3)

	if got := r.At(0); got != 3 {
		t.Fatalf("At(0) = %v, want 3", got)
	}
	if got := r.At(1); got != 2 {
		t.Fatalf("At(1) = %v, want 2", got)
	}
	if got := r.At(2); got != 1 {
		t.Fatalf("At(2) = %v, want 1", got)
	}
}

func TestRingEviction(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		r.Push(float64(i))
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
	want := []float64{5, 4, 3}
	got := r.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRingZeroFill(t *testing.T) {
	r := NewRing(4)
	r.Push(7)

	if got := r.At(0); got != 7 {
		t.Fatalf("At(0) = %v, want 7", got)
	}
	for i := 1; i < 4; i++ {
		if got := r.At(i); got != 0 {
			t.Fatalf("At(%d) = %v, want 0", i, got)
		}
	}
	if got := r.At(4); got != 0 {
		t.Fatalf("out-of-range At = %v, want 0", got)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}
}

func TestRingDegenerateCapacity(t *testing.T) {
	r := NewRing(0)
	if r.Cap() != 1 {
		t.Fatalf("Cap = %d, want 1", r.Cap())
	}
	r.Push(2)
	r.Push(9)
	if got := r.At(0); got != 9 {
		t.Fatalf("At(0) = %v, want 9", got)
	}
}
