package history

// #region ring

// Ring is a fixed-capacity newest-first buffer of samples. Pushing beyond
// capacity silently evicts the oldest entry. Slots never written read as 0,
// so a fresh ring behaves like a zero-prefilled window.
type Ring struct {
	buf   []float64
	head  int // index of the most recent sample
	count int // samples pushed, saturates at capacity
}

// NewRing creates a ring with the given capacity. Capacity must be positive.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	return &Ring{buf: make([]float64, capacity)}
}

// Push inserts v as the newest sample, evicting the oldest if full.
func (r *Ring) Push(v float64) {
	r.head = (r.head + len(r.buf) - 1) % len(r.buf)
	r.buf[r.head] = v
	if r.count < len(r.buf) {
		r.count++
	}
}

// At returns the sample i steps back from the newest (At(0) is the newest).
// Indices beyond what has been pushed read as 0.
func (r *Ring) At(i int) float64 {
	if i < 0 || i >= len(r.buf) {
		return 0
	}
	return r.buf[(r.head+i)%len(r.buf)]
}

// Len reports how many samples have been pushed, capped at capacity.
func (r *Ring) Len() int {
	return r.count
}

// Cap reports the fixed capacity.
func (r *Ring) Cap() int {
	return len(r.buf)
}

// Values copies the window out newest-first. The slice always has capacity
// length; unwritten slots are 0.
func (r *Ring) Values() []float64 {
	out := make([]float64, len(r.buf))
	for i := range out {
		out[i] = r.buf[(r.head+i)%len(r.buf)]
	}
	return out
}

// #endregion ring
