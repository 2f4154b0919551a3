package vector

// ReserveHint carries a capacity request for NewReserved.
type ReserveHint struct {
	capacity int
}

// Reserve builds a hint that pre-sizes a vector to capacity slots without
// creating elements.
func Reserve(capacity int) ReserveHint {
	return ReserveHint{capacity: capacity}
}

func (h ReserveHint) Capacity() int {
	return h.capacity
}
