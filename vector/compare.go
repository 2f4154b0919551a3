package vector

import (
	"cmp"
)

// Equal reports whether lhs and rhs hold the same elements in the same order.
func Equal[T comparable](lhs, rhs *Vector[T]) bool {
	return EqualFunc(lhs, rhs, func(a, b T) bool { return a == b })
}

func NotEqual[T comparable](lhs, rhs *Vector[T]) bool {
	return !Equal(lhs, rhs)
}

// EqualFunc is Equal with a caller supplied element comparison.
func EqualFunc[T any](lhs, rhs *Vector[T], eq func(a, b T) bool) bool {
	if lhs.Size() != rhs.Size() {
		return false
	}
	b := rhs.Slice()
	for i, x := range lhs.Slice() {
		if !eq(x, b[i]) {
			return false
		}
	}
	return true
}

// Less compares lexicographically using the element type's < operator.
// A proper prefix is less than the longer sequence.
func Less[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return LessFunc(lhs, rhs, func(a, b T) bool { return a < b })
}

func LessEqual[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return Equal(lhs, rhs) || Less(lhs, rhs)
}

func Greater[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return Less(rhs, lhs)
}

func GreaterEqual[T cmp.Ordered](lhs, rhs *Vector[T]) bool {
	return Equal(lhs, rhs) || Less(rhs, lhs)
}

// LessFunc is Less with a caller supplied strict weak ordering.
func LessFunc[T any](lhs, rhs *Vector[T], less func(a, b T) bool) bool {
	a, b := lhs.Slice(), rhs.Slice()
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if less(a[i], b[i]) {
			return true
		}
		if less(b[i], a[i]) {
			return false
		}
	}
	return len(a) < len(b)
}
