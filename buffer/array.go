package buffer

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"unsafe"
)

// ErrAllocation is returned when storage for a request cannot be obtained.
var ErrAllocation = errors.New("buffer: allocation failed")

// DefaultMaxBytes matches the largest heap span the Go runtime accepts on
// 64-bit targets.
const DefaultMaxBytes int64 = 1 << 47

var maxBytes atomic.Int64

func init() {
	maxBytes.Store(DefaultMaxBytes)
}

// SetMaxBytes changes the allocation ceiling and returns the previous one.
// Values <= 0 restore DefaultMaxBytes.
func SetMaxBytes(n int64) int64 {
	if n <= 0 {
		n = DefaultMaxBytes
	}
	return maxBytes.Swap(n)
}

// MaxBytes reports the current allocation ceiling.
func MaxBytes() int64 {
	return maxBytes.Load()
}

// noCopy lets `go vet` flag values that are copied after first use.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Array owns a single contiguous allocation of T.
// It never resizes itself; ownership moves only through Swap and Take.
type Array[T any] struct {
	noCopy noCopy
	items  []T
}

// Allocate returns an Array owning exactly n slots. n == 0 allocates nothing.
func Allocate[T any](n int) (Array[T], error) {
	if err := check[T](n); err != nil {
		return Array[T]{}, err
	}
	if n == 0 {
		return Array[T]{}, nil
	}
	return Array[T]{items: make([]T, n)}, nil
}

func check[T any](n int) error {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}
	var zero T
	size := int64(unsafe.Sizeof(zero))
	if size == 0 {
		return nil
	}
	limit := maxBytes.Load()
	if int64(n) > limit/size {
		return fmt.Errorf("%w: %d elements of %d bytes exceeds %d bytes", ErrAllocation, n, size, limit)
	}
	return nil
}

// Raw exposes every owned slot, live or not. It is nil for an empty Array.
func (a *Array[T]) Raw() []T {
	return a.items
}

// Len is the number of owned slots.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Swap exchanges storage with other without touching elements.
func (a *Array[T]) Swap(other *Array[T]) {
	a.items, other.items = other.items, a.items
}

// Take transfers ownership to the returned Array, leaving a empty.
func (a *Array[T]) Take() Array[T] {
	items := a.items
	a.items = nil
	return Array[T]{items: items}
}

// Release drops the owned storage.
func (a *Array[T]) Release() {
	a.items = nil
}

// Grow returns max(need, 2*base), failing instead of overflowing int.
func Grow(base, need int) (int, error) {
	if base < 0 || need < 0 {
		return 0, fmt.Errorf("%w: negative growth request base=%d need=%d", ErrAllocation, base, need)
	}
	if base > math.MaxInt/2 {
		return 0, fmt.Errorf("%w: capacity %d cannot double", ErrAllocation, base)
	}
	return max(need, 2*base), nil
}
