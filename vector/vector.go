// Package vector provides Vector, a growable contiguous sequence that manages
// its own capacity on top of a single buffer.Array.
//
// A Vector is not safe for concurrent use. Slices and pointers obtained from
// Slice, Ref, AtRef, Refs and the iterators are invalidated by any operation
// that reallocates or shifts elements.
package vector

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/quickwritereader/simplevector/buffer"
	"github.com/quickwritereader/simplevector/logutil"
)

var (
	// ErrOutOfRange is returned by checked access past the live elements.
	ErrOutOfRange = errors.New("vector: index out of range")
	// ErrNegativeSize is returned when a length or capacity request is negative.
	ErrNegativeSize = errors.New("vector: negative size")
)

// Vector is a dynamic array of T. The zero value is an empty vector with no
// storage. Elements in [Size(), Capacity()) are allocated but hold
// unspecified values.
type Vector[T any] struct {
	items    buffer.Array[T]
	size     int
	capacity int
}

// New returns an empty vector that owns no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize returns a vector of n zero values.
func NewWithSize[T any](n int) (*Vector[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	items, err := buffer.Allocate[T](n)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{size: n, capacity: n}
	v.items.Swap(&items)
	return v, nil
}

// NewFilled returns a vector of n copies of value.
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	v, err := NewWithSize[T](n)
	if err != nil {
		return nil, err
	}
	raw := v.items.Raw()
	for i := range raw {
		raw[i] = value
	}
	return v, nil
}

// NewReserved returns an empty vector with the hinted capacity already
// allocated.
func NewReserved[T any](hint ReserveHint) (*Vector[T], error) {
	v := New[T]()
	if err := v.Reserve(hint.Capacity()); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding a copy of items, in order, with capacity
// len(items).
func Of[T any](items ...T) *Vector[T] {
	v, err := of(items)
	if err != nil {
		// items already fit in memory, so only a lowered ceiling can refuse them
		panic(err)
	}
	return v
}

func of[T any](items []T) (*Vector[T], error) {
	v := &Vector[T]{size: len(items), capacity: len(items)}
	if len(items) > 0 {
		arr, err := buffer.Allocate[T](len(items))
		if err != nil {
			return nil, err
		}
		copy(arr.Raw(), items)
		v.items.Swap(&arr)
	}
	return v, nil
}

// Clone returns a deep copy of v's live elements. The clone's capacity equals
// v.Size(), not v.Capacity().
func (v *Vector[T]) Clone() (*Vector[T], error) {
	items, err := buffer.Allocate[T](v.size)
	if err != nil {
		return nil, err
	}
	copy(items.Raw(), v.Slice())
	c := &Vector[T]{size: v.size, capacity: v.size}
	c.items.Swap(&items)
	return c, nil
}

// Move transfers v's storage to a new vector and leaves v empty with no
// storage.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{size: v.size, capacity: v.capacity}
	m.items.Swap(&v.items)
	v.size, v.capacity = 0, 0
	return m
}

// Assign replaces v's contents with a copy of other. When the copy cannot be
// allocated v is left untouched.
func (v *Vector[T]) Assign(other *Vector[T]) error {
	if v == other {
		return nil
	}
	tmp, err := other.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.release()
	return nil
}

// MoveAssign takes other's storage; other is left empty and v's previous
// storage is released.
func (v *Vector[T]) MoveAssign(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Move()
	v.Swap(tmp)
	tmp.release()
}

// Swap exchanges storage, size and capacity with other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

func (v *Vector[T]) release() {
	v.items.Release()
	v.size, v.capacity = 0, 0
}

func (v *Vector[T]) Size() int {
	return v.size
}

func (v *Vector[T]) Capacity() int {
	return v.capacity
}

func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Get returns the element at i without checking it against Size.
func (v *Vector[T]) Get(i int) T {
	return v.items.Raw()[i]
}

// Set stores x at i without checking it against Size.
func (v *Vector[T]) Set(i int, x T) {
	v.items.Raw()[i] = x
}

// Ref returns a pointer to slot i without checking it against Size.
func (v *Vector[T]) Ref(i int) *T {
	return &v.items.Raw()[i]
}

// At returns the element at i, or ErrOutOfRange when i is not below Size.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.items.Raw()[i], nil
}

// AtRef is At returning a pointer into the vector's storage.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return &v.items.Raw()[i], nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return nil
}

// Slice returns the live elements. Its capacity is clipped to Size so
// appending to it never writes into the vector's spare slots.
func (v *Vector[T]) Slice() []T {
	raw := v.items.Raw()
	return raw[:v.size:v.size]
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// adopt installs items as the new storage and drops the old one.
func (v *Vector[T]) adopt(op string, items *buffer.Array[T]) {
	if ce := logutil.Check(zap.DebugLevel, "vector reallocated"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("size", v.size),
			zap.Int("old-capacity", v.capacity),
			zap.Int("new-capacity", items.Len()),
		)
	}
	v.items.Swap(items)
	items.Release()
	v.capacity = v.items.Len()
}
