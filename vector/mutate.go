package vector

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/quickwritereader/simplevector/assertx"
	"github.com/quickwritereader/simplevector/buffer"
)

// Clear drops every element. Capacity and slot contents are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Reserve makes room for at least n elements. When n exceeds Capacity the
// storage is reallocated to exactly n slots.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n <= v.capacity {
		return nil
	}
	items, err := buffer.Allocate[T](n)
	if err != nil {
		return err
	}
	copy(items.Raw(), v.Slice())
	v.adopt("reserve", &items)
	return nil
}

// Resize sets the number of live elements to n. Elements exposed by growing
// are zero values; shrinking keeps capacity and leaves the tail slots as
// they are.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return fmt.Errorf("%w: %d", ErrNegativeSize, n)
	case n > v.capacity:
		newCap, err := buffer.Grow(v.capacity, n)
		if err != nil {
			return err
		}
		items, err := buffer.Allocate[T](newCap)
		if err != nil {
			return err
		}
		raw := items.Raw()
		copy(raw, v.Slice())
		clear(raw[v.size:n])
		v.adopt("resize", &items)
	case n > v.size:
		clear(v.items.Raw()[v.size:n])
	}
	v.size = n
	return nil
}

// PushBack appends x. When the vector is full its capacity becomes
// max(1, 2*Size()).
func (v *Vector[T]) PushBack(x T) error {
	if v.size < v.capacity {
		v.items.Raw()[v.size] = x
		v.size++
		return nil
	}
	newCap, err := buffer.Grow(v.size, 1)
	if err != nil {
		return err
	}
	items, err := buffer.Allocate[T](newCap)
	if err != nil {
		return err
	}
	raw := items.Raw()
	copy(raw, v.Slice())
	raw[v.size] = x
	v.adopt("push-back", &items)
	v.size++
	return nil
}

// PopBack drops the last element. It does nothing on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places x at pos, shifting [pos, Size()) one slot toward the end, and
// returns pos. pos must lie in [0, Size()]. When the vector is full its
// capacity becomes max(1, 2*Capacity()).
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	assertx.Check(pos >= 0 && pos <= v.size, "vector insert position out of range",
		zap.Int("pos", pos), zap.Int("size", v.size))

	if v.size < v.capacity {
		raw := v.items.Raw()
		copy(raw[pos+1:v.size+1], raw[pos:v.size])
		raw[pos] = x
		v.size++
		return pos, nil
	}

	newCap, err := buffer.Grow(v.capacity, 1)
	if err != nil {
		return pos, err
	}
	items, err := buffer.Allocate[T](newCap)
	if err != nil {
		return pos, err
	}
	old := v.Slice()
	raw := items.Raw()
	copy(raw, old[:pos])
	raw[pos] = x
	copy(raw[pos+1:], old[pos:])
	v.adopt("insert", &items)
	v.size++
	return pos, nil
}

// Erase removes the element at pos, shifting the tail one slot toward the
// front, and returns pos, which now holds the following element. pos must lie
// in [0, Size()).
func (v *Vector[T]) Erase(pos int) int {
	assertx.Check(pos >= 0 && pos < v.size, "vector erase position out of range",
		zap.Int("pos", pos), zap.Int("size", v.size))

	raw := v.items.Raw()
	copy(raw[pos:v.size-1], raw[pos+1:v.size])
	v.size--
	return pos
}
