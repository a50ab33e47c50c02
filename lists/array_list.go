package lists

import (
	"fmt"
	"iter"
	"slices"
)

// ArrayList is a growable list backed by a slice.
// Its cursors are indexes, End is Size().
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// ArrayListOf returns a list holding values.
func ArrayListOf[T any](values ...T) *ArrayList[T] {
	al := NewArrayList[T](len(values))
	al.Add(values...)
	return al
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return outOfBounds(index, len(al.data))
	}
	al.data = slices.Insert(al.data, index, value)
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfBounds(index, len(al.data))
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return outOfBounds(index, len(al.data))
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, outOfBounds(index, len(al.data))
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	return removed, nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	clear(al.data)
	al.data = al.data[:0]
}

func (al *ArrayList[T]) Begin() int { return 0 }

func (al *ArrayList[T]) End() int { return len(al.data) }

func (al *ArrayList[T]) Next(i int) int { return i + 1 }

// Ref returns a pointer into the backing array. It is invalidated by any call that grows
// or shrinks the list.
func (al *ArrayList[T]) Ref(i int) *T { return &al.data[i] }

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}
