package queues

import (
	"iter"
	"math/bits"
)

// ArrayQueue is a FIFO queue on a power-of-two ring buffer.
//
// Its cursors are logical offsets from the front of the queue (0 is the oldest element,
// Size() is the end), so they stay meaningful across the wrap-around point of the buffer.
// Enqueue, Dequeue and Clear invalidate outstanding cursors and pointers returned by Ref.
type ArrayQueue[T any] struct {
	buf  []T // len(buf) is the capacity, always a power of two
	head int // physical index of the front element
	size int
	mask int // len(buf) - 1
}

func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := ceilPow2(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow moves the elements into a buffer able to hold at least need elements,
// unwrapping them so that head becomes 0.
func (aq *ArrayQueue[T]) grow(need int) {
	newBuf := make([]T, ceilPow2(need))
	if aq.head+aq.size <= len(aq.buf) {
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		n := copy(newBuf, aq.buf[aq.head:])
		copy(newBuf[n:], aq.buf[:(aq.head+aq.size)&aq.mask])
	}
	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = len(newBuf) - 1
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(aq.size + 1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if aq.size+n > len(aq.buf) {
		aq.grow(aq.size + n)
	}
	tail := (aq.head + aq.size) & aq.mask
	copied := copy(aq.buf[tail:], values)
	// wrapped around
	copy(aq.buf, values[copied:])
	aq.size += n
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

func (aq *ArrayQueue[T]) Size() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

func (aq *ArrayQueue[T]) Begin() int { return 0 }

func (aq *ArrayQueue[T]) End() int { return aq.size }

func (aq *ArrayQueue[T]) Next(offset int) int { return offset + 1 }

// Ref returns a pointer to the element offset positions behind the front.
func (aq *ArrayQueue[T]) Ref(offset int) *T {
	return &aq.buf[(aq.head+offset)&aq.mask]
}

// Values yields the elements from front to back without removing them.
func (aq *ArrayQueue[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range aq.size {
			if !yield(*aq.Ref(i)) {
				return
			}
		}
	}
}
