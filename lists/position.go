package lists

import "fmt"

// Position is a comparable cursor into a LinkedList.
// Two Positions are equal when they point at the same node. The zero Position is invalid.
type Position[T any] struct {
	n *node[T]
}

// Begin returns the Position of the first element, or End for an empty list.
func (ll *LinkedList[T]) Begin() Position[T] {
	return Position[T]{n: ll.headSentinel.next}
}

// End returns the Position of the tail sentinel.
func (ll *LinkedList[T]) End() Position[T] {
	return Position[T]{n: ll.tailSentinel}
}

// Next returns the Position after p. Calling it on End is undefined.
func (ll *LinkedList[T]) Next(p Position[T]) Position[T] {
	return Position[T]{n: p.n.next}
}

// Prev returns the Position before p, stopping at the first element.
func (ll *LinkedList[T]) Prev(p Position[T]) Position[T] {
	if p.n == nil || p.n.prev == nil || p.n.prev == ll.headSentinel {
		return p
	}
	return Position[T]{n: p.n.prev}
}

// Ref returns a pointer to the element at p. Calling it on End is undefined.
func (ll *LinkedList[T]) Ref(p Position[T]) *T {
	return &p.n.val
}

// PositionAt returns the Position of the element at index.
func (ll *LinkedList[T]) PositionAt(index int) (Position[T], error) {
	if index < 0 || index >= ll.size {
		return Position[T]{}, outOfBounds(index, ll.size)
	}
	return Position[T]{n: ll.findNodeAt(index)}, nil
}

// Valid reports whether p points at an element of ll.
// A Position whose element was removed is no longer valid.
func (ll *LinkedList[T]) Valid(p Position[T]) bool {
	return p.n != nil && p.n.next != nil && p.n != ll.headSentinel && p.n != ll.tailSentinel
}

// String returns a string representation of the position
func (p Position[T]) String() string {
	if p.n == nil || p.n.next == nil {
		return "Position[invalid]"
	}
	return fmt.Sprintf("Position[%v]", p.n.val)
}
