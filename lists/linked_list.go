package lists

import (
	"fmt"
	"iter"
	"strings"
)

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list with head and tail sentinels.
// Its cursors are Positions; End is the tail sentinel, so it stays valid while elements are appended.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	return ll
}

// LinkedListOf returns a list holding values.
func LinkedListOf[T any](values ...T) *LinkedList[T] {
	ll := NewLinkedList[T]()
	ll.Add(values...)
	return ll
}

// insertNodeAt insert newNode after indexNode
func (ll *LinkedList[T]) insertNodeAt(indexNode *node[T], newNode *node[T]) {
	newNode.prev = indexNode
	newNode.next = indexNode.next
	indexNode.next.prev = newNode
	indexNode.next = newNode
	ll.size++
}

// findNodeAt returns the node at index, walking from the nearer sentinel.
// Assumes 0 <= index <= ll.size.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// removeNode unlinks targetNode and clears it so stale Positions become invalid.
func (ll *LinkedList[T]) removeNode(targetNode *node[T]) T {
	targetNode.prev.next = targetNode.next
	targetNode.next.prev = targetNode.prev
	res := targetNode.val
	targetNode.prev = nil
	targetNode.next = nil
	var zero T
	targetNode.val = zero
	ll.size--
	return res
}

func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertNodeAt(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

func (ll *LinkedList[T]) Insert(index int, value T) error {
	if index < 0 || index > ll.size {
		return outOfBounds(index, ll.size)
	}
	targetNode := ll.findNodeAt(index)
	ll.insertNodeAt(targetNode.prev, &node[T]{val: value})
	return nil
}

func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, outOfBounds(index, ll.size)
	}
	return ll.findNodeAt(index).val, nil
}

func (ll *LinkedList[T]) Set(index int, value T) error {
	if index < 0 || index >= ll.size {
		return outOfBounds(index, ll.size)
	}
	ll.findNodeAt(index).val = value
	return nil
}

func (ll *LinkedList[T]) Remove(index int) (T, error) {
	if index < 0 || index >= ll.size {
		var zero T
		return zero, outOfBounds(index, ll.size)
	}
	return ll.removeNode(ll.findNodeAt(index)), nil
}

func (ll *LinkedList[T]) Size() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	current := ll.headSentinel.next
	var zero T
	for current != ll.tailSentinel {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := ll.Begin(); p != ll.End(); p = ll.Next(p) {
			if !yield(*ll.Ref(p)) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tailSentinel {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
