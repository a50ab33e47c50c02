package queues

type Queue[T any] interface {
	// puts an element at the end of the queue
	Enqueue(value T)
	// puts multiple elements at the end of the queue
	EnqueueAll(values ...T)
	// removes and returns the element at the front of the queue
	Dequeue() (value T, ok bool)
	// returns the element at the front of the queue without removing it
	Peek() (value T, ok bool)
	// returns the number of elements in the queue
	Size() int
	IsEmpty() bool
	Clear()
}
