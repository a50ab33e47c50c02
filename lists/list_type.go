package lists

import (
	"iter"

	"github.com/pkg/errors"
)

var ErrIndexOutOfBounds = errors.New("index out of bounds")

// List defines the operations shared by ArrayList and LinkedList.
// Both lists also expose Begin/End/Next/Ref cursors so they can be walked by the views package;
// the cursor type differs per implementation, so it is not part of this interface.
type List[T any] interface {
	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Insert inserts an element at the specified index
	// Returns an error if index < 0 or index > Size()
	Insert(index int, value T) error

	// Remove removes and returns the element at the specified index
	Remove(index int) (T, error)

	// Set modifies the element at the specified index
	Set(index int, value T) error

	// Get retrieves the element at the specified index
	Get(index int) (T, error)

	Size() int
	IsEmpty() bool
	Clear()

	// Values yields copies of the elements from front to back
	Values() iter.Seq[T]
}

func outOfBounds(index, size int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index %d, size %d", index, size)
}
