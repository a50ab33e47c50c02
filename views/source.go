package views

import (
	"iter"
	"unsafe"
)

// Source is the capability a sequence needs to take part in a view.
// C is an opaque, comparable cursor; End returns the position one past the last element.
type Source[T any, C comparable] interface {
	Begin() C
	End() C
	// Next returns the cursor following c. Calling it on End is undefined.
	Next(c C) C
	// Ref returns a pointer to the element under c. Calling it on End is undefined.
	Ref(c C) *T
	Size() int
}

// View is a non-owning adapter over a Source.
// The begin and end cursors and the element count are captured once, when the view is built.
type View[T any, C comparable] struct {
	src   Source[T, C]
	begin C
	end   C
	count int
}

// Of builds a View over src.
func Of[T any, C comparable](src Source[T, C]) View[T, C] {
	return View[T, C]{
		src:   src,
		begin: src.Begin(),
		end:   src.End(),
		count: src.Size(),
	}
}

// FromSlice builds a View over a slice. Cursors are indexes.
// The view shares the slice's backing array.
func FromSlice[S ~[]E, E any](s S) View[E, int] {
	return Of[E, int](sliceSource[E](s))
}

// FromArray builds a View over extent contiguous elements starting at base,
// e.g. FromArray(&arr[0], len(arr)) for a fixed array.
// A nil base or a non-positive extent yields an empty view.
// The caller must guarantee that extent elements are addressable from base.
func FromArray[E any](base *E, extent int) View[E, int] {
	if base == nil || extent <= 0 {
		return FromSlice([]E(nil))
	}
	return FromSlice(unsafe.Slice(base, extent))
}

func (v View[T, C]) Begin() C { return v.begin }

func (v View[T, C]) End() C { return v.end }

// Size returns the number of elements the source held when the view was built.
func (v View[T, C]) Size() int { return v.count }

func (v View[T, C]) Next(c C) C { return v.src.Next(c) }

func (v View[T, C]) Ref(c C) *T { return v.src.Ref(c) }

// Done reports whether c has reached end.
func (v View[T, C]) Done(c, end C) bool { return c == end }

// All returns a sequence of pointers to the elements of the view.
func (v View[T, C]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for c := v.begin; c != v.end; c = v.src.Next(c) {
			if !yield(v.src.Ref(c)) {
				return
			}
		}
	}
}

// Values returns a sequence of copies of the elements of the view.
func (v View[T, C]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range v.All() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Enumerate pairs every element of the view with a synthetic index.
func (v View[T, C]) Enumerate(opts ...EnumerateOption) *Enumerated[C, C, *T] {
	return Enumerate[C, C, *T](v, opts...)
}

type sliceSource[E any] []E

func (s sliceSource[E]) Begin() int { return 0 }

func (s sliceSource[E]) End() int { return len(s) }

func (s sliceSource[E]) Next(i int) int { return i + 1 }

func (s sliceSource[E]) Ref(i int) *E { return &s[i] }

func (s sliceSource[E]) Size() int { return len(s) }
