package views

import "iter"

// Range is the cursor protocol shared by every adapter in this package.
// C is the position type, E the end sentinel type and R what Ref yields.
// A traversal is complete once Done(c, End()) reports true; Next and Ref must not be called after that.
type Range[C, E, R any] interface {
	Begin() C
	End() E
	Next(c C) C
	Ref(c C) R
	Done(c C, e E) bool
	Size() int
}

// Indexed is an element paired with its synthetic index.
type Indexed[R any] struct {
	Index int
	Value R
}

// EnumCursor is a synthetic index carried next to the wrapped cursor.
// Inner shares storage with the wrapped cursor when that is a slice, as for ZippedN,
// so a cursor passed to Next must not be used again.
type EnumCursor[C any] struct {
	Index int
	Inner C
}

// EnumEnd wraps the end sentinel of the inner range.
// Last is the index of the final element; it is informational and never compared.
type EnumEnd[E any] struct {
	Last  int
	Inner E
}

type enumerateConfig struct {
	start int
	step  int
}

// EnumerateOption configures Enumerate.
type EnumerateOption func(*enumerateConfig)

// WithStart sets the index of the first element. Defaults to 0.
func WithStart(start int) EnumerateOption {
	return func(cfg *enumerateConfig) { cfg.start = start }
}

// WithStep sets the index increment between elements. Defaults to 1.
// Only positive steps give a monotonically increasing index; other values are used as is.
func WithStep(step int) EnumerateOption {
	return func(cfg *enumerateConfig) { cfg.step = step }
}

// Enumerated pairs the elements of an inner Range with start + step*position.
type Enumerated[C, E, R any] struct {
	inner   Range[C, E, R]
	start   int
	step    int
	end     EnumEnd[E]
	reached func(C) int
	monitor ZipMonitor
}

// Enumerate wraps inner, which may be a View, a zip or another Enumerated.
// End detection is delegated to inner: cursor equality for a view, any-member for a zip.
// A zip's monitor keeps reporting when the zip is traversed through the enumeration.
func Enumerate[C, E, R any](inner Range[C, E, R], opts ...EnumerateOption) *Enumerated[C, E, R] {
	cfg := enumerateConfig{start: 0, step: 1}
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Enumerated[C, E, R]{
		inner:   inner,
		start:   cfg.start,
		step:    cfg.step,
		monitor: NoopZipMonitor{},
	}
	if r, ok := inner.(reacher[C, E, R]); ok {
		e.reached = r.Reached
	}
	if m, ok := inner.(monitoredRange[C, E, R]); ok {
		e.monitor = m.zipMonitor()
	}
	e.end = EnumEnd[E]{Last: e.TerminalIndex(), Inner: inner.End()}
	return e
}

func (e *Enumerated[C, E, R]) Begin() EnumCursor[C] {
	return EnumCursor[C]{Index: e.start, Inner: e.inner.Begin()}
}

func (e *Enumerated[C, E, R]) End() EnumEnd[E] { return e.end }

func (e *Enumerated[C, E, R]) Next(c EnumCursor[C]) EnumCursor[C] {
	c.Index += e.step
	c.Inner = e.inner.Next(c.Inner)
	return c
}

func (e *Enumerated[C, E, R]) Ref(c EnumCursor[C]) Indexed[R] {
	return Indexed[R]{Index: c.Index, Value: e.inner.Ref(c.Inner)}
}

// Done ignores the synthetic index and asks the inner range.
func (e *Enumerated[C, E, R]) Done(c EnumCursor[C], end EnumEnd[E]) bool {
	return e.inner.Done(c.Inner, end.Inner)
}

// Reached returns the exhausted member of a zipped inner range, or -1.
// A plain inner range counts as member 0.
func (e *Enumerated[C, E, R]) Reached(c EnumCursor[C]) int {
	if e.reached != nil {
		return e.reached(c.Inner)
	}
	if e.Done(c, e.end) {
		return 0
	}
	return -1
}

func (e *Enumerated[C, E, R]) zipMonitor() ZipMonitor { return e.monitor }

func (e *Enumerated[C, E, R]) Size() int { return e.inner.Size() }

// TerminalIndex returns the index the last element will carry, start + step*(Size()-1).
// For an empty range this is start - step, which no element carries.
func (e *Enumerated[C, E, R]) TerminalIndex() int {
	return e.start + e.step*(e.inner.Size()-1)
}

// All yields index and element pairs until the inner range is done.
func (e *Enumerated[C, E, R]) All() iter.Seq2[int, R] {
	return func(yield func(int, R) bool) {
		drive[EnumCursor[C], EnumEnd[E], Indexed[R]](e, e.monitor, func(r Indexed[R]) bool {
			return yield(r.Index, r.Value)
		})
	}
}
