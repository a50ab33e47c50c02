package views

import "iter"

// Tuple2 holds pointers to the current elements of a two-way zip.
// Writing through V1 or V2 writes to the zipped sequences.
type Tuple2[A, B any] struct {
	V1 *A
	V2 *B
}

// Cursor2 is the position of a two-way zip: one cursor per member.
type Cursor2[CA, CB comparable] struct {
	C1 CA
	C2 CB
}

// End2 holds the end cursors of a two-way zip. It is never a valid position.
type End2[CA, CB comparable] struct {
	E1 CA
	E2 CB
}

// Reached returns the index of the first member whose cursor equals its end, or -1.
func (c Cursor2[CA, CB]) Reached(e End2[CA, CB]) int {
	switch {
	case c.C1 == e.E1:
		return 0
	case c.C2 == e.E2:
		return 1
	}
	return -1
}

// Zipped2 walks two views in lockstep and stops at the shorter one.
type Zipped2[A any, CA comparable, B any, CB comparable] struct {
	v1      View[A, CA]
	v2      View[B, CB]
	end     End2[CA, CB]
	monitor ZipMonitor
}

// Zip2 zips v1 and v2. The views are referenced, not copied.
func Zip2[A any, CA comparable, B any, CB comparable](
	v1 View[A, CA],
	v2 View[B, CB],
	opts ...ZipOption,
) *Zipped2[A, CA, B, CB] {
	cfg := newZipConfig(opts)
	return &Zipped2[A, CA, B, CB]{
		v1:      v1,
		v2:      v2,
		end:     End2[CA, CB]{E1: v1.End(), E2: v2.End()},
		monitor: cfg.monitor,
	}
}

// Begin returns the cursor pair at the start of both members.
func (z *Zipped2[A, CA, B, CB]) Begin() Cursor2[CA, CB] {
	return Cursor2[CA, CB]{C1: z.v1.Begin(), C2: z.v2.Begin()}
}

// End returns the end cursors captured when the zip was built.
func (z *Zipped2[A, CA, B, CB]) End() End2[CA, CB] { return z.end }

// Next advances both member cursors. It must not be called once Done reports true.
func (z *Zipped2[A, CA, B, CB]) Next(c Cursor2[CA, CB]) Cursor2[CA, CB] {
	c.C1 = z.v1.Next(c.C1)
	c.C2 = z.v2.Next(c.C2)
	return c
}

// Ref returns pointers to the current element of each member.
func (z *Zipped2[A, CA, B, CB]) Ref(c Cursor2[CA, CB]) Tuple2[A, B] {
	return Tuple2[A, B]{V1: z.v1.Ref(c.C1), V2: z.v2.Ref(c.C2)}
}

// Done reports whether any member of c has reached its end in e.
func (z *Zipped2[A, CA, B, CB]) Done(c Cursor2[CA, CB], e End2[CA, CB]) bool {
	return c.Reached(e) >= 0
}

// Reached returns the first member of c that is at its end, or -1.
func (z *Zipped2[A, CA, B, CB]) Reached(c Cursor2[CA, CB]) int { return c.Reached(z.end) }

// Size returns the length of the shorter member.
func (z *Zipped2[A, CA, B, CB]) Size() int { return min(z.v1.Size(), z.v2.Size()) }

func (z *Zipped2[A, CA, B, CB]) zipMonitor() ZipMonitor { return z.monitor }

// All yields one tuple per step until a member is exhausted.
func (z *Zipped2[A, CA, B, CB]) All() iter.Seq[Tuple2[A, B]] {
	return func(yield func(Tuple2[A, B]) bool) {
		drive[Cursor2[CA, CB], End2[CA, CB], Tuple2[A, B]](z, z.monitor, yield)
	}
}

func (z *Zipped2[A, CA, B, CB]) Enumerate(opts ...EnumerateOption) *Enumerated[Cursor2[CA, CB], End2[CA, CB], Tuple2[A, B]] {
	return Enumerate[Cursor2[CA, CB], End2[CA, CB], Tuple2[A, B]](z, opts...)
}

// Tuple3 holds pointers to the current elements of a three-way zip.
type Tuple3[A, B, C any] struct {
	V1 *A
	V2 *B
	V3 *C
}

// Cursor3 is the position of a three-way zip.
type Cursor3[CA, CB, CC comparable] struct {
	C1 CA
	C2 CB
	C3 CC
}

// End3 holds the end cursors of a three-way zip.
type End3[CA, CB, CC comparable] struct {
	E1 CA
	E2 CB
	E3 CC
}

// Reached returns the index of the first member whose cursor equals its end, or -1.
func (c Cursor3[CA, CB, CC]) Reached(e End3[CA, CB, CC]) int {
	switch {
	case c.C1 == e.E1:
		return 0
	case c.C2 == e.E2:
		return 1
	case c.C3 == e.E3:
		return 2
	}
	return -1
}

// Zipped3 walks three views in lockstep and stops at the shortest one.
type Zipped3[A any, CA comparable, B any, CB comparable, C any, CC comparable] struct {
	v1      View[A, CA]
	v2      View[B, CB]
	v3      View[C, CC]
	end     End3[CA, CB, CC]
	monitor ZipMonitor
}

// Zip3 zips v1, v2 and v3 without copying them.
func Zip3[A any, CA comparable, B any, CB comparable, C any, CC comparable](
	v1 View[A, CA],
	v2 View[B, CB],
	v3 View[C, CC],
	opts ...ZipOption,
) *Zipped3[A, CA, B, CB, C, CC] {
	cfg := newZipConfig(opts)
	return &Zipped3[A, CA, B, CB, C, CC]{
		v1:      v1,
		v2:      v2,
		v3:      v3,
		end:     End3[CA, CB, CC]{E1: v1.End(), E2: v2.End(), E3: v3.End()},
		monitor: cfg.monitor,
	}
}

func (z *Zipped3[A, CA, B, CB, C, CC]) Begin() Cursor3[CA, CB, CC] {
	return Cursor3[CA, CB, CC]{C1: z.v1.Begin(), C2: z.v2.Begin(), C3: z.v3.Begin()}
}

func (z *Zipped3[A, CA, B, CB, C, CC]) End() End3[CA, CB, CC] { return z.end }

func (z *Zipped3[A, CA, B, CB, C, CC]) Next(c Cursor3[CA, CB, CC]) Cursor3[CA, CB, CC] {
	c.C1 = z.v1.Next(c.C1)
	c.C2 = z.v2.Next(c.C2)
	c.C3 = z.v3.Next(c.C3)
	return c
}

func (z *Zipped3[A, CA, B, CB, C, CC]) Ref(c Cursor3[CA, CB, CC]) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: z.v1.Ref(c.C1), V2: z.v2.Ref(c.C2), V3: z.v3.Ref(c.C3)}
}

func (z *Zipped3[A, CA, B, CB, C, CC]) Done(c Cursor3[CA, CB, CC], e End3[CA, CB, CC]) bool {
	return c.Reached(e) >= 0
}

func (z *Zipped3[A, CA, B, CB, C, CC]) Reached(c Cursor3[CA, CB, CC]) int { return c.Reached(z.end) }

func (z *Zipped3[A, CA, B, CB, C, CC]) Size() int {
	return min(z.v1.Size(), z.v2.Size(), z.v3.Size())
}

func (z *Zipped3[A, CA, B, CB, C, CC]) zipMonitor() ZipMonitor { return z.monitor }

func (z *Zipped3[A, CA, B, CB, C, CC]) All() iter.Seq[Tuple3[A, B, C]] {
	return func(yield func(Tuple3[A, B, C]) bool) {
		drive[Cursor3[CA, CB, CC], End3[CA, CB, CC], Tuple3[A, B, C]](z, z.monitor, yield)
	}
}

func (z *Zipped3[A, CA, B, CB, C, CC]) Enumerate(opts ...EnumerateOption) *Enumerated[Cursor3[CA, CB, CC], End3[CA, CB, CC], Tuple3[A, B, C]] {
	return Enumerate[Cursor3[CA, CB, CC], End3[CA, CB, CC], Tuple3[A, B, C]](z, opts...)
}

type reacher[C, E, R any] interface {
	Range[C, E, R]
	Reached(c C) int
}

// monitoredRange is a range that carries a ZipMonitor for its traversals.
type monitoredRange[C, E, R any] interface {
	Range[C, E, R]
	zipMonitor() ZipMonitor
}

// drive walks z from Begin, checking for an exhausted member before every dereference,
// so no member cursor is ever advanced past its end.
func drive[C, E, R any](z reacher[C, E, R], monitor ZipMonitor, yield func(R) bool) {
	steps := 0
	for c := z.Begin(); ; c = z.Next(c) {
		if member := z.Reached(c); member >= 0 {
			monitor.OnExhausted(member, steps)
			return
		}
		steps++
		if !yield(z.Ref(c)) {
			monitor.OnStopped(steps)
			return
		}
	}
}
