package views

import (
	"iter"
	"slices"
)

// CursorN is the position of a homogeneous zip, one cursor per member.
// ZippedN.Next advances it in place.
type CursorN[C comparable] []C

// EndN holds the end cursors of a homogeneous zip.
type EndN[C comparable] []C

// Reached returns the index of the first member whose cursor equals its end, or -1.
func (c CursorN[C]) Reached(e EndN[C]) int {
	for k := range c {
		if c[k] == e[k] {
			return k
		}
	}
	return -1
}

// ZippedN walks any number of views of the same type in lockstep and stops at the shortest.
type ZippedN[T any, C comparable] struct {
	views   []View[T, C]
	end     EndN[C]
	monitor ZipMonitor
}

// ZipN zips first and rest. The set of members is fixed once the zip is built.
func ZipN[T any, C comparable](first View[T, C], rest ...View[T, C]) *ZippedN[T, C] {
	return ZipNWith(append([]View[T, C]{first}, rest...))
}

// ZipNWith zips members, which must not be empty, with the given options.
func ZipNWith[T any, C comparable](members []View[T, C], opts ...ZipOption) *ZippedN[T, C] {
	if len(members) == 0 {
		panic("views: ZipNWith needs at least one member")
	}
	cfg := newZipConfig(opts)
	members = slices.Clone(members)
	end := make(EndN[C], len(members))
	for k, v := range members {
		end[k] = v.End()
	}
	return &ZippedN[T, C]{views: members, end: end, monitor: cfg.monitor}
}

// Arity returns the number of zipped members.
func (z *ZippedN[T, C]) Arity() int { return len(z.views) }

func (z *ZippedN[T, C]) Begin() CursorN[C] {
	c := make(CursorN[C], len(z.views))
	for k, v := range z.views {
		c[k] = v.Begin()
	}
	return c
}

// End returns the end cursors captured when the zip was built. The slice must not be modified.
func (z *ZippedN[T, C]) End() EndN[C] { return z.end }

// Next advances every member cursor of c in place and returns c.
func (z *ZippedN[T, C]) Next(c CursorN[C]) CursorN[C] {
	for k, v := range z.views {
		c[k] = v.Next(c[k])
	}
	return c
}

// Ref returns one pointer per member, in declaration order.
func (z *ZippedN[T, C]) Ref(c CursorN[C]) []*T {
	row := make([]*T, len(z.views))
	for k, v := range z.views {
		row[k] = v.Ref(c[k])
	}
	return row
}

func (z *ZippedN[T, C]) Done(c CursorN[C], e EndN[C]) bool { return c.Reached(e) >= 0 }

func (z *ZippedN[T, C]) Reached(c CursorN[C]) int { return c.Reached(z.end) }

func (z *ZippedN[T, C]) Size() int {
	n := z.views[0].Size()
	for _, v := range z.views[1:] {
		n = min(n, v.Size())
	}
	return n
}

func (z *ZippedN[T, C]) zipMonitor() ZipMonitor { return z.monitor }

func (z *ZippedN[T, C]) All() iter.Seq[[]*T] {
	return func(yield func([]*T) bool) {
		drive[CursorN[C], EndN[C], []*T](z, z.monitor, yield)
	}
}

// Enumerate wraps z with an index. The inner CursorN is still advanced in place,
// clone it with slices.Clone to keep an earlier position.
func (z *ZippedN[T, C]) Enumerate(opts ...EnumerateOption) *Enumerated[CursorN[C], EndN[C], []*T] {
	return Enumerate[CursorN[C], EndN[C], []*T](z, opts...)
}
