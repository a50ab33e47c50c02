/*
Package views provides lazy, non-owning cursor adapters for walking existing sequences in lockstep.

Every adapter works on cursors, never on copies of the elements:

  - [View] normalizes a sequence (a slice, a pointer-backed array, or anything implementing
    [Source]) into a begin cursor, an end cursor and a count.
  - [Zip2], [Zip3] and [ZipN] walk several views together and yield tuples of pointers into the
    original storage. A zip ends as soon as ANY member reaches its own end, so it always behaves
    as if it had the length of its shortest member.
  - [Enumerate] pairs the elements of a view, a zip, or another enumeration with a synthetic
    index computed as start + step*position.

# Traversal

All adapters share the same cursor protocol, described by [Range]:

	end := z.End()
	for c := z.Begin(); !z.Done(c, end); c = z.Next(c) {
		t := z.Ref(c)
		*t.V1 += *t.V2
	}

The All methods wrap the same loop into an iter.Seq or iter.Seq2.

# Lifetime

Views hold the sequence they were built from, not its elements. The end cursor is captured when
the view is built, so a sequence must not grow, shrink or be reallocated while a view over it is
in use. The adapters do not detect this and are not safe for concurrent mutation.
*/
package views
