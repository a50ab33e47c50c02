/*
Package seqs zips and enumerates plain Go iterators (iter.Seq).

These are the streaming counterparts of the views package, for sources that can only be ranged
over and expose no cursors: channels turned into sequences, generators, database rows, and so on.
Because a stream cannot be compared against an end position, the zips here pull one element from
every input and stop as soon as any input reports it has nothing left.

	for i, p := range seqs.EnumerateFrom(seqs.Zip(names, scores), 1, 1) {
		fmt.Printf("%d. %s %d\n", i, p.V1, p.V2)
	}

Values are copies; use views when the elements must be modified in place.
*/
package seqs
