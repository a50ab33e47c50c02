package seqs

import "iter"

// Pair is one step of a two-way stream zip.
type Pair[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Zip yields pairs from seq1 and seq2 and stops as soon as either one is exhausted.
// Both inputs are pulled one element per step, seq1 first; once seq1 runs dry seq2 is not pulled again.
func Zip[T1, T2 any](seq1 iter.Seq[T1], seq2 iter.Seq[T2]) iter.Seq[Pair[T1, T2]] {
	return func(yield func(Pair[T1, T2]) bool) {
		next1, stop1 := iter.Pull(seq1)
		defer stop1()
		next2, stop2 := iter.Pull(seq2)
		defer stop2()

		for {
			v1, ok := next1()
			if !ok {
				return
			}
			v2, ok := next2()
			if !ok {
				return
			}
			if !yield(Pair[T1, T2]{V1: v1, V2: v2}) {
				return
			}
		}
	}
}

// ZipN yields one row per step from all seqs and stops when any of them is exhausted.
// The row slice is freshly allocated for every step.
func ZipN[T any](seqs ...iter.Seq[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if len(seqs) == 0 {
			return
		}
		nexts := make([]func() (T, bool), len(seqs))
		for k, seq := range seqs {
			next, stop := iter.Pull(seq)
			defer stop()
			nexts[k] = next
		}

		for {
			row := make([]T, len(nexts))
			for k, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				row[k] = v
			}
			if !yield(row) {
				return
			}
		}
	}
}

// Enumerate pairs every element of seq with its 0-based position.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return EnumerateFrom(seq, 0, 1)
}

// EnumerateFrom pairs every element of seq with start + step*position.
// start and step are used as given.
func EnumerateFrom[T any](seq iter.Seq[T], start, step int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := start
		for v := range seq {
			if !yield(index, v) {
				return
			}
			index += step
		}
	}
}
