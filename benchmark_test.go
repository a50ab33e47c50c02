package lockstep_test

import (
	"fmt"
	"slices"
	"testing"

	"lockstep/lists"
	"lockstep/seqs"
	"lockstep/views"
)

// BenchmarkUnified_Zip compares cursor zips, pull-based stream zips and a hand-written index loop.
func BenchmarkUnified_Zip(b *testing.B) {
	for _, size := range []int{100, 100_000} {
		a := make([]int, size)
		c := make([]int, size)
		for i := range size {
			a[i] = i
			c[i] = size - i
		}
		ll := lists.NewLinkedList[int]()
		ll.Add(c...)

		b.Run(fmt.Sprintf("Index_Loop/%d", size), func(b *testing.B) {
			for b.Loop() {
				sum := 0
				for i := range min(len(a), len(c)) {
					sum += a[i] * c[i]
				}
				_ = sum
			}
		})

		b.Run(fmt.Sprintf("Views_Zip2/%d", size), func(b *testing.B) {
			for b.Loop() {
				sum := 0
				for t := range views.Zip2(views.FromSlice(a), views.FromSlice(c)).All() {
					sum += *t.V1 * *t.V2
				}
				_ = sum
			}
		})

		b.Run(fmt.Sprintf("Views_Zip2_LinkedList/%d", size), func(b *testing.B) {
			for b.Loop() {
				sum := 0
				for t := range views.Zip2(views.FromSlice(a), views.Of[int, lists.Position[int]](ll)).All() {
					sum += *t.V1 * *t.V2
				}
				_ = sum
			}
		})

		b.Run(fmt.Sprintf("Views_Enumerate_Zip2/%d", size), func(b *testing.B) {
			for b.Loop() {
				sum := 0
				for i, t := range views.Zip2(views.FromSlice(a), views.FromSlice(c)).Enumerate().All() {
					sum += i + *t.V1 * *t.V2
				}
				_ = sum
			}
		})

		b.Run(fmt.Sprintf("Seqs_Zip/%d", size), func(b *testing.B) {
			for b.Loop() {
				sum := 0
				for p := range seqs.Zip(slices.Values(a), slices.Values(c)) {
					sum += p.V1 * p.V2
				}
				_ = sum
			}
		})
	}
}
