package seqs_test

import (
	"fmt"
	"slices"

	"lockstep/seqs"
)

func ExampleEnumerateFrom() {
	names := slices.Values([]string{"ada", "bob", "cy"})
	scores := slices.Values([]int{90, 85})

	for i, p := range seqs.EnumerateFrom(seqs.Zip(names, scores), 1, 1) {
		fmt.Printf("%d. %s %d\n", i, p.V1, p.V2)
	}

	// Output:
	// 1. ada 90
	// 2. bob 85
}
