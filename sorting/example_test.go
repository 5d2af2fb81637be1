package sorting_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

// ExampleBubble prints every event of a bubble sort over three values.
func ExampleBubble() {
	r, err := sorting.Bubble([]int{2, 3, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for ev := range r.Steps() {
		fmt.Println(ev)
	}
	fmt.Println(step.Count(step.Collect(r), step.KindSwap), "swaps")
	// Output:
	// #1 compare (0,1): compare 2 and 3
	// #2 compare (1,2): compare 3 and 1
	// #3 swap (1,2): swap 3 and 1
	// #4 compare (0,1): compare 2 and 1
	// #5 swap (0,1): swap 2 and 1
	// #6 done [1 2 3]: sorted
	// 2 swaps
}
