package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/algostep/dijkstra"
	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/step"
)

// ExampleNew finds the shortest route around a wall.
func ExampleNew() {
	g, _ := gridgraph.Parse([]string{
		"S#.",
		"..E",
	})
	r, err := dijkstra.New(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	events := step.Collect(r)
	fmt.Println(events[len(events)-1].Note)
	fmt.Println(r.State().Grid)
	// Output:
	// shortest path length 3
	// S#.
	// **E
}
