package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmaze/grid"
)

// ExampleNew_polar shows how rings subdivide as they move outward.
func ExampleNew_polar() {
	g, _ := grid.New(5, 0, grid.Polar)
	for r := 0; r < g.Rows(); r++ {
		fmt.Printf("ring %d: %d cells\n", r, g.RowLen(r))
	}
	fmt.Println(g)

	// Output:
	// ring 0: 1 cells
	// ring 1: 6 cells
	// ring 2: 12 cells
	// ring 3: 24 cells
	// ring 4: 24 cells
	// polar grid 5 rings (67 cells, 0 masked, 0 links)
}

// ExampleGrid_Adjacent lists the six sides of a hexagon in an odd column.
func ExampleGrid_Adjacent() {
	g, _ := grid.New(3, 3, grid.Hexagonal)
	for _, n := range g.Adjacent(grid.Address{Row: 1, Col: 1}) {
		fmt.Println(n.Dir, n.At)
	}

	// Output:
	// north 0,1
	// south 2,1
	// northeast 1,2
	// northwest 1,0
	// southeast 2,2
	// southwest 2,0
}
