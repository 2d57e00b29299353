package grid

// Regions partitions the non-masked cells into neighbor-connected regions,
// ignoring links. Regions are ordered by their first cell in row-major
// order; cells inside a region are in BFS order.
//
// A carver can only produce a spanning tree when there is exactly one region.
//
// Time:   O(cells·d).
// Memory: O(cells).
func (g *Grid) Regions() [][]Address {
	seen := make([]bool, g.size)
	var regions [][]Address

	for i0 := 0; i0 < g.size; i0++ {
		if g.masked[i0] || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var region []Address

		for qi := 0; qi < len(queue); qi++ {
			a := g.address(queue[qi])
			region = append(region, a)
			for _, b := range g.Neighbors(a) {
				j, _ := g.index(b)
				if !seen[j] {
					seen[j] = true
					queue = append(queue, j)
				}
			}
		}
		regions = append(regions, region)
	}
	return regions
}

// Connected reports whether the non-masked cells form a single region.
// An empty grid is not connected.
func (g *Grid) Connected() bool {
	return len(g.Regions()) == 1
}
