package floorplan

import (
	"fmt"
	"slices"
)

// adjacency maps each table name to its directly adjacent neighbours.
// The data is hand-maintained from the floor plan; init verifies it is
// symmetric and only names registry tables, so a typo fails fast at
// startup instead of silently skewing search results.
var adjacency = buildAdjacency()

func buildAdjacency() map[string][]string {
	adj := make(map[string][]string)

	// chain links consecutive names both ways.
	chain := func(names ...string) {
		for i := 0; i < len(names)-1; i++ {
			link(adj, names[i], names[i+1])
		}
	}

	// Top row runs 1..10 along the window.
	chain("1", "2", "3", "4", "5", "6", "7", "8", "9", "10")

	// The big-group pair.
	link(adj, "11", "12")

	// Capsule booths form a 3x3 grid: columns (22 21 20), (25 24 23),
	// (28 27 26), top to bottom.
	chain("22", "21", "20")
	chain("25", "24", "23")
	chain("28", "27", "26")
	link(adj, "22", "25")
	link(adj, "25", "28")
	link(adj, "21", "24")
	link(adj, "24", "27")
	link(adj, "20", "23")
	link(adj, "23", "26")

	// Bottom row.
	chain("30", "31", "32", "33", "34", "35", "36")

	// Square tables against the inner wall.
	chain("50", "51", "52", "53", "54")

	// Two-seater column along the left wall.
	chain("100", "101", "102", "103", "104", "105")

	// Bar stools seat one and are never combined.

	return adj
}

func link(adj map[string][]string, a, b string) {
	if !slices.Contains(adj[a], b) {
		adj[a] = append(adj[a], b)
	}
	if !slices.Contains(adj[b], a) {
		adj[b] = append(adj[b], a)
	}
}

// Adjacent returns the neighbours of a table, in fixed order. Unknown
// names return nil.
func Adjacent(name string) []string {
	return adjacency[name]
}

func init() {
	if err := validateAdjacency(); err != nil {
		panic(err)
	}
}

// validateAdjacency asserts the graph is symmetric and references only
// registry tables.
func validateAdjacency() error {
	for name, neighbours := range adjacency {
		if _, ok := ByName(name); !ok {
			return fmt.Errorf("floorplan: adjacency lists unknown table %q", name)
		}
		for _, n := range neighbours {
			if _, ok := ByName(n); !ok {
				return fmt.Errorf("floorplan: table %q adjacent to unknown table %q", name, n)
			}
			if !slices.Contains(adjacency[n], name) {
				return fmt.Errorf("floorplan: adjacency not symmetric: %q lists %q but not vice versa", name, n)
			}
		}
	}
	return nil
}
