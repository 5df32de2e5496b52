package floorplan

import "fmt"

// clusters are prioritized physical zones for multi-table combinations.
// Search walks them in this order; earlier zones win over later ones and
// over the global fallback.
var clusters = buildClusters()

func buildClusters() [][]string {
	big := []string{"11", "12"}

	var capsules []string
	for i := 20; i <= 28; i++ {
		capsules = append(capsules, fmt.Sprint(i))
	}

	var bottom []string
	for i := 30; i <= 36; i++ {
		bottom = append(bottom, fmt.Sprint(i))
	}

	var topRow []string
	for i := 1; i <= 10; i++ {
		topRow = append(topRow, fmt.Sprint(i))
	}

	return [][]string{big, capsules, bottom, topRow}
}

// Clusters returns the zone list in priority order.
func Clusters() [][]string {
	return clusters
}
