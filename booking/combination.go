package booking

import (
	"slices"

	"erable/floorplan"
	"erable/models"
)

// FindCombination picks a single table or a connected multi-table
// combination whose summed capacity covers size. It is a deterministic
// constructive heuristic, not an optimizer: the first satisfying result
// in a fixed search order wins, so an operator can always answer "why
// these tables?".
//
// Order of attempts:
//  1. single-table best fit (smallest adequate capacity, input order
//     breaks ties),
//  2. breadth-first expansion seeded inside each cluster, clusters in
//     priority order,
//  3. the same expansion over the whole floor.
//
// Returns nil when no configuration exists.
func FindCombination(size int, available []models.Table) []models.Table {
	if size <= 0 {
		return nil
	}

	// A single adequate table always beats a combination; take the
	// tightest fit so large tables stay free for large parties.
	var single *models.Table
	for i := range available {
		t := &available[i]
		if t.Capacity < size {
			continue
		}
		if single == nil || t.Capacity < single.Capacity {
			single = t
		}
	}
	if single != nil {
		return []models.Table{*single}
	}

	byName := make(map[string]models.Table, len(available))
	for _, t := range available {
		byName[t.Name] = t
	}

	for _, cluster := range floorplan.Clusters() {
		members := make(map[string]bool, len(cluster))
		total := 0
		var seeds []string
		for _, name := range cluster {
			members[name] = true
			if t, ok := byName[name]; ok {
				seeds = append(seeds, name)
				total += t.Capacity
			}
		}
		// The whole zone cannot seat the party; skip it.
		if total < size {
			continue
		}
		for _, seed := range seeds {
			if combo := expand(byName[seed], size, byName, members); combo != nil {
				return combo
			}
		}
	}

	for _, seed := range available {
		if combo := expand(seed, size, byName, nil); combo != nil {
			return combo
		}
	}

	return nil
}

// expand grows a combination outward from seed, breadth-first over the
// adjacency graph, until the accumulated capacity covers size or the
// frontier is exhausted. within, when non-nil, restricts expansion to a
// cluster. The visited set guards against duplicate and self adjacency
// entries.
func expand(seed models.Table, size int, available map[string]models.Table, within map[string]bool) []models.Table {
	combo := []models.Table{seed}
	capacity := seed.Capacity
	visited := map[string]bool{seed.Name: true}
	queue := slices.Clone(floorplan.Adjacent(seed.Name))

	for len(queue) > 0 && capacity < size {
		next := queue[0]
		queue = queue[1:]
		if visited[next] {
			continue
		}
		if within != nil && !within[next] {
			continue
		}
		visited[next] = true

		t, ok := available[next]
		if !ok {
			continue
		}
		combo = append(combo, t)
		capacity += t.Capacity
		queue = append(queue, floorplan.Adjacent(next)...)
	}

	if capacity >= size {
		return combo
	}
	return nil
}
