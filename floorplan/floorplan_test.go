package floorplan

import (
	"testing"

	"erable/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOrderIsStable(t *testing.T) {
	tables := Tables()
	require.NotEmpty(t, tables)

	var names []string
	for _, tab := range tables[:7] {
		names = append(names, tab.Name)
	}
	// Seeding order drives best-fit tie-breaks, so it must never drift.
	assert.Equal(t, []string{"1", "10", "2", "4", "7", "11", "12"}, names)
}

func TestRegistryCapacities(t *testing.T) {
	cases := map[string]int{
		"1":      7,
		"2":      5,
		"11":     6,
		"25":     6,
		"33":     6,
		"9":      4,
		"52":     4,
		"103":    2,
		"BAR-44": 1,
	}
	for name, capacity := range cases {
		tab, ok := ByName(name)
		require.True(t, ok, "table %s missing from registry", name)
		assert.Equal(t, capacity, tab.Capacity, "table %s", name)
	}
}

func TestByNameUnknown(t *testing.T) {
	_, ok := ByName("99")
	assert.False(t, ok)
}

func TestAdjacencyIsSymmetric(t *testing.T) {
	assert.NoError(t, validateAdjacency())
}

func TestAdjacencyNeighbours(t *testing.T) {
	assert.Contains(t, Adjacent("11"), "12")
	assert.Contains(t, Adjacent("12"), "11")

	// Capsule 24 sits in the middle of the booth grid.
	assert.ElementsMatch(t, []string{"25", "23", "21", "27"}, Adjacent("24"))

	// Bar stools are never combined.
	assert.Empty(t, Adjacent("BAR-40"))
}

func TestClusterPriorityOrder(t *testing.T) {
	cs := Clusters()
	require.Len(t, cs, 4)
	assert.Equal(t, []string{"11", "12"}, cs[0])
	assert.Equal(t, "20", cs[1][0])
	assert.Equal(t, "30", cs[2][0])
	assert.Equal(t, "1", cs[3][0])
}

func TestClusterMembersExist(t *testing.T) {
	for _, cluster := range Clusters() {
		for _, name := range cluster {
			_, ok := ByName(name)
			assert.True(t, ok, "cluster references unknown table %s", name)
		}
	}
}

func TestTablesReturnsCopy(t *testing.T) {
	tables := Tables()
	tables[0] = models.Table{Name: "mutated"}
	fresh := Tables()
	assert.Equal(t, "1", fresh[0].Name)
}
