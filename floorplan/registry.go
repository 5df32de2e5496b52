package floorplan

import (
	"context"
	"fmt"
	"time"

	"erable/db"
	"erable/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// registry is the fixed catalog of physical tables, in seeding order.
// The order is load-bearing: single-table best fit and the global
// combination search both break ties by registry order.
var registry = buildRegistry()

func buildRegistry() []models.Table {
	var tables []models.Table

	add := func(name string, capacity int, shape models.TableShape) {
		tables = append(tables, models.Table{
			ID:       name,
			Name:     name,
			Capacity: capacity,
			Shape:    shape,
		})
	}

	// Octagonal eight-tops at both ends of the top row.
	add("1", 7, models.ShapeOctagonal)
	add("10", 7, models.ShapeOctagonal)

	// Rectangular five-seaters.
	for _, name := range []string{"2", "4", "7"} {
		add(name, 5, models.ShapeRectangular)
	}

	// Large six-seaters: the big-group pair, the capsule booths and the
	// bottom row.
	add("11", 6, models.ShapeRectangular)
	add("12", 6, models.ShapeRectangular)
	for i := 20; i <= 28; i++ {
		add(fmt.Sprint(i), 6, models.ShapeCapsule)
	}
	for i := 30; i <= 36; i++ {
		add(fmt.Sprint(i), 6, models.ShapeCapsule)
	}

	// Standard four-seaters.
	for _, name := range []string{"3", "5", "6", "8", "9"} {
		add(name, 4, models.ShapeRectangular)
	}
	for i := 50; i <= 54; i++ {
		add(fmt.Sprint(i), 4, models.ShapeSquare)
	}

	// Two-seaters along the left wall.
	for i := 100; i <= 105; i++ {
		add(fmt.Sprint(i), 2, models.ShapeRound)
	}

	// Bar stools.
	for i := 40; i <= 48; i++ {
		add(fmt.Sprintf("BAR-%d", i), 1, models.ShapeBar)
	}

	return tables
}

// Tables returns the registry in its fixed order.
func Tables() []models.Table {
	out := make([]models.Table, len(registry))
	copy(out, registry)
	return out
}

// ByName resolves a table name against the registry.
func ByName(name string) (models.Table, bool) {
	for _, t := range registry {
		if t.Name == name {
			return t, true
		}
	}
	return models.Table{}, false
}

// SeedTables upserts the catalog into Mongo. Idempotent; run at startup.
func SeedTables(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, t := range registry {
		_, err := db.TablesCollection.UpdateOne(ctx,
			bson.M{"name": t.Name},
			bson.M{"$set": t},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed table %s: %w", t.Name, err)
		}
	}
	return nil
}
