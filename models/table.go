package models

// TableShape mirrors the physical furniture drawn on the floor plan.
type TableShape string

const (
	ShapeRectangular TableShape = "RECTANGULAR"
	ShapeOctagonal   TableShape = "OCTAGONAL"
	ShapeCapsule     TableShape = "CAPSULE"
	ShapeRound       TableShape = "ROUND"
	ShapeSquare      TableShape = "SQUARE"
	ShapeBar         TableShape = "BAR"
)

// Table is a physical table. Seeded once at startup and never mutated;
// Name doubles as the stable identifier used by the adjacency graph,
// the clusters and table assignments.
type Table struct {
	ID       string     `json:"id" bson:"id"`
	Name     string     `json:"name" bson:"name"`
	Capacity int        `json:"capacity" bson:"capacity"`
	Shape    TableShape `json:"shape" bson:"shape"`
}
