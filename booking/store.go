package booking

import (
	"context"
	"sort"

	"erable/db"
	"erable/floorplan"
	"erable/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the booking package's view of persistence. The Mongo
// implementation is the default; tests substitute a fake.
type Store interface {
	ListTables(ctx context.Context) ([]models.Table, error)
	ListBookingsForTable(ctx context.Context, tableName string) ([]models.Booking, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	FindBookingByID(ctx context.Context, id string) (models.Booking, error)
	CreateBooking(ctx context.Context, b models.Booking) error
	UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error)
	SetBookingTables(ctx context.Context, id string, tables []models.Table) (models.Booking, error)
}

var store Store = mongoStore{}

type mongoStore struct{}

// ListTables returns the catalog in registry order regardless of how
// Mongo happens to return documents; search determinism depends on it.
func (mongoStore) ListTables(ctx context.Context) ([]models.Table, error) {
	cur, err := db.TablesCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tables []models.Table
	if err := cur.All(ctx, &tables); err != nil {
		return nil, err
	}

	order := make(map[string]int, len(tables))
	for i, t := range floorplan.Tables() {
		order[t.Name] = i
	}
	sort.SliceStable(tables, func(i, j int) bool {
		return order[tables[i].Name] < order[tables[j].Name]
	})
	return tables, nil
}

func (mongoStore) ListBookingsForTable(ctx context.Context, tableName string) ([]models.Booking, error) {
	cur, err := db.BookingsCollection.Find(ctx, bson.M{
		"tables.name": tableName,
		"status":      bson.M{"$ne": models.StatusCancelled},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (mongoStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	cur, err := db.BookingsCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (mongoStore) FindBookingByID(ctx context.Context, id string) (models.Booking, error) {
	var b models.Booking
	err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	return b, err
}

func (mongoStore) CreateBooking(ctx context.Context, b models.Booking) error {
	_, err := db.BookingsCollection.InsertOne(ctx, b)
	return err
}

// UpdateBookingStatus transitions a booking in one atomic write. The
// filter excludes terminal states, so a completed or cancelled booking
// can never transition again, even under concurrent requests.
func (mongoStore) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error) {
	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{
			"id":     id,
			"status": bson.M{"$nin": []models.BookingStatus{models.StatusCompleted, models.StatusCancelled}},
		},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Booking
	err := res.Decode(&updated)
	return updated, err
}

// SetBookingTables replaces the assigned set wholesale. Clear-then-
// connect: repeating the same call yields the same final set.
func (mongoStore) SetBookingTables(ctx context.Context, id string, tables []models.Table) (models.Booking, error) {
	if tables == nil {
		tables = []models.Table{}
	}
	res := db.BookingsCollection.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"tables": tables}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Booking
	err := res.Decode(&updated)
	return updated, err
}
