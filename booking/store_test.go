package booking

import (
	"context"
	"errors"

	"erable/models"
)

// fakeStore is an in-memory Store for handler and resolver tests.
type fakeStore struct {
	tables           []models.Table
	listTablesErr    error
	bookingsForTable map[string][]models.Booking
	bookings         map[string]models.Booking
	created          []models.Booking
	createErr        error
	updateStatusErr  error
	setTablesErr     error
}

var errNotFound = errors.New("no documents in result")

func swapStore(s Store) func() {
	old := store
	store = s
	return func() { store = old }
}

func (f *fakeStore) ListTables(ctx context.Context) ([]models.Table, error) {
	return f.tables, f.listTablesErr
}

func (f *fakeStore) ListBookingsForTable(ctx context.Context, tableName string) ([]models.Booking, error) {
	return f.bookingsForTable[tableName], nil
}

func (f *fakeStore) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeStore) FindBookingByID(ctx context.Context, id string) (models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return models.Booking{}, errNotFound
	}
	return b, nil
}

func (f *fakeStore) CreateBooking(ctx context.Context, b models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.bookings == nil {
		f.bookings = make(map[string]models.Booking)
	}
	f.bookings[b.ID] = b
	f.created = append(f.created, b)
	return nil
}

func (f *fakeStore) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (models.Booking, error) {
	if f.updateStatusErr != nil {
		return models.Booking{}, f.updateStatusErr
	}
	b, ok := f.bookings[id]
	if !ok || b.Status.Terminal() {
		return models.Booking{}, errNotFound
	}
	b.Status = status
	f.bookings[id] = b
	return b, nil
}

func (f *fakeStore) SetBookingTables(ctx context.Context, id string, tables []models.Table) (models.Booking, error) {
	if f.setTablesErr != nil {
		return models.Booking{}, f.setTablesErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return models.Booking{}, errNotFound
	}
	b.Tables = tables
	f.bookings[id] = b
	return b, nil
}
