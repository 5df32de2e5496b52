package booking

import (
	"context"
	"time"

	"erable/models"
)

// Buffer is the cleaning/turnover padding applied around every existing
// booking's window when checking for conflicts.
const Buffer = 15 * time.Minute

// Duration derives how long a party holds its tables. Computed once at
// creation time; never recomputed afterwards.
func Duration(size int) time.Duration {
	if size >= 6 {
		return 180 * time.Minute
	}
	return 120 * time.Minute
}

// overlaps reports whether the closed intervals [s1,e1] and [s2,e2]
// intersect.
func overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && e1.After(s2)
}

// tableFree reports whether none of the given bookings conflict with
// the requested window. The buffer widens the existing booking's window
// on both sides; the requested window is compared raw, so turnover time
// is reserved without shrinking what the guest asked for. Cancelled
// bookings never conflict.
func tableFree(existing []models.Booking, start, end time.Time) bool {
	for _, b := range existing {
		if b.Status == models.StatusCancelled {
			continue
		}
		if overlaps(b.StartTime.Add(-Buffer), b.EndTime.Add(Buffer), start, end) {
			return false
		}
	}
	return true
}

// GetAvailableTables returns every table with no conflicting reservation
// in the requested window, in registry order. Read-only; store errors
// propagate untouched.
func GetAvailableTables(ctx context.Context, start, end time.Time) ([]models.Table, error) {
	tables, err := store.ListTables(ctx)
	if err != nil {
		return nil, err
	}

	var available []models.Table
	for _, t := range tables {
		bookings, err := store.ListBookingsForTable(ctx, t.Name)
		if err != nil {
			return nil, err
		}
		if tableFree(bookings, start, end) {
			available = append(available, t)
		}
	}
	return available, nil
}
