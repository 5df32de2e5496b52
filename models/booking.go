package models

import "time"

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Terminal reports whether a booking may still transition.
// COMPLETED and CANCELLED are final; history is never deleted.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking is a reservation record. EndTime is derived from Size at
// creation (see booking.Duration) and never recomputed. Tables starts
// empty; the manager assigns tables as a separate action.
type Booking struct {
	ID        string        `json:"id" bson:"id"`
	Name      string        `json:"name" bson:"name"`
	Phone     string        `json:"phone,omitempty" bson:"phone,omitempty"`
	Email     string        `json:"email,omitempty" bson:"email,omitempty"`
	Language  string        `json:"language" bson:"language"`
	Size      int           `json:"size" bson:"size"`
	StartTime time.Time     `json:"startTime" bson:"startTime"`
	EndTime   time.Time     `json:"endTime" bson:"endTime"`
	Status    BookingStatus `json:"status" bson:"status"`
	Tables    []Table       `json:"tables" bson:"tables"`
	CreatedAt int64         `json:"createdAt" bson:"createdAt"`
}

// BookingEvent is broadcast to every connected dashboard after a
// mutating operation succeeds. Type is "new" or "update".
type BookingEvent struct {
	Type    string  `json:"type"`
	Booking Booking `json:"booking"`
}
