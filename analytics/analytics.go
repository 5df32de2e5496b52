package analytics

import (
	"fmt"
	"time"

	"erable/models"
)

// Average spend per cover, used for the turnover estimate on the
// manager dashboard.
const avgSpendPerGuest = 55

// Summary is the day report shown on the dashboard.
type Summary struct {
	TotalBookings int    `json:"totalBookings"`
	TotalGuests   int    `json:"totalGuests"`
	Turnover      int    `json:"turnover"`
	PeakHour      string `json:"peakHour"`
}

// Summarize computes the day report from that day's non-cancelled
// bookings. Peak hour is the half-hour slot of dinner service
// (17:00–22:30) with the most bookings in progress.
func Summarize(date time.Time, bookings []models.Booking) Summary {
	s := Summary{PeakHour: "19:00"}

	var active []models.Booking
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		active = append(active, b)
		s.TotalGuests += b.Size
	}
	s.TotalBookings = len(active)
	s.Turnover = s.TotalGuests * avgSpendPerGuest

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	maxOverlaps := 0
	for h := 17; h <= 22; h++ {
		for _, m := range []int{0, 30} {
			slot := day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
			overlaps := 0
			for _, b := range active {
				if !slot.Before(b.StartTime) && slot.Before(b.EndTime) {
					overlaps++
				}
			}
			if overlaps > maxOverlaps {
				maxOverlaps = overlaps
				s.PeakHour = fmt.Sprintf("%02d:%02d", h, m)
			}
		}
	}

	return s
}
