package booking

import (
	"encoding/json"
	"log"

	"erable/globals"
	"erable/models"
	"erable/mq"
	"erable/rdx"
)

// emitEvent pushes a booking-update to the dashboards after a store
// write succeeded. Fire-and-forget: a publish failure is logged and the
// event is fanned out to local subscribers directly so a single-node
// deployment keeps working without Redis.
func emitEvent(eventType string, b models.Booking) {
	// the day report for this booking's date is stale now
	_ = rdx.RdxDel("analytics:" + b.StartTime.Format("2006-01-02"))

	ev := models.BookingEvent{Type: eventType, Booking: b}
	if err := mq.EmitBookingUpdate(globals.Ctx, ev); err != nil {
		log.Printf("booking event publish failed, broadcasting locally: %v", err)
		data, merr := json.Marshal(ev)
		if merr != nil {
			log.Printf("booking event marshal failed: %v", merr)
			return
		}
		Broadcast(data)
	}
}
