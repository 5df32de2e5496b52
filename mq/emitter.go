package mq

import (
	"context"
	"encoding/json"
	"log"

	"erable/models"
	"erable/rdx"
)

// bookingChannel carries booking-update events between instances so
// every dashboard sees every change no matter which node handled the
// mutation.
const bookingChannel = "booking-updates"

// EmitBookingUpdate publishes an event to the booking channel. The
// caller treats failure as non-fatal; a booking mutation never fails
// because its notification could not be delivered.
func EmitBookingUpdate(ctx context.Context, event models.BookingEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return rdx.Conn.Publish(ctx, bookingChannel, data).Err()
}

// StartBookingWorker subscribes to the booking channel and hands each
// payload to deliver (the local websocket broadcast). Runs until the
// subscription channel closes.
func StartBookingWorker(deliver func([]byte)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, bookingChannel)
	ch := sub.Channel()

	log.Println("[BookingWorker] Listening for booking updates...")

	for msg := range ch {
		deliver([]byte(msg.Payload))
	}
}
