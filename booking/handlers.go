package booking

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"erable/floorplan"
	"erable/mailer"
	"erable/models"
	"erable/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// startTime is accepted with or without seconds/zone, matching what the
// booking widget and the admin form send.
var startLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseStart(value string) (time.Time, bool) {
	for _, layout := range startLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CheckAvailability answers whether any seating configuration exists
// for (date, time, size) and previews the chosen tables. Nothing is
// persisted; "not available" is a normal result, not an error.
func CheckAvailability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	date := r.URL.Query().Get("date")
	at := r.URL.Query().Get("time")
	sizeStr := r.URL.Query().Get("size")
	if date == "" || at == "" || sizeStr == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing parameters")
		return
	}

	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid party size")
		return
	}

	start, ok := parseStart(date + "T" + at)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date/time")
		return
	}
	end := start.Add(Duration(size))

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	available, err := GetAvailableTables(ctx, start, end)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	combination := FindCombination(size, available)
	tables := combination
	if tables == nil {
		tables = []models.Table{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"available": combination != nil,
		"tables":    tables,
	})
}

type createPayload struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Language  string `json:"language"`
	Size      int    `json:"size"`
	StartTime string `json:"startTime"`
}

// CreateBooking validates and persists a new unassigned reservation.
// Table assignment is a separate manager action; the guest flow never
// pre-assigns.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var p createPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Size == 0 {
		missing = append(missing, "size")
	}
	if p.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if len(missing) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{
			"error":         "Missing fields",
			"missingFields": missing,
		})
		return
	}
	if p.Size < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid party size")
		return
	}

	start, ok := parseStart(p.StartTime)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date/time")
		return
	}

	if p.Language == "" {
		p.Language = "fr"
	}

	b := models.Booking{
		ID:        uuid.NewString(),
		Name:      p.Name,
		Phone:     p.Phone,
		Email:     p.Email,
		Language:  p.Language,
		Size:      p.Size,
		StartTime: start,
		EndTime:   start.Add(Duration(p.Size)),
		Status:    models.StatusConfirmed,
		Tables:    []models.Table{},
		CreatedAt: time.Now().Unix(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()
	if err := store.CreateBooking(ctx, b); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if b.Email != "" {
		go func(b models.Booking) {
			if err := mailer.SendConfirmation(b); err != nil {
				log.Printf("confirmation email for booking %s: %v", b.ID, err)
			}
		}(b)
	}

	emitEvent("new", b)
	utils.RespondWithJSON(w, http.StatusOK, b)
}

// CheckIn marks a booking COMPLETED and asks the guest for feedback.
func CheckIn(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := store.UpdateBookingStatus(ctx, id, models.StatusCompleted)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check-in")
		return
	}

	if updated.Email != "" {
		go func(b models.Booking) {
			if err := mailer.SendFeedback(b); err != nil {
				log.Printf("feedback email for booking %s: %v", b.ID, err)
			}
		}(updated)
	}

	emitEvent("update", updated)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// CancelBooking soft-deletes: the record stays, status becomes CANCELLED
// and its tables stop conflicting with new requests.
func CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := store.UpdateBookingStatus(ctx, id, models.StatusCancelled)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to cancel booking")
		return
	}

	emitEvent("update", updated)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

type assignPayload struct {
	TableNames []string `json:"tableNames"`
}

// AssignTables replaces a booking's assigned tables wholesale. Unknown
// names are silently dropped; size and availability are not re-checked —
// the assignment is taken on the manager's authority so they can seat a
// party the automatic search would not have.
func AssignTables(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if id == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "missing id")
		return
	}

	var p assignPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	tables := make([]models.Table, 0, len(p.TableNames))
	for _, name := range p.TableNames {
		if t, ok := floorplan.ByName(name); ok {
			tables = append(tables, t)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	updated, err := store.SetBookingTables(ctx, id, tables)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update assignment")
		return
	}

	emitEvent("update", updated)
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// GetBookings lists every booking, assigned tables included, for the
// manager dashboard.
func GetBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	bookings, err := store.ListBookings(ctx)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	utils.RespondWithJSON(w, http.StatusOK, bookings)
}

// GetBooking returns a single booking by id.
func GetBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	b, err := store.FindBookingByID(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, b)
}
