package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"erable/models"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idParam(id string) httprouter.Params {
	return httprouter.Params{{Key: "id", Value: id}}
}

func decodeBooking(t *testing.T, rec *httptest.ResponseRecorder) models.Booking {
	t.Helper()
	var b models.Booking
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&b))
	return b
}

func TestCreateBookingDerivesEndTime(t *testing.T) {
	fake := &fakeStore{}
	defer swapStore(fake)()

	body := `{"name":"Jeanne Tremblay","size":4,"startTime":"2026-05-20T19:00","email":"","language":"fr"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateBooking(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fake.created, 1)

	b := fake.created[0]
	assert.Equal(t, at(t, "2026-05-20T21:00"), b.EndTime) // 120 minutes
	assert.Equal(t, models.StatusConfirmed, b.Status)
	assert.Empty(t, b.Tables)
	assert.NotEmpty(t, b.ID)
}

func TestCreateBookingLargePartyGetsLongerSlot(t *testing.T) {
	fake := &fakeStore{}
	defer swapStore(fake)()

	body := `{"name":"Marc Gagnon","size":8,"startTime":"2026-05-20T19:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateBooking(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, fake.created, 1)
	assert.Equal(t, at(t, "2026-05-20T22:00"), fake.created[0].EndTime) // 180 minutes
	// Language defaults to fr when the widget omits it.
	assert.Equal(t, "fr", fake.created[0].Language)
}

func TestCreateBookingMissingFields(t *testing.T) {
	fake := &fakeStore{}
	defer swapStore(fake)()

	body := `{"name":"Jeanne Tremblay"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateBooking(rec, req, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp struct {
		Error         string   `json:"error"`
		MissingFields []string `json:"missingFields"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.ElementsMatch(t, []string{"size", "startTime"}, resp.MissingFields)
	assert.Empty(t, fake.created, "no store mutation on validation failure")
}

func TestCreateBookingInvalidStartTime(t *testing.T) {
	fake := &fakeStore{}
	defer swapStore(fake)()

	body := `{"name":"Jeanne","size":2,"startTime":"yesterday evening"}`
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateBooking(rec, req, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, fake.created)
}

func TestCheckInCompletesBooking(t *testing.T) {
	fake := &fakeStore{bookings: map[string]models.Booking{
		"b1": {ID: "b1", Name: "Jeanne", Status: models.StatusConfirmed},
	}}
	defer swapStore(fake)()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b1/checkin", nil)
	rec := httptest.NewRecorder()

	CheckIn(rec, req, idParam("b1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusCompleted, decodeBooking(t, rec).Status)
	assert.Equal(t, models.StatusCompleted, fake.bookings["b1"].Status)
}

func TestCheckInUnknownBookingFails(t *testing.T) {
	fake := &fakeStore{bookings: map[string]models.Booking{}}
	defer swapStore(fake)()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/nope/checkin", nil)
	rec := httptest.NewRecorder()

	CheckIn(rec, req, idParam("nope"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTerminalStatesAreFinal(t *testing.T) {
	fake := &fakeStore{bookings: map[string]models.Booking{
		"done":      {ID: "done", Status: models.StatusCompleted},
		"cancelled": {ID: "cancelled", Status: models.StatusCancelled},
	}}
	defer swapStore(fake)()

	for _, id := range []string{"done", "cancelled"} {
		req := httptest.NewRequest(http.MethodPost, "/api/bookings/"+id+"/cancel", nil)
		rec := httptest.NewRecorder()

		CancelBooking(rec, req, idParam(id))

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "booking %s must not transition", id)
	}
}

func TestCancelBookingSoftDeletes(t *testing.T) {
	fake := &fakeStore{bookings: map[string]models.Booking{
		"b1": {ID: "b1", Status: models.StatusPending},
	}}
	defer swapStore(fake)()

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/b1/cancel", nil)
	rec := httptest.NewRecorder()

	CancelBooking(rec, req, idParam("b1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.StatusCancelled, fake.bookings["b1"].Status)
}

func TestAssignTablesResolvesAndReplaces(t *testing.T) {
	fake := &fakeStore{bookings: map[string]models.Booking{
		"b1": {ID: "b1", Status: models.StatusConfirmed, Tables: []models.Table{{Name: "3"}}},
	}}
	defer swapStore(fake)()

	body := `{"tableNames":["11","12","not-a-table"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1/tables", strings.NewReader(body))
	rec := httptest.NewRecorder()

	AssignTables(rec, req, idParam("b1"))

	require.Equal(t, http.StatusOK, rec.Code)
	// Unknown names are dropped; the previous set is replaced, not merged.
	assert.Equal(t, []string{"11", "12"}, names(fake.bookings["b1"].Tables))
}

func TestAssignTablesIsIdempotent(t *testing.T) {
	fake := &fakeStore{bookings: map[string]models.Booking{
		"b1": {ID: "b1", Status: models.StatusConfirmed},
	}}
	defer swapStore(fake)()

	body := `{"tableNames":["20","21"]}`
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1/tables", strings.NewReader(body))
		rec := httptest.NewRecorder()
		AssignTables(rec, req, idParam("b1"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	assert.Equal(t, []string{"20", "21"}, names(fake.bookings["b1"].Tables))
}

func TestAssignTablesClearsWithEmptyList(t *testing.T) {
	fake := &fakeStore{bookings: map[string]models.Booking{
		"b1": {ID: "b1", Status: models.StatusConfirmed, Tables: []models.Table{{Name: "3"}}},
	}}
	defer swapStore(fake)()

	req := httptest.NewRequest(http.MethodPut, "/api/bookings/b1/tables", strings.NewReader(`{"tableNames":[]}`))
	rec := httptest.NewRecorder()

	AssignTables(rec, req, idParam("b1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, fake.bookings["b1"].Tables)
}

func TestCheckAvailabilityFindsPair(t *testing.T) {
	fake := &fakeStore{tables: []models.Table{tbl("11", 6), tbl("12", 6)}}
	defer swapStore(fake)()

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-05-20&time=19:00&size=12", nil)
	rec := httptest.NewRecorder()

	CheckAvailability(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Available bool           `json:"available"`
		Tables    []models.Table `json:"tables"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Available)
	assert.ElementsMatch(t, []string{"11", "12"}, names(resp.Tables))
}

func TestCheckAvailabilityNotAvailableIsNotAnError(t *testing.T) {
	fake := &fakeStore{tables: []models.Table{tbl("BAR-40", 1)}}
	defer swapStore(fake)()

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-05-20&time=19:00&size=4", nil)
	rec := httptest.NewRecorder()

	CheckAvailability(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Available bool           `json:"available"`
		Tables    []models.Table `json:"tables"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Available)
	assert.Empty(t, resp.Tables)
}

func TestCheckAvailabilityExcludesBookedTables(t *testing.T) {
	taken := models.Booking{
		Status:    models.StatusConfirmed,
		StartTime: at(t, "2026-05-20T19:00"),
		EndTime:   at(t, "2026-05-20T21:00"),
	}
	fake := &fakeStore{
		tables:           []models.Table{tbl("2", 5), tbl("3", 4)},
		bookingsForTable: map[string][]models.Booking{"3": {taken}},
	}
	defer swapStore(fake)()

	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-05-20&time=19:30&size=4", nil)
	rec := httptest.NewRecorder()

	CheckAvailability(rec, req, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Available bool           `json:"available"`
		Tables    []models.Table `json:"tables"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Available)
	assert.Equal(t, []string{"2"}, names(resp.Tables))
}

func TestCheckAvailabilityRejectsBadInput(t *testing.T) {
	fake := &fakeStore{}
	defer swapStore(fake)()

	cases := []string{
		"/api/availability?time=19:00&size=4",
		"/api/availability?date=2026-05-20&time=19:00&size=0",
		"/api/availability?date=2026-05-20&time=19:00&size=-1",
		"/api/availability?date=2026-05-20&time=19:00&size=four",
		"/api/availability?date=someday&time=19:00&size=4",
	}
	for _, target := range cases {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		CheckAvailability(rec, req, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}
