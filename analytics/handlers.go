package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"erable/db"
	"erable/models"
	"erable/rdx"
	"erable/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetAnalytics serves the day report for ?date=YYYY-MM-DD. Reports are
// cached briefly since the dashboard polls them.
func GetAnalytics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing date")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	cacheKey := "analytics:" + dateStr
	if cached, err := rdx.RdxGet(cacheKey); err == nil && cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(cached))
		return
	}

	startOfDay := date
	endOfDay := date.Add(24 * time.Hour)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, bson.M{
		"startTime": bson.M{"$gte": startOfDay, "$lt": endOfDay},
		"status":    bson.M{"$ne": models.StatusCancelled},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	summary := Summarize(date, bookings)
	if data, err := json.Marshal(summary); err == nil {
		_ = rdx.SetWithExpiry(cacheKey, string(data), time.Minute)
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}
