package agenda

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"erable/db"
	"erable/models"
	"erable/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://localhost:8080"
}

func checkInURL(bookingID string) string {
	return fmt.Sprintf("%s/api/bookings/%s/checkin", baseURL(), bookingID)
}

// PrintAgenda renders the day's bookings as a printable PDF, one row
// per reservation with a check-in QR the host can scan at the door.
func PrintAgenda(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	dateStr := ps.ByName("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid date")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cur, err := db.BookingsCollection.Find(ctx, bson.M{
		"startTime": bson.M{"$gte": date, "$lt": date.Add(24 * time.Hour)},
		"status":    bson.M{"$ne": models.StatusCancelled},
	}, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
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

	pdf, err := buildAgendaPDF(date, bookings)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate agenda")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=agenda-%s.pdf", dateStr))
	w.Write(pdf)
}

func buildAgendaPDF(date time.Time, bookings []models.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Service agenda — %s", date.Format("Monday, 2 January 2006")))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(18, 8, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 8, "Guest", "1", 0, "L", false, 0, "")
	pdf.CellFormat(14, 8, "Pax", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 8, "Tables", "1", 0, "L", false, 0, "")
	pdf.CellFormat(28, 8, "Status", "1", 0, "C", false, 0, "")
	pdf.CellFormat(22, 8, "Check-in", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, b := range bookings {
		var names []string
		for _, t := range b.Tables {
			names = append(names, t.Name)
		}
		assigned := strings.Join(names, ", ")
		if assigned == "" {
			assigned = "—"
		}

		y := pdf.GetY()
		pdf.CellFormat(18, 18, b.StartTime.Format("15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 18, b.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(14, 18, fmt.Sprint(b.Size), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 18, assigned, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 18, string(b.Status), "1", 0, "C", false, 0, "")
		pdf.CellFormat(22, 18, "", "1", 1, "C", false, 0, "")

		png, err := qrcode.Encode(checkInURL(b.ID), qrcode.Medium, 128)
		if err != nil {
			return nil, err
		}
		name := "qr-" + b.ID
		pdf.RegisterImageOptionsReader(name,
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
		pdf.ImageOptions(name, 180, y+2, 14, 14, false,
			gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

		if pdf.GetY() > 260 {
			pdf.AddPage()
		}
	}

	if len(bookings) == 0 {
		pdf.Cell(0, 10, "No reservations.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BookingQR serves the check-in QR for a single booking as PNG, for
// embedding in the dashboard's booking drawer.
func BookingQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var b models.Booking
	if err := db.BookingsCollection.FindOne(ctx, bson.M{"id": id}).Decode(&b); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "not found")
		return
	}

	png, err := qrcode.Encode(checkInURL(b.ID), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
