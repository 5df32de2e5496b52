package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"os"

	"erable/models"
)

const appName = "Érable Bistro"

// SendConfirmation emails the guest after their reservation is created.
// Best effort: a missing address or unconfigured SMTP is a logged no-op,
// never an error surfaced to the booking flow.
func SendConfirmation(b models.Booking) error {
	if b.Email == "" {
		return nil
	}

	var subject, body string
	switch b.Language {
	case "en":
		subject = "Reservation confirmed - " + appName
		body = fmt.Sprintf(
			"Welcome, %s!\r\n\r\nYour reservation at %s is confirmed.\r\n\r\nDate: %s\r\nTime: %s\r\nGuests: %d\r\n\r\nWe look forward to seeing you!",
			b.Name, appName, b.StartTime.Format("January 2, 2006"), b.StartTime.Format("15:04"), b.Size)
	default:
		subject = "Réservation confirmée - " + appName
		body = fmt.Sprintf(
			"Bienvenue, %s !\r\n\r\nVotre réservation chez %s est confirmée.\r\n\r\nDate : %s\r\nHeure : %s\r\nCouverts : %d\r\n\r\nAu plaisir de vous accueillir !",
			b.Name, appName, b.StartTime.Format("2 January 2006"), b.StartTime.Format("15:04"), b.Size)
	}

	return send(b.Email, subject, body)
}

// SendFeedback asks the guest for a review after check-in.
func SendFeedback(b models.Booking) error {
	if b.Email == "" {
		return nil
	}

	reviewURL := os.Getenv("REVIEW_URL")
	var subject, body string
	switch b.Language {
	case "en":
		subject = fmt.Sprintf("How was your visit to %s?", appName)
		body = fmt.Sprintf(
			"Hi %s, thank you for visiting us.\r\n\r\nWould you take a moment to leave us a review? %s\r\n\r\nBest regards,\r\nThe %s team",
			b.Name, reviewURL, appName)
	default:
		subject = fmt.Sprintf("Comment était votre visite chez %s ?", appName)
		body = fmt.Sprintf(
			"Bonjour %s, merci de votre visite.\r\n\r\nAuriez-vous un moment pour nous laisser un avis ? %s\r\n\r\nCordialement,\r\nL'équipe %s",
			b.Name, reviewURL, appName)
	}

	return send(b.Email, subject, body)
}

func send(to, subject, body string) error {
	user := os.Getenv("SMTP_USER")
	if user == "" {
		// No credentials configured; log instead of failing so local
		// setups still see what would have been sent.
		log.Printf("[mailer] mock email to=%s subject=%q", to, subject)
		return nil
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = user
	}

	msg := []byte(fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", appName, from, to, subject, body))
	auth := smtp.PlainAuth("", user, os.Getenv("SMTP_PASS"), host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, msg)
}
