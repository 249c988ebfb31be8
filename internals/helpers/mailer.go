package helper

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// SendMail mengirim email HTML via SMTP (link registrasi fingerprint, OTP).
// Pengiriman email adalah kolaborator eksternal: caller yang memutuskan
// apakah kegagalan fatal atau cukup dicatat.
func SendMail(to, subject, htmlBody string) error {
	host := GetEnvOr("SMTP_HOST", "smtp.gmail.com")
	port := GetEnvOr("SMTP_PORT", "587")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")

	fromName := GetEnvOr("FROM_NAME", "TrackZone Attendance")
	fromEmail := GetEnvOr("FROM_EMAIL", user)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", fromName, fromEmail))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(htmlBody)

	auth := smtp.PlainAuth("", user, pass, host)
	return smtp.SendMail(host+":"+port, auth, fromEmail, []string{to}, []byte(msg.String()))
}

func GetEnvOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
