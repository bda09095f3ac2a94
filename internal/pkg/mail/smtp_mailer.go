package mail

import (
	"fmt"
	"net/smtp"

	"github.com/gofiber/fiber/v2/log"

	"github.com/membergate/membergate/internal/pkg/env"
)

// Configured reports whether SMTP delivery is set up. Without a host the
// magic link is only returned in the API response and delivery is skipped.
func Configured() bool {
	return env.GetEnv("SMTP_HOST", "") != ""
}

// SendMagicLink delivers a login link to the purchase email.
func SendMagicLink(to, link string) error {
	body := fmt.Sprintf(
		"<p>Hello,</p><p>Use the link below to sign in. It is valid for two hours.</p>"+
			"<p><a href=%q>%s</a></p>",
		link, link,
	)
	return SendMail(to, "Your sign-in link", body)
}

// SendMail sends an HTML email via SMTP.
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "587")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Warnf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Errorf("SMTP send error: %v", err)
	} else {
		log.Infof("Email sent to %s via %s", to, addr)
	}
	return err
}
