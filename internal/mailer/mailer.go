package mailer

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Mailer sends plain SMTP mail. It is disabled (Send returns an error)
// when the SMTP environment variables are not fully configured.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	To       string
	Enabled  bool
}

func NewFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	to := os.Getenv("CONTACT_TO")
	if to == "" {
		to = from
	}

	return &Mailer{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		To:       to,
		Enabled:  host != "" && port != "" && user != "" && pass != "" && from != "",
	}
}

func (m *Mailer) send(to []string, subject string, body string) error {
	if !m.Enabled {
		return fmt.Errorf("mailer is not configured")
	}

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: Graphics Garage <%s>\r\n"+
		"Subject: %s\r\n"+
		"MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\n\n%s",
		strings.Join(to, ","), m.From, subject, body))

	return smtp.SendMail(addr, auth, m.From, to, msg)
}

// SendContactMessage delivers a contact-form submission to the agency
// inbox. Delivery is synchronous so the caller can report failure.
func (m *Mailer) SendContactMessage(name, email, message string) error {
	subject := fmt.Sprintf("New contact form message from %s", name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", name, email, message)

	return m.send([]string{m.To}, subject, body)
}
