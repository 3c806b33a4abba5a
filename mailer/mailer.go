package mailer

import (
	"fmt"
	"net/smtp"
	"os"

	"medblog/logger"
)

// Mailer sends transactional mail over SMTP. It is disabled (a logged
// no-op that reports an error to callers) when the SMTP environment is
// incomplete.
type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

// NewFromEnv builds a Mailer from the SMTP_* environment variables.
func NewFromEnv() *Mailer {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		logger.Log.Warn("mailer disabled: missing SMTP environment variables")
	}

	return &Mailer{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

// SendPasswordReset mails the reset link to one recipient.
func (m *Mailer) SendPasswordReset(to, resetURL string) error {
	subject := "Password Reset"
	body := fmt.Sprintf("Click to reset your password: %s", resetURL)
	return m.send(to, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	if !m.Enabled {
		return fmt.Errorf("mailer: disabled, cannot send %q to %s", subject, to)
	}

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)

	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s",
		to, m.From, subject, body))

	if err := smtp.SendMail(addr, auth, m.From, []string{to}, msg); err != nil {
		logger.ErrorWithFields("failed to send email", logger.Fields{
			"to":      to,
			"subject": subject,
			"error":   err.Error(),
		})
		return err
	}
	logger.InfoWithFields("email sent", logger.Fields{"to": to, "subject": subject})
	return nil
}
