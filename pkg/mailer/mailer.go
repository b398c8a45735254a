package mailer

import (
	"fmt"
	"net/smtp"

	"auth-platform/pkg/utils"
)

// Mailer delivers verification codes. Sending is best-effort: callers
// dispatch it off the request path and only log failures.
type Mailer interface {
	SendVerificationCode(to, code string, expiryMinutes int) error
}

type smtpMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewSMTPMailer(config utils.EmailConfig) Mailer {
	return &smtpMailer{
		host:     config.Host,
		port:     config.Port,
		from:     config.From,
		username: config.User,
		password: config.Password,
	}
}

func (m *smtpMailer) SendVerificationCode(to, code string, expiryMinutes int) error {
	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is: %s\r\nIt expires in %d minutes.", code, expiryMinutes)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.from, to, subject, body)

	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
