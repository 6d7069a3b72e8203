package mailer

import (
	"fmt"

	mail "gopkg.in/mail.v2"
)

const maxRetries = 3

// SMTPSender отправляет письма через SMTP-релей
type SMTPSender struct {
	fromEmail string
	dialer    *mail.Dialer
}

// NewSMTPSender создает отправщика писем
func NewSMTPSender(host string, port int, username, password, fromEmail string) *SMTPSender {
	return &SMTPSender{
		fromEmail: fromEmail,
		dialer:    mail.NewDialer(host, port, username, password),
	}
}

// Send отправляет письмо получателю с повтором при сбое доставки
func (s *SMTPSender) Send(to string, content *EmailContent) error {
	message := mail.NewMessage()
	message.SetAddressHeader("From", s.fromEmail, fromName)
	message.SetHeader("To", to)
	message.SetHeader("Subject", content.Subject)
	message.SetBody("text/plain", content.Body)

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if lastErr = s.dialer.DialAndSend(message); lastErr == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrSendEmail, lastErr)
}
