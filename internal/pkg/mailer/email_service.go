// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"html"
	"time"

	"event-management-be/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

// Receipt is what the customer sees once a transaction is settled.
type Receipt struct {
	CustomerName  string
	CustomerEmail string
	TransactionId string
	EventName     string
	Amount        string
	PaidAt        time.Time
}

type IEmailService interface {
	SendPaymentReceipt(r Receipt) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	log         logger.ILogger
}

func NewEmailService(host string, port int, username, password, senderName string, log logger.ILogger) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		log:         log,
	}
}

func (s *emailService) SendPaymentReceipt(r Receipt) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", r.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Payment received: %s", r.EventName))
	m.SetBody("text/html", renderReceipt(r))

	if err := s.dialer.DialAndSend(m); err != nil {
		s.log.Error("MAILER", "Failed to send payment receipt", map[string]interface{}{
			"to":             r.CustomerEmail,
			"transaction_id": r.TransactionId,
			"error":          err.Error(),
		})
		return err
	}

	s.log.Info("MAILER", "Payment receipt sent", map[string]interface{}{
		"to":             r.CustomerEmail,
		"transaction_id": r.TransactionId,
	})
	return nil
}

func renderReceipt(r Receipt) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Thank you, %s!</h2>
			<p>We have received your payment for <strong>%s</strong>.</p>
			<table style="border-collapse: collapse;">
				<tr><td style="padding: 4px 12px 4px 0;">Transaction</td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;">Amount</td><td>%s</td></tr>
				<tr><td style="padding: 4px 12px 4px 0;">Settled at</td><td>%s</td></tr>
			</table>
		</div>
	`, html.EscapeString(r.CustomerName), html.EscapeString(r.EventName), html.EscapeString(r.TransactionId), html.EscapeString(r.Amount), r.PaidAt.Format("2006-01-02 15:04"))
}
