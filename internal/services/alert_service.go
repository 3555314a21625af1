package services

import (
	"context"
	"fmt"
	"html"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/logger"
)

// EmailSender is the part of the Resend client used for alerts.
type EmailSender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// AlertService emails operators about settlements that need a manual sweep.
// Without an API key or recipient, alerts are only logged.
type AlertService struct {
	emails    EmailSender
	logger    *zap.Logger
	fromEmail string
	toEmail   string
}

// NewAlertService creates a new alert service
func NewAlertService(apiKey, fromEmail, toEmail string) *AlertService {
	s := &AlertService{
		logger:    logger.Log,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
	if apiKey != "" && toEmail != "" {
		s.emails = resend.NewClient(apiKey).Emails
	}
	return s
}

// NewAlertServiceWithSender creates an alert service that sends through emails
func NewAlertServiceWithSender(emails EmailSender, fromEmail, toEmail string) *AlertService {
	return &AlertService{
		emails:    emails,
		logger:    logger.Log,
		fromEmail: fromEmail,
		toEmail:   toEmail,
	}
}

// SendAlert sends an operator alert
func (s *AlertService) SendAlert(ctx context.Context, subject, body string) error {
	s.logger.Warn("Operator alert", zap.String("subject", subject), zap.String("body", body))
	if s.emails == nil {
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Cyphera Wallets <%s>", s.fromEmail),
		To:      []string{s.toEmail},
		Subject: subject,
		Html:    "<pre>" + html.EscapeString(body) + "</pre>",
		Text:    body,
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "settlement_alert"},
		},
	}

	sent, err := s.emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send operator alert", zap.Error(err), zap.String("subject", subject))
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	s.logger.Info("Operator alert sent", zap.String("email_id", sent.Id))
	return nil
}
