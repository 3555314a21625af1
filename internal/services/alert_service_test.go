package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/cyphera-wallets/internal/services"
)

type fakeEmailSender struct {
	sent []*resend.SendEmailRequest
	err  error
}

func (f *fakeEmailSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, params)
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func TestAlertService_SendAlert(t *testing.T) {
	t.Run("sends escaped body", func(t *testing.T) {
		sender := &fakeEmailSender{}
		svc := services.NewAlertServiceWithSender(sender, "alerts@example.com", "ops@example.com")

		err := svc.SendAlert(context.Background(), "Partial settlement", "wallet <0xabc> holds funds")

		require.NoError(t, err)
		require.Len(t, sender.sent, 1)
		assert.Equal(t, []string{"ops@example.com"}, sender.sent[0].To)
		assert.Equal(t, "Partial settlement", sender.sent[0].Subject)
		assert.Contains(t, sender.sent[0].Html, "&lt;0xabc&gt;")
		assert.Equal(t, "wallet <0xabc> holds funds", sender.sent[0].Text)
	})

	t.Run("surfaces provider failure", func(t *testing.T) {
		sender := &fakeEmailSender{err: errors.New("rate limited")}
		svc := services.NewAlertServiceWithSender(sender, "alerts@example.com", "ops@example.com")

		err := svc.SendAlert(context.Background(), "subject", "body")

		assert.ErrorContains(t, err, "rate limited")
	})

	t.Run("logs only without configuration", func(t *testing.T) {
		svc := services.NewAlertService("", "alerts@example.com", "")

		assert.NoError(t, svc.SendAlert(context.Background(), "subject", "body"))
	})
}
