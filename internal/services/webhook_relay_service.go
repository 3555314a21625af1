package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	httpClient "github.com/cyphera/cyphera-wallets/internal/client/http"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/interfaces"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

const maxRelayResponseBytes = 4096

// DepositPayload is the JSON body relayed to a wallet owner for every deposit
type DepositPayload struct {
	ReceivingAddress string `json:"receivingAddress"`
	EventID          string `json:"eventId"`
	ContractAddress  string `json:"contractAddress"`
	ContractDecimals int32  `json:"contractDecimals"`
	FromAddress      string `json:"fromAddress"`
	ToAddress        string `json:"toAddress"`
	Value            string `json:"value"`
	RawValue         string `json:"rawValue"`
	Hash             string `json:"hash"`
	Asset            string `json:"asset"`
	Category         string `json:"category"`
	Network          string `json:"network"`
	BlockNum         string `json:"blockNum"`
}

// WebhookRelayService forwards recorded deposits to the wallet owner's webhook URL.
type WebhookRelayService struct {
	client         *httpClient.HTTPClient
	store          db.Querier
	custody        interfaces.KeyCustody
	custodyTimeout time.Duration
	logger         *zap.Logger
}

// NewWebhookRelayService creates a new webhook relay service
func NewWebhookRelayService(client *httpClient.HTTPClient, store db.Querier, custody interfaces.KeyCustody, custodyTimeout time.Duration) *WebhookRelayService {
	return &WebhookRelayService{
		client:         client,
		store:          store,
		custody:        custody,
		custodyTimeout: custodyTimeout,
		logger:         logger.Log,
	}
}

// Send posts receipt to wallet's webhook URL and records the attempt.
// A delivery failure is recorded with its status, not returned; only a
// failure to build or record the delivery is an error.
func (s *WebhookRelayService) Send(ctx context.Context, wallet db.Wallet, receipt db.WebhookReceipt) (*db.SentWebhookReceipt, error) {
	payload, err := json.Marshal(DepositPayload{
		ReceivingAddress: wallet.Address,
		EventID:          receipt.EventID,
		ContractAddress:  receipt.ContractAddress,
		ContractDecimals: receipt.ContractDecimals,
		FromAddress:      receipt.FromAddress,
		ToAddress:        receipt.ToAddress,
		Value:            receipt.Value,
		RawValue:         receipt.RawValue,
		Hash:             receipt.Hash,
		Asset:            receipt.Asset,
		Category:         receipt.Category,
		Network:          receipt.Network,
		BlockNum:         receipt.BlockNum,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deposit payload: %w", err)
	}

	options := []httpClient.RequestOption{httpClient.WithHeader("Content-Type", "application/json")}
	if wallet.EncryptedWebhookSecret.Valid {
		custodyCtx, cancel := context.WithTimeout(ctx, s.custodyTimeout)
		secret, err := s.custody.Decrypt(custodyCtx, wallet.EncryptedWebhookSecret.String)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt webhook secret: %w", err)
		}
		options = append(options, httpClient.WithHeader(constants.WebhookSecretHeader, secret))
	}

	statusCode, response := s.deliver(ctx, wallet.WebhookUrl, payload, options)

	log := s.logger.With(
		logger.WalletID(wallet.ID),
		logger.ReceiptID(receipt.ID),
		zap.Int("status_code", statusCode))
	if statusCode < 200 || statusCode >= 300 {
		log.Warn("Deposit webhook delivery failed", zap.String("response", response))
	} else {
		log.Info("Deposit webhook delivered")
	}

	sent, err := s.store.CreateSentWebhookReceipt(ctx, db.CreateSentWebhookReceiptParams{
		WalletID:       wallet.ID,
		OrganizationID: wallet.OrganizationID,
		ReceiptID:      receipt.ID,
		WebhookUrl:     wallet.WebhookUrl,
		Payload:        payload,
		StatusCode:     int32(statusCode),
		Response:       response,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record sent webhook: %w", err)
	}
	return &sent, nil
}

// deliver returns the final status code and a truncated response body.
// The status code is 0 when no response was received.
func (s *WebhookRelayService) deliver(ctx context.Context, url string, payload []byte, options []httpClient.RequestOption) (int, string) {
	resp, err := s.client.DoRaw(ctx, http.MethodPost, url, payload, options...)

	var httpErr *httpClient.HTTPError
	switch {
	case errors.As(err, &httpErr):
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		return httpErr.StatusCode, truncate(httpErr.Body)
	case err != nil:
		return 0, truncate(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRelayResponseBytes))
	if err != nil {
		return resp.StatusCode, truncate(err.Error())
	}
	return resp.StatusCode, truncate(string(body))
}

// truncate makes s storable as Postgres text: valid UTF-8, no NUL bytes and
// at most maxRelayResponseBytes long, cut on a rune boundary.
func truncate(s string) string {
	s = strings.ReplaceAll(strings.ToValidUTF8(s, string(utf8.RuneError)), "\x00", "")
	if len(s) <= maxRelayResponseBytes {
		return s
	}
	cut := maxRelayResponseBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
