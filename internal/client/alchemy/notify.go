package alchemy

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	httpClient "github.com/cyphera/cyphera-wallets/internal/client/http"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

const (
	authTokenHeader = "X-Alchemy-Token"

	createWebhookPath          = "/create-webhook"
	deleteWebhookPath          = "/delete-webhook"
	updateWebhookAddressesPath = "/update-webhook-addresses"
)

// Webhook is the provider side of an address activity subscription.
type Webhook struct {
	ID         string
	SigningKey string
}

type createWebhookRequest struct {
	Network     string   `json:"network"`
	WebhookType string   `json:"webhook_type"`
	WebhookURL  string   `json:"webhook_url"`
	Addresses   []string `json:"addresses"`
}

type createWebhookResponse struct {
	Data struct {
		ID         string `json:"id"`
		Network    string `json:"network"`
		WebhookURL string `json:"webhook_url"`
		IsActive   bool   `json:"is_active"`
		SigningKey string `json:"signing_key"`
	} `json:"data"`
}

type updateWebhookAddressesRequest struct {
	WebhookID         string   `json:"webhook_id"`
	AddressesToAdd    []string `json:"addresses_to_add"`
	AddressesToRemove []string `json:"addresses_to_remove"`
}

// NotifyClient talks to the Alchemy Notify API. It never retries:
// compensation decisions belong to the caller.
type NotifyClient struct {
	client *httpClient.HTTPClient
}

// NewNotifyClient creates a client for the Notify API at baseURL.
func NewNotifyClient(baseURL, authToken string, timeout time.Duration) *NotifyClient {
	return &NotifyClient{
		client: httpClient.NewHTTPClient(
			httpClient.WithBaseURL(baseURL),
			httpClient.WithDefaultHeader(authTokenHeader, authToken),
			httpClient.WithTimeout(timeout),
			httpClient.WithoutRetries(),
		),
	}
}

// CreateWebhook registers an ADDRESS_ACTIVITY webhook for addresses on network.
func (c *NotifyClient) CreateWebhook(ctx context.Context, url string, network constants.Network, addresses []string) (*Webhook, error) {
	resp, err := c.client.Post(ctx, createWebhookPath, createWebhookRequest{
		Network:     string(network),
		WebhookType: constants.AddressActivityEventType,
		WebhookURL:  url,
		Addresses:   nonNil(addresses),
	})
	if err != nil {
		return nil, toProviderError("create webhook", err)
	}

	var body createWebhookResponse
	if err := c.client.ProcessJSONResponse(resp, &body); err != nil {
		return nil, &ProviderError{Op: "create webhook", StatusCode: resp.StatusCode, Message: "invalid response body", Err: err}
	}
	if body.Data.ID == "" || body.Data.SigningKey == "" {
		return nil, &ProviderError{Op: "create webhook", StatusCode: resp.StatusCode, Message: "response is missing webhook id or signing key"}
	}

	logger.Info("Created provider webhook",
		logger.ProviderWebhookID(body.Data.ID),
		logger.Network(string(network)),
		zap.Int("address_count", len(addresses)))

	return &Webhook{ID: body.Data.ID, SigningKey: body.Data.SigningKey}, nil
}

// DeleteWebhook removes the webhook. Callers decide whether NotFound is fatal.
func (c *NotifyClient) DeleteWebhook(ctx context.Context, webhookID string) error {
	resp, err := c.client.Delete(ctx, deleteWebhookPath, httpClient.WithQueryParam("webhook_id", webhookID))
	if err != nil {
		return toProviderError("delete webhook", err)
	}
	_ = resp.Body.Close()

	logger.Info("Deleted provider webhook", logger.ProviderWebhookID(webhookID))
	return nil
}

// UpdateWebhookAddresses adds and removes addresses in one call. Either list may be empty.
func (c *NotifyClient) UpdateWebhookAddresses(ctx context.Context, webhookID string, add, remove []string) error {
	resp, err := c.client.Patch(ctx, updateWebhookAddressesPath, updateWebhookAddressesRequest{
		WebhookID:         webhookID,
		AddressesToAdd:    nonNil(add),
		AddressesToRemove: nonNil(remove),
	})
	if err != nil {
		return toProviderError("update webhook addresses", err)
	}
	_ = resp.Body.Close()

	logger.Debug("Updated provider webhook addresses",
		logger.ProviderWebhookID(webhookID),
		zap.Int("added", len(add)),
		zap.Int("removed", len(remove)))
	return nil
}

func toProviderError(op string, err error) *ProviderError {
	var httpErr *httpClient.HTTPError
	if errors.As(err, &httpErr) {
		return &ProviderError{
			Op:         op,
			StatusCode: httpErr.StatusCode,
			Message:    strings.TrimSpace(httpErr.Body),
			Err:        err,
		}
	}
	return &ProviderError{Op: op, Err: err}
}

func nonNil(addresses []string) []string {
	if addresses == nil {
		return []string{}
	}
	return addresses
}
