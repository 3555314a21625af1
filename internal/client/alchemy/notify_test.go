package alchemy_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

func TestNotifyClient_CreateWebhook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/create-webhook", r.URL.Path)
		assert.Equal(t, "auth-token", r.Header.Get("X-Alchemy-Token"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "BASE_SEPOLIA", req["network"])
		assert.Equal(t, "ADDRESS_ACTIVITY", req["webhook_type"])
		assert.Equal(t, "https://wallets.example.com/webhooks/alchemy", req["webhook_url"])
		assert.Equal(t, []interface{}{"0xabc"}, req["addresses"])

		_, _ = w.Write([]byte(`{"data":{"id":"wh_123","signing_key":"whsec_abc","is_active":true}}`))
	}))
	defer server.Close()

	client := alchemy.NewNotifyClient(server.URL+"/api", "auth-token", time.Second)
	webhook, err := client.CreateWebhook(context.Background(), "https://wallets.example.com/webhooks/alchemy", constants.NetworkBaseSepolia, []string{"0xabc"})
	require.NoError(t, err)
	assert.Equal(t, "wh_123", webhook.ID)
	assert.Equal(t, "whsec_abc", webhook.SigningKey)
}

func TestNotifyClient_CreateWebhookMissingSigningKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"id":"wh_123"}}`))
	}))
	defer server.Close()

	client := alchemy.NewNotifyClient(server.URL, "auth-token", time.Second)
	_, err := client.CreateWebhook(context.Background(), "https://x", constants.NetworkBaseSepolia, nil)

	var providerErr *alchemy.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.False(t, providerErr.Transient())
}

func TestNotifyClient_UpdateWebhookAddresses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/update-webhook-addresses", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "wh_123", req["webhook_id"])
		assert.Equal(t, []interface{}{"0xabc"}, req["addresses_to_add"])
		assert.Equal(t, []interface{}{}, req["addresses_to_remove"])

		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := alchemy.NewNotifyClient(server.URL, "auth-token", time.Second)
	require.NoError(t, client.UpdateWebhookAddresses(context.Background(), "wh_123", []string{"0xabc"}, nil))
}

func TestNotifyClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantTransient bool
		wantNotFound  bool
	}{
		{name: "rejected request", status: http.StatusBadRequest},
		{name: "unknown webhook", status: http.StatusNotFound, wantNotFound: true},
		{name: "rate limited", status: http.StatusTooManyRequests, wantTransient: true},
		{name: "server error", status: http.StatusBadGateway, wantTransient: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "wh_123", r.URL.Query().Get("webhook_id"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			}))
			defer server.Close()

			client := alchemy.NewNotifyClient(server.URL, "auth-token", time.Second)
			err := client.DeleteWebhook(context.Background(), "wh_123")

			var providerErr *alchemy.ProviderError
			require.True(t, errors.As(err, &providerErr))
			assert.Equal(t, tt.status, providerErr.StatusCode)
			assert.Equal(t, tt.wantTransient, providerErr.Transient())
			assert.Equal(t, tt.wantNotFound, alchemy.IsNotFound(err))
		})
	}
}

func TestNotifyClient_NetworkErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := alchemy.NewNotifyClient(url, "auth-token", time.Second)
	err := client.UpdateWebhookAddresses(context.Background(), "wh_123", nil, []string{"0xabc"})

	var providerErr *alchemy.ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, 0, providerErr.StatusCode)
	assert.True(t, providerErr.Transient())
}

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"webhookId":"wh_123","type":"ADDRESS_ACTIVITY"}`)
	signature := alchemy.Sign(body, "whsec_abc")

	assert.True(t, alchemy.VerifySignature(body, signature, "whsec_abc"))
	assert.False(t, alchemy.VerifySignature(body, signature, "whsec_other"))
	assert.False(t, alchemy.VerifySignature([]byte(`{}`), signature, "whsec_abc"))
	assert.False(t, alchemy.VerifySignature(body, "", "whsec_abc"))
}

func TestActivity_Complete(t *testing.T) {
	full := `{"fromAddress":"0x1","toAddress":"0x2","blockNum":"0x10","hash":"0xh","asset":"USDC","category":"token","value":1.5,
		"rawContract":{"rawValue":"0x16e360","address":"0xc","decimals":6}}`
	var activity alchemy.Activity
	require.NoError(t, json.Unmarshal([]byte(full), &activity))
	assert.True(t, activity.Complete())

	missing := `{"fromAddress":"0x1","toAddress":"0x2","blockNum":"0x10","hash":"0xh","asset":"USDC","category":"token","value":1.5,
		"rawContract":{"rawValue":"0x16e360","address":"0xc"}}`
	var partial alchemy.Activity
	require.NoError(t, json.Unmarshal([]byte(missing), &partial))
	assert.False(t, partial.Complete())
}
