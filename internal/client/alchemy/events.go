package alchemy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// WebhookEvent is the envelope Alchemy posts to a webhook URL.
type WebhookEvent struct {
	WebhookID string          `json:"webhookId"`
	ID        string          `json:"id"`
	CreatedAt string          `json:"createdAt"`
	Type      string          `json:"type"`
	Event     json.RawMessage `json:"event"`
}

// AddressActivityEvent is the body of an ADDRESS_ACTIVITY event.
type AddressActivityEvent struct {
	Network  string            `json:"network"`
	Activity []json.RawMessage `json:"activity"`
}

// Activity is one transfer inside an ADDRESS_ACTIVITY event. Pointer fields
// let callers tell a missing field from a zero value.
type Activity struct {
	FromAddress *string      `json:"fromAddress"`
	ToAddress   *string      `json:"toAddress"`
	BlockNum    *string      `json:"blockNum"`
	Hash        *string      `json:"hash"`
	Asset       *string      `json:"asset"`
	Category    *string      `json:"category"`
	Value       *json.Number `json:"value"`
	RawContract *RawContract `json:"rawContract"`
	Log         *ActivityLog `json:"log"`
}

type RawContract struct {
	RawValue *string `json:"rawValue"`
	Address  *string `json:"address"`
	Decimals *int32  `json:"decimals"`
}

// ActivityLog is the event log behind a token transfer. Native and internal
// transfers have none.
type ActivityLog struct {
	LogIndex *string `json:"logIndex"`
	Removed  bool    `json:"removed"`
}

// Complete reports whether every field needed to record a receipt is present.
func (a *Activity) Complete() bool {
	if a.FromAddress == nil || a.ToAddress == nil || a.BlockNum == nil || a.Hash == nil ||
		a.Asset == nil || a.Category == nil || a.Value == nil || a.RawContract == nil {
		return false
	}
	return a.RawContract.RawValue != nil && a.RawContract.Address != nil && a.RawContract.Decimals != nil
}

// Sign returns the hex HMAC-SHA256 of body under signingKey.
func Sign(body []byte, signingKey string) string {
	mac := hmac.New(sha256.New, []byte(signingKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks the X-Alchemy-Signature header value against body.
func VerifySignature(body []byte, signature, signingKey string) bool {
	expected := Sign(body, signingKey)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(signature))))
}
