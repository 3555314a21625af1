package helpers

import (
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// IsValidEVMAddress reports whether s is a 0x-prefixed 20 byte hex address
func IsValidEVMAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// NormalizeAddress returns the lower-cased hex form used for lookups
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidWebhookURL reports whether s is an absolute http(s) URL with a host
func IsValidWebhookURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "https" || u.Scheme == "http") && u.Host != ""
}
