package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// APIKeyLength is the length of the random part of the API key (in bytes before base64 encoding)
	APIKeyLength = 32
	// APIKeyPrefix is the prefix for all API keys
	APIKeyPrefix = "cwk"
	// BcryptCost is the cost factor for bcrypt hashing
	BcryptCost = 10
)

// GenerateAPIKey generates a new secure API key.
// Returns the full key (shown once to the organization) and the prefix used to look it up.
func GenerateAPIKey() (fullKey string, keyPrefix string, err error) {
	randomBytes := make([]byte, APIKeyLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	encodedKey := base64.RawURLEncoding.EncodeToString(randomBytes)
	fullKey = fmt.Sprintf("%s_%s", APIKeyPrefix, encodedKey)
	keyPrefix = ExtractKeyPrefix(fullKey)

	return fullKey, keyPrefix, nil
}

// HashAPIKey hashes an API key using bcrypt
func HashAPIKey(apiKey string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(apiKey), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash API key: %w", err)
	}
	return string(hashedBytes), nil
}

// CompareAPIKeyHash compares a plain text API key with a bcrypt hash
func CompareAPIKeyHash(apiKey, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(apiKey))
}

// ExtractKeyPrefix extracts the lookup prefix from a full API key.
// Keys use the raw URL alphabet, which may itself contain underscores,
// so only the first separator is significant.
func ExtractKeyPrefix(apiKey string) string {
	prefix, keyPart, found := strings.Cut(apiKey, "_")
	if !found || prefix == "" || keyPart == "" {
		return "invalid"
	}

	if len(keyPart) >= 8 {
		return fmt.Sprintf("%s_%s", prefix, keyPart[:8])
	}
	return fmt.Sprintf("%s_%s", prefix, keyPart)
}
