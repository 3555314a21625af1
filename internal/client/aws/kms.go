package aws

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

type kmsAPI interface {
	Encrypt(ctx context.Context, params *kms.EncryptInput, optFns ...func(*kms.Options)) (*kms.EncryptOutput, error)
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// KMSClient encrypts wallet private keys and owner webhook secrets.
// Ciphertexts are base64 encoded so they can live in text columns.
type KMSClient struct {
	svc kmsAPI
}

func NewKMSClient(cfg aws.Config) *KMSClient {
	return &KMSClient{svc: kms.NewFromConfig(cfg)}
}

// NewKMSClientWithAPI is used by tests to inject a fake API.
func NewKMSClientWithAPI(svc kmsAPI) *KMSClient {
	return &KMSClient{svc: svc}
}

// Encrypt encrypts plaintext under keyID.
func (c *KMSClient) Encrypt(ctx context.Context, keyID string, plaintext string) (string, error) {
	out, err := c.svc.Encrypt(ctx, &kms.EncryptInput{
		KeyId:     aws.String(keyID),
		Plaintext: []byte(plaintext),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encrypt with kms: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out.CiphertextBlob), nil
}

// Decrypt reverses Encrypt. The key is resolved from the ciphertext itself.
func (c *KMSClient) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	out, err := c.svc.Decrypt(ctx, &kms.DecryptInput{
		CiphertextBlob: blob,
	})
	if err != nil {
		return "", fmt.Errorf("failed to decrypt with kms: %w", err)
	}
	return string(out.Plaintext), nil
}
