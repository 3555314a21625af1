package aws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"go.uber.org/zap"

	"github.com/cyphera/cyphera-wallets/internal/logger"
)

// ErrSecretNotFound is returned by GetSecret when the named secret does not exist.
var ErrSecretNotFound = errors.New("secret not found")

// secretsManagerAPI is the subset of the Secrets Manager client used here.
type secretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
	CreateSecret(ctx context.Context, params *secretsmanager.CreateSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error)
	PutSecretValue(ctx context.Context, params *secretsmanager.PutSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error)
	DeleteSecret(ctx context.Context, params *secretsmanager.DeleteSecretInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client. It serves both
// startup configuration secrets and the per-webhook signing keys.
type SecretsManagerClient struct {
	svc secretsManagerAPI
}

// NewSecretsManagerClient creates a client from an already loaded AWS config.
func NewSecretsManagerClient(cfg aws.Config) *SecretsManagerClient {
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}
}

// NewSecretsManagerClientWithAPI is used by tests to inject a fake API.
func NewSecretsManagerClientWithAPI(svc secretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString fetches a secret using the ARN held in secretArnEnvVar.
// When the ARN is unset or the fetch fails, the value of fallbackEnvVar is used.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		value, err := c.GetSecret(ctx, secretArn)
		if err == nil && value != "" {
			logger.Log.Info("Successfully fetched secret from Secrets Manager", zap.String("secret_arn", secretArn))
			return value, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arn_env_var", secretArnEnvVar),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if fallbackEnvVar != "" {
		if value := os.Getenv(fallbackEnvVar); value != "" {
			logger.Log.Debug("Using secret value from direct environment variable", zap.String("env_var", fallbackEnvVar))
			return value, nil
		}
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a JSON secret through secretArnEnvVar and unmarshals it into target.
// The fallback env var is never JSON, so a configured fallback is reported as a mismatch.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, target interface{}) error {
	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" {
		value, err := c.GetSecret(ctx, secretArn)
		if err == nil {
			if err = json.Unmarshal([]byte(value), target); err == nil {
				return nil
			}
		}
		logger.Log.Warn("Failed to load JSON secret from Secrets Manager",
			zap.String("arn_env_var", secretArnEnvVar),
			zap.Error(err),
		)
	}

	if fallbackEnvVar != "" && os.Getenv(fallbackEnvVar) != "" {
		return fmt.Errorf("secrets manager fetch failed for %s, and fallback %s is not JSON parsable", secretArnEnvVar, fallbackEnvVar)
	}
	return fmt.Errorf("secret not found or parsable using ARN env var '%s'", secretArnEnvVar)
}

// GetSecret returns the string value of the named secret.
func (c *SecretsManagerClient) GetSecret(ctx context.Context, name string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return "", ErrSecretNotFound
		}
		return "", fmt.Errorf("failed to get secret %s: %w", name, err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", name)
	}
	return *result.SecretString, nil
}

// PutSecret creates the named secret, or stores a new version if it already exists.
func (c *SecretsManagerClient) PutSecret(ctx context.Context, name, value string) error {
	_, err := c.svc.CreateSecret(ctx, &secretsmanager.CreateSecretInput{
		Name:         aws.String(name),
		SecretString: aws.String(value),
	})
	if err == nil {
		return nil
	}

	var exists *types.ResourceExistsException
	if !errors.As(err, &exists) {
		return fmt.Errorf("failed to create secret %s: %w", name, err)
	}

	if _, err := c.svc.PutSecretValue(ctx, &secretsmanager.PutSecretValueInput{
		SecretId:     aws.String(name),
		SecretString: aws.String(value),
	}); err != nil {
		return fmt.Errorf("failed to update secret %s: %w", name, err)
	}
	return nil
}

// DeleteSecret removes the named secret immediately. A missing secret is not an error.
func (c *SecretsManagerClient) DeleteSecret(ctx context.Context, name string) error {
	_, err := c.svc.DeleteSecret(ctx, &secretsmanager.DeleteSecretInput{
		SecretId:                   aws.String(name),
		ForceDeleteWithoutRecovery: aws.Bool(true),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to delete secret %s: %w", name, err)
	}
	return nil
}
