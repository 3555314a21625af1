package aws_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	awsclient "github.com/cyphera/cyphera-wallets/internal/client/aws"
	"github.com/cyphera/cyphera-wallets/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

type fakeSecretsManager struct {
	secrets   map[string]string
	createErr error
	deleteErr error
}

func newFakeSecretsManager() *fakeSecretsManager {
	return &fakeSecretsManager{secrets: map[string]string{}}
}

func (f *fakeSecretsManager) GetSecretValue(_ context.Context, in *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	value, ok := f.secrets[*in.SecretId]
	if !ok {
		return nil, &types.ResourceNotFoundException{}
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: &value}, nil
}

func (f *fakeSecretsManager) CreateSecret(_ context.Context, in *secretsmanager.CreateSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.CreateSecretOutput, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.secrets[*in.Name]; ok {
		return nil, &types.ResourceExistsException{}
	}
	f.secrets[*in.Name] = *in.SecretString
	return &secretsmanager.CreateSecretOutput{}, nil
}

func (f *fakeSecretsManager) PutSecretValue(_ context.Context, in *secretsmanager.PutSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.PutSecretValueOutput, error) {
	f.secrets[*in.SecretId] = *in.SecretString
	return &secretsmanager.PutSecretValueOutput{}, nil
}

func (f *fakeSecretsManager) DeleteSecret(_ context.Context, in *secretsmanager.DeleteSecretInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.DeleteSecretOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	if _, ok := f.secrets[*in.SecretId]; !ok {
		return nil, &types.ResourceNotFoundException{}
	}
	delete(f.secrets, *in.SecretId)
	return &secretsmanager.DeleteSecretOutput{}, nil
}

func TestSecretsManagerClient_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	fake := newFakeSecretsManager()
	client := awsclient.NewSecretsManagerClientWithAPI(fake)

	require.NoError(t, client.PutSecret(ctx, "webhook_signing_key_wh_1", "first"))
	require.NoError(t, client.PutSecret(ctx, "webhook_signing_key_wh_1", "second"))

	value, err := client.GetSecret(ctx, "webhook_signing_key_wh_1")
	require.NoError(t, err)
	assert.Equal(t, "second", value)

	require.NoError(t, client.DeleteSecret(ctx, "webhook_signing_key_wh_1"))
	// Deleting twice is not an error.
	require.NoError(t, client.DeleteSecret(ctx, "webhook_signing_key_wh_1"))

	_, err = client.GetSecret(ctx, "webhook_signing_key_wh_1")
	assert.ErrorIs(t, err, awsclient.ErrSecretNotFound)
}

func TestSecretsManagerClient_PutSecretFailure(t *testing.T) {
	fake := newFakeSecretsManager()
	fake.createErr = errors.New("throttled")
	client := awsclient.NewSecretsManagerClientWithAPI(fake)

	err := client.PutSecret(context.Background(), "name", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create secret name")
}

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	fake := newFakeSecretsManager()
	fake.secrets["arn:aws:secretsmanager:token"] = "from-secrets-manager"
	client := awsclient.NewSecretsManagerClientWithAPI(fake)
	ctx := context.Background()

	tests := []struct {
		name     string
		arn      string
		fallback string
		want     string
		wantErr  bool
	}{
		{name: "reads through ARN", arn: "arn:aws:secretsmanager:token", fallback: "env-token", want: "from-secrets-manager"},
		{name: "falls back when ARN unset", fallback: "env-token", want: "env-token"},
		{name: "falls back when ARN missing", arn: "arn:aws:secretsmanager:missing", fallback: "env-token", want: "env-token"},
		{name: "errors when nothing configured", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_TOKEN_ARN", tt.arn)
			t.Setenv("TEST_TOKEN", tt.fallback)

			got, err := client.GetSecretString(ctx, "TEST_TOKEN_ARN", "TEST_TOKEN")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecretsManagerClient_GetSecretJSON(t *testing.T) {
	fake := newFakeSecretsManager()
	fake.secrets["arn:rds"] = `{"username":"app","password":"p@ss"}`
	client := awsclient.NewSecretsManagerClientWithAPI(fake)
	t.Setenv("RDS_TEST_ARN", "arn:rds")

	var out struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	require.NoError(t, client.GetSecretJSON(context.Background(), "RDS_TEST_ARN", "", &out))
	assert.Equal(t, "app", out.Username)
	assert.Equal(t, "p@ss", out.Password)
}

type fakeKMS struct{}

func (fakeKMS) Encrypt(_ context.Context, in *kms.EncryptInput, _ ...func(*kms.Options)) (*kms.EncryptOutput, error) {
	blob := append([]byte(*in.KeyId+":"), in.Plaintext...)
	return &kms.EncryptOutput{CiphertextBlob: blob}, nil
}

func (fakeKMS) Decrypt(_ context.Context, in *kms.DecryptInput, _ ...func(*kms.Options)) (*kms.DecryptOutput, error) {
	for i, b := range in.CiphertextBlob {
		if b == ':' {
			return &kms.DecryptOutput{Plaintext: in.CiphertextBlob[i+1:]}, nil
		}
	}
	return nil, errors.New("invalid ciphertext")
}

func TestKMSClient_RoundTrip(t *testing.T) {
	client := awsclient.NewKMSClientWithAPI(fakeKMS{})
	ctx := context.Background()

	ciphertext, err := client.Encrypt(ctx, "alias/wallet-keys", "0xdeadbeef")
	require.NoError(t, err)
	assert.NotContains(t, ciphertext, "0xdeadbeef")

	plaintext, err := client.Decrypt(ctx, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", plaintext)

	_, err = client.Decrypt(ctx, "not base64!")
	assert.Error(t, err)
}

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
}

func (f *fakeSQS) SendMessage(_ context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	return &sqs.SendMessageOutput{}, nil
}

func TestSettlementQueue_EnqueueReceipt(t *testing.T) {
	fake := &fakeSQS{}
	queue := awsclient.NewSettlementQueueWithAPI(fake, "https://sqs.local/settlements")

	require.NoError(t, queue.EnqueueReceipt(context.Background(), "receipt-1", "BASE_SEPOLIA"))
	require.Len(t, fake.inputs, 1)
	assert.Equal(t, "https://sqs.local/settlements", *fake.inputs[0].QueueUrl)
	assert.Equal(t, "receipt-1", *fake.inputs[0].MessageBody)
	assert.Equal(t, "BASE_SEPOLIA", *fake.inputs[0].MessageAttributes["Network"].StringValue)
}
