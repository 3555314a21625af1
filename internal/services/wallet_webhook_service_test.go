package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/cyphera-wallets/internal/client/alchemy"
	"github.com/cyphera/cyphera-wallets/internal/constants"
	"github.com/cyphera/cyphera-wallets/internal/db"
	"github.com/cyphera/cyphera-wallets/internal/logger"
	"github.com/cyphera/cyphera-wallets/internal/mocks"
	"github.com/cyphera/cyphera-wallets/internal/services"
)

func init() {
	logger.InitLogger("test")
}

const (
	testWebhookURL  = "https://api.example.com/webhooks/alchemy"
	testAddress     = "0x1111111111111111111111111111111111111111"
	testMaxPerHook  = int32(3)
	testProviderID  = "wh_new"
	testSigningKey  = "whsec_new"
	existingHookRef = "wh_existing"
)

type webhookFixture struct {
	store    *mocks.MockStore
	provider *mocks.MockWebhookProvider
	secrets  *mocks.MockSecretStore
	service  *services.WalletWebhookService
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	ctrl := gomock.NewController(t)
	f := &webhookFixture{
		store:    mocks.NewMockStore(ctrl),
		provider: mocks.NewMockWebhookProvider(ctrl),
		secrets:  mocks.NewMockSecretStore(ctrl),
	}
	f.service = services.NewWalletWebhookService(f.store, f.provider, f.secrets, services.WalletWebhookConfig{
		WebhookURL:           testWebhookURL,
		MaxWalletsPerWebhook: testMaxPerHook,
		ProviderTimeout:      time.Second,
	})
	return f
}

func unattachedWallet(id uuid.UUID) db.Wallet {
	return db.Wallet{
		ID:      id,
		Address: testAddress,
		Network: string(constants.NetworkBaseSepolia),
		ChainID: 84532,
	}
}

func attachedWallet(id, webhookID uuid.UUID) db.Wallet {
	w := unattachedWallet(id)
	w.WebhookID = pgtype.UUID{Bytes: webhookID, Valid: true}
	return w
}

func TestWalletWebhookService_Attach(t *testing.T) {
	ctx := context.Background()
	walletID := uuid.New()
	existingID := uuid.New()
	newID := uuid.New()
	network := constants.NetworkBaseSepolia

	existing := func(count int32) db.WalletWebhook {
		return db.WalletWebhook{
			ID:                existingID,
			ProviderWebhookID: existingHookRef,
			Network:           string(network),
			WebhookUrl:        testWebhookURL,
			WalletCount:       count,
		}
	}

	expectCreatePath := func(f *webhookFixture) {
		f.provider.EXPECT().
			CreateWebhook(gomock.Any(), testWebhookURL, network, []string{testAddress}).
			Return(&alchemy.Webhook{ID: testProviderID, SigningKey: testSigningKey}, nil)
		f.secrets.EXPECT().
			PutSecret(gomock.Any(), constants.SigningKeySecretPrefix+testProviderID, testSigningKey).
			Return(nil)
	}

	tests := []struct {
		name        string
		setupMocks  func(f *webhookFixture)
		wantErr     bool
		errContains string
		errIs       error
		wantCount   int32
		wantID      uuid.UUID
	}{
		{
			name: "creates a webhook when none exists",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(db.WalletWebhook{}, pgx.ErrNoRows)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				expectCreatePath(f)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().CreateWalletWebhook(gomock.Any(), db.CreateWalletWebhookParams{
					ProviderWebhookID: testProviderID,
					Network:           string(network),
					WebhookUrl:        testWebhookURL,
					WalletCount:       1,
				}).Return(db.WalletWebhook{ID: newID, ProviderWebhookID: testProviderID, WalletCount: 1}, nil)
				f.store.EXPECT().SetWalletWebhookID(gomock.Any(), db.SetWalletWebhookIDParams{
					ID:        walletID,
					WebhookID: pgtype.UUID{Bytes: newID, Valid: true},
				}).Return(attachedWallet(walletID, newID), nil)
			},
			wantCount: 1,
			wantID:    newID,
		},
		{
			name: "reuses the most recent webhook with capacity",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(existing(1), nil)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, []string{testAddress}, nil).Return(nil)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().IncrementWalletWebhookCount(gomock.Any(), db.IncrementWalletWebhookCountParams{
					ID:         existingID,
					MaxWallets: testMaxPerHook,
				}).Return(existing(2), nil)
				f.store.EXPECT().SetWalletWebhookID(gomock.Any(), gomock.Any()).Return(attachedWallet(walletID, existingID), nil)
			},
			wantCount: 2,
			wantID:    existingID,
		},
		{
			name: "creates a webhook when the most recent one is full",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(existing(testMaxPerHook), nil)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				expectCreatePath(f)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().CreateWalletWebhook(gomock.Any(), gomock.Any()).
					Return(db.WalletWebhook{ID: newID, ProviderWebhookID: testProviderID, WalletCount: 1}, nil)
				f.store.EXPECT().SetWalletWebhookID(gomock.Any(), gomock.Any()).Return(attachedWallet(walletID, newID), nil)
			},
			wantCount: 1,
			wantID:    newID,
		},
		{
			name: "create path database failure deletes secret and provider webhook",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(db.WalletWebhook{}, pgx.ErrNoRows)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				expectCreatePath(f)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().CreateWalletWebhook(gomock.Any(), gomock.Any()).Return(db.WalletWebhook{}, errors.New("connection reset"))
				f.secrets.EXPECT().DeleteSecret(gomock.Any(), constants.SigningKeySecretPrefix+testProviderID).Return(nil)
				f.provider.EXPECT().DeleteWebhook(gomock.Any(), testProviderID).Return(nil)
			},
			wantErr:     true,
			errContains: "connection reset",
		},
		{
			name: "secret store failure deletes provider webhook",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(db.WalletWebhook{}, pgx.ErrNoRows)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				f.provider.EXPECT().CreateWebhook(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&alchemy.Webhook{ID: testProviderID, SigningKey: testSigningKey}, nil)
				f.secrets.EXPECT().PutSecret(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("throttled"))
				f.provider.EXPECT().DeleteWebhook(gomock.Any(), testProviderID).Return(nil)
			},
			wantErr:     true,
			errContains: "failed to store webhook signing key",
		},
		{
			name: "provider create failure touches nothing else",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(db.WalletWebhook{}, pgx.ErrNoRows)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				f.provider.EXPECT().CreateWebhook(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &alchemy.ProviderError{Op: "create webhook", StatusCode: 503, Message: "unavailable"})
			},
			wantErr:     true,
			errContains: "failed to create provider webhook",
		},
		{
			name: "reuse path increment refused removes the address again",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(existing(testMaxPerHook-1), nil)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, []string{testAddress}, nil).Return(nil)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().IncrementWalletWebhookCount(gomock.Any(), gomock.Any()).Return(db.WalletWebhook{}, pgx.ErrNoRows)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, nil, []string{testAddress}).Return(nil)
			},
			wantErr: true,
			errIs:   services.ErrWebhookFull,
		},
		{
			name: "reuse path provider failure leaves database untouched",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(existing(1), nil)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, []string{testAddress}, nil).
					Return(&alchemy.ProviderError{Op: "update webhook addresses", StatusCode: 500})
			},
			wantErr:     true,
			errContains: "failed to add address to provider webhook",
		},
		{
			name: "already attached wallet is rejected",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(existing(1), nil)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, existingID), nil)
			},
			wantErr: true,
			errIs:   services.ErrAlreadyAttached,
		},
		{
			name: "missing wallet",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(network)).Return(existing(1), nil).AnyTimes()
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(db.Wallet{}, pgx.ErrNoRows)
			},
			wantErr: true,
			errIs:   services.ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture(t)
			tt.setupMocks(f)

			webhook, err := f.service.Attach(ctx, walletID, network)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, webhook)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			require.NotNil(t, webhook)
			assert.Equal(t, tt.wantID, webhook.ID)
			assert.Equal(t, tt.wantCount, webhook.WalletCount)
		})
	}
}

func TestWalletWebhookService_Attach_StorageErrorType(t *testing.T) {
	walletID := uuid.New()
	f := newWebhookFixture(t)

	f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), gomock.Any()).Return(db.WalletWebhook{}, pgx.ErrNoRows)
	f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
	f.provider.EXPECT().CreateWebhook(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&alchemy.Webhook{ID: testProviderID, SigningKey: testSigningKey}, nil)
	f.secrets.EXPECT().PutSecret(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.store.EXPECT().ExecTx(gomock.Any(), gomock.Any()).Return(errors.New("serialization failure"))
	f.secrets.EXPECT().DeleteSecret(gomock.Any(), gomock.Any()).Return(nil)
	// A webhook already gone at the provider is not a compensation failure.
	f.provider.EXPECT().DeleteWebhook(gomock.Any(), testProviderID).
		Return(&alchemy.ProviderError{Op: "delete webhook", StatusCode: 404})

	_, err := f.service.Attach(context.Background(), walletID, constants.NetworkBaseSepolia)

	var storageErr *services.StorageTransactionError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "create webhook", storageErr.Op)
}

func TestWalletWebhookService_Attach_NetworkMismatch(t *testing.T) {
	walletID := uuid.New()
	f := newWebhookFixture(t)

	f.store.EXPECT().GetMostRecentWalletWebhook(gomock.Any(), string(constants.NetworkBaseMainnet)).Return(db.WalletWebhook{}, pgx.ErrNoRows)
	f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)

	_, err := f.service.Attach(context.Background(), walletID, constants.NetworkBaseMainnet)

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "network", validationErr.Field)
}

func TestWalletWebhookService_Detach(t *testing.T) {
	ctx := context.Background()
	walletID := uuid.New()
	webhookID := uuid.New()
	webhook := db.WalletWebhook{
		ID:                webhookID,
		ProviderWebhookID: existingHookRef,
		WalletCount:       2,
	}
	clearParams := db.ClearWalletWebhookIDParams{
		ID:        walletID,
		WebhookID: pgtype.UUID{Bytes: webhookID, Valid: true},
	}

	tests := []struct {
		name        string
		setupMocks  func(f *webhookFixture)
		wantErr     bool
		errIs       error
		errContains string
	}{
		{
			name: "removes address and decrements count",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, webhookID), nil)
				f.store.EXPECT().GetWalletWebhook(gomock.Any(), webhookID).Return(webhook, nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, nil, []string{testAddress}).Return(nil)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().DecrementWalletWebhookCount(gomock.Any(), webhookID).Return(db.WalletWebhook{ID: webhookID, WalletCount: 1}, nil)
				f.store.EXPECT().ClearWalletWebhookID(gomock.Any(), clearParams).Return(unattachedWallet(walletID), nil)
			},
		},
		{
			name: "database failure re-adds the address",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, webhookID), nil)
				f.store.EXPECT().GetWalletWebhook(gomock.Any(), webhookID).Return(webhook, nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, nil, []string{testAddress}).Return(nil)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().DecrementWalletWebhookCount(gomock.Any(), webhookID).Return(db.WalletWebhook{}, errors.New("deadlock detected"))
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, []string{testAddress}, nil).Return(nil)
			},
			wantErr:     true,
			errContains: "deadlock detected",
		},
		{
			name: "wallet deleted concurrently still commits the decrement",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, webhookID), nil)
				f.store.EXPECT().GetWalletWebhook(gomock.Any(), webhookID).Return(webhook, nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, nil, []string{testAddress}).Return(nil)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().DecrementWalletWebhookCount(gomock.Any(), webhookID).Return(db.WalletWebhook{ID: webhookID, WalletCount: 1}, nil)
				f.store.EXPECT().ClearWalletWebhookID(gomock.Any(), clearParams).Return(db.Wallet{}, pgx.ErrNoRows)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(db.Wallet{}, pgx.ErrNoRows)
			},
		},
		{
			name: "wallet reattached concurrently rolls back",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, webhookID), nil)
				f.store.EXPECT().GetWalletWebhook(gomock.Any(), webhookID).Return(webhook, nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, nil, []string{testAddress}).Return(nil)
				mocks.ExpectTx(f.store)
				f.store.EXPECT().DecrementWalletWebhookCount(gomock.Any(), webhookID).Return(db.WalletWebhook{ID: webhookID, WalletCount: 1}, nil)
				f.store.EXPECT().ClearWalletWebhookID(gomock.Any(), clearParams).Return(db.Wallet{}, pgx.ErrNoRows)
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, uuid.New()), nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, []string{testAddress}, nil).Return(nil)
			},
			wantErr:     true,
			errContains: "modified during detach",
		},
		{
			name: "provider failure leaves the wallet attached",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, webhookID), nil)
				f.store.EXPECT().GetWalletWebhook(gomock.Any(), webhookID).Return(webhook, nil)
				f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, nil, []string{testAddress}).
					Return(&alchemy.ProviderError{Op: "update webhook addresses", StatusCode: 429})
			},
			wantErr:     true,
			errContains: "failed to remove address from provider webhook",
		},
		{
			name: "wallet without webhook",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(unattachedWallet(walletID), nil)
			},
			wantErr: true,
			errIs:   services.ErrNotAttached,
		},
		{
			name: "missing wallet",
			setupMocks: func(f *webhookFixture) {
				f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(db.Wallet{}, pgx.ErrNoRows)
			},
			wantErr: true,
			errIs:   services.ErrWalletNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWebhookFixture(t)
			tt.setupMocks(f)

			err := f.service.Detach(ctx, walletID)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestWalletWebhookService_DetachForRollback(t *testing.T) {
	walletID := uuid.New()
	cause := errors.New("reload failed")

	t.Run("returns cause after detaching", func(t *testing.T) {
		f := newWebhookFixture(t)
		webhookID := uuid.New()
		f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(attachedWallet(walletID, webhookID), nil)
		f.store.EXPECT().GetWalletWebhook(gomock.Any(), webhookID).Return(db.WalletWebhook{ID: webhookID, ProviderWebhookID: existingHookRef}, nil)
		f.provider.EXPECT().UpdateWebhookAddresses(gomock.Any(), existingHookRef, nil, []string{testAddress}).Return(nil)
		mocks.ExpectTx(f.store)
		f.store.EXPECT().DecrementWalletWebhookCount(gomock.Any(), webhookID).Return(db.WalletWebhook{ID: webhookID}, nil)
		f.store.EXPECT().ClearWalletWebhookID(gomock.Any(), gomock.Any()).Return(unattachedWallet(walletID), nil)

		err := f.service.DetachForRollback(context.Background(), walletID, cause)
		assert.Equal(t, cause, err)
	})

	t.Run("joins detach failure with cause", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).Return(db.Wallet{}, pgx.ErrNoRows)

		err := f.service.DetachForRollback(context.Background(), walletID, cause)
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, services.ErrWalletNotFound)
	})

	t.Run("ignores caller cancellation", func(t *testing.T) {
		f := newWebhookFixture(t)
		f.store.EXPECT().GetWalletByID(gomock.Any(), walletID).
			DoAndReturn(func(ctx context.Context, id uuid.UUID) (db.Wallet, error) {
				assert.NoError(t, ctx.Err())
				return db.Wallet{}, pgx.ErrNoRows
			})

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()
		err := f.service.DetachForRollback(cancelled, walletID, cause)
		assert.ErrorIs(t, err, cause)
	})
}

func TestSigningKeySecretName(t *testing.T) {
	assert.Equal(t, "webhook_signing_key_wh_123", services.SigningKeySecretName("wh_123"))
}
