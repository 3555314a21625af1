package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cyphera/cyphera-wallets/internal/logger"
)

func TestOptionsForStage(t *testing.T) {
	tests := []struct {
		name      string
		stage     string
		logLevel  string
		wantJSON  bool
		wantLevel zapcore.Level
		wantErr   bool
	}{
		{name: "local console", stage: "local", wantLevel: zapcore.InfoLevel},
		{name: "test console", stage: "test", wantLevel: zapcore.InfoLevel},
		{name: "dev json", stage: "dev", wantJSON: true, wantLevel: zapcore.InfoLevel},
		{name: "prod json with debug", stage: "prod", logLevel: "debug", wantJSON: true, wantLevel: zapcore.DebugLevel},
		{name: "warn level", stage: "local", logLevel: "WARN", wantLevel: zapcore.WarnLevel},
		{name: "unknown level", stage: "prod", logLevel: "loud", wantJSON: true, wantLevel: zapcore.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.logLevel)

			opts, err := logger.OptionsForStage(tt.stage)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantJSON, opts.JSON)
			assert.Equal(t, tt.wantLevel, opts.Level)
			assert.Equal(t, tt.stage, opts.Stage)
		})
	}
}

func TestNew_JSONCarriesServiceAndStage(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{
		Stage:  "prod",
		Level:  zapcore.InfoLevel,
		JSON:   true,
		Output: zapcore.AddSync(&buf),
	})

	walletID := uuid.New()
	log.Debug("dropped")
	log.Info("Wallet created", logger.WalletID(walletID), logger.Network("BASE_SEPOLIA"))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "Wallet created", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "cyphera-wallets", entry["service"])
	assert.Equal(t, "prod", entry["stage"])
	assert.Equal(t, walletID.String(), entry["wallet_id"])
	assert.Equal(t, "BASE_SEPOLIA", entry["network"])
	assert.Contains(t, entry, "timestamp")
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	assert.Same(t, logger.Log, logger.FromContext(context.Background()))
	assert.Empty(t, logger.CorrelationIDFromContext(context.Background()))

	ctx := logger.WithCorrelationID(context.Background(), "req-42")
	assert.Equal(t, "req-42", logger.CorrelationIDFromContext(ctx))

	logger.FromContext(ctx).Info("Handled", logger.ReceiptID(uuid.Nil), logger.TxHash("0xabc"))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-42", fields["correlation_id"])
	assert.Equal(t, uuid.Nil.String(), fields["receipt_id"])
	assert.Equal(t, "0xabc", fields["tx_hash"])
}
