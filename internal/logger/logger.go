package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "cyphera-wallets"

// Log is the process logger. It discards everything until InitLogger runs.
var Log = zap.NewNop()

// Options controls how New builds a logger.
type Options struct {
	Stage string
	Level zapcore.Level
	// JSON selects the CloudWatch encoder; otherwise console output is used.
	JSON   bool
	Output zapcore.WriteSyncer
}

// OptionsForStage returns the options for stage. Local runs and tests get
// colored console output; every deployed stage logs JSON. LOG_LEVEL overrides
// the info default.
func OptionsForStage(stage string) (Options, error) {
	opts := Options{
		Stage:  stage,
		Level:  zapcore.InfoLevel,
		JSON:   stage != "local" && stage != "test" && stage != "",
		Output: zapcore.Lock(os.Stdout),
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
		}
		opts.Level = level
	}
	return opts, nil
}

// New builds a logger writing to opts.Output.
func New(opts Options) *zap.Logger {
	var encoder zapcore.Encoder
	if opts.JSON {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.MessageKey = "message"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	output := opts.Output
	if output == nil {
		output = zapcore.Lock(os.Stdout)
	}

	zapOpts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if opts.JSON {
		zapOpts = append(zapOpts, zap.Fields(zap.String("service", serviceName), zap.String("stage", opts.Stage)))
	}
	return zap.New(zapcore.NewCore(encoder, output, zap.NewAtomicLevelAt(opts.Level)), zapOpts...)
}

// InitLogger replaces Log with a logger configured for stage. A bad LOG_LEVEL
// is reported once and the info level is used.
func InitLogger(stage string) {
	opts, err := OptionsForStage(stage)
	Log = New(opts)
	if err != nil {
		Log.Warn("Falling back to info level", zap.Error(err))
	}
}

func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

func With(fields ...zapcore.Field) *zap.Logger {
	return Log.With(fields...)
}

// Sync flushes buffered entries. Syncing stdout fails on some platforms, so
// callers usually ignore the error.
func Sync() error {
	return Log.Sync()
}
