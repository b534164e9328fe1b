package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// Init builds the process logger. prod switches to JSON encoding; in both
// modes caller info is emitted only at ERROR and above so request logs stay
// compact.
func Init(prod bool) error {
	var base zap.Config
	if prod {
		base = zap.NewProductionConfig()
	} else {
		base = zap.NewDevelopmentConfig()
		base.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}

	enc := base.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	enc.EncodeLevel = zapcore.CapitalLevelEncoder

	encNoCaller := enc
	encNoCaller.CallerKey = ""
	encWithCaller := enc
	encWithCaller.CallerKey = "caller"

	var encA, encB zapcore.Encoder
	if prod {
		encA = zapcore.NewJSONEncoder(encNoCaller)
		encB = zapcore.NewJSONEncoder(encWithCaller)
	} else {
		encA = zapcore.NewConsoleEncoder(encNoCaller)
		encB = zapcore.NewConsoleEncoder(encWithCaller)
	}

	ws := zapcore.Lock(zapcore.AddSync(os.Stdout))
	coreNoCaller := zapcore.NewCore(encA, ws,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl < zapcore.ErrorLevel }))
	coreWithCaller := zapcore.NewCore(encB, ws,
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool { return lvl >= zapcore.ErrorLevel }))

	logger = zap.New(
		zapcore.NewTee(coreNoCaller, coreWithCaller),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return nil
}

// L never returns nil: if Init was skipped it falls back to the dev config.
func L() *zap.Logger {
	if logger == nil {
		_ = Init(false)
	}
	return logger
}

func Sync() { _ = L().Sync() }
