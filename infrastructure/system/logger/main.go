package logger

import (
	"os"

	domainLogger "github.com/y-okubo/llmstxt/domain/system/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a console logger writing to stderr. Unknown levels fall back
// to info.
func New(level string) domainLogger.ILogger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		parsed,
	)

	return &ZapLogger{
		sugar: zap.New(core).Sugar(),
	}
}

// NewNop creates a logger that discards everything. Intended for tests.
func NewNop() domainLogger.ILogger {
	return &ZapLogger{
		sugar: zap.NewNop().Sugar(),
	}
}

func (l *ZapLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *ZapLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *ZapLogger) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *ZapLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
