/*
Package logger is a thin wrapper around zap. Logs are JSON formatted, debug
level is only enabled in development mode to keep the provider quiet when it
is embedded in another program.
*/
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	*zap.Logger
}

// New builds a JSON logger. Nil output paths default to stdout and stderr.
func New(development bool, outputPaths []string, errorOutputPaths []string) (*Logger, error) {
	level := zapcore.DebugLevel
	if !development {
		level = zapcore.InfoLevel
	}

	if len(outputPaths) == 0 {
		outputPaths = []string{"stdout"}
	}
	if len(errorOutputPaths) == 0 {
		errorOutputPaths = []string{"stderr"}
	}

	encoderCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	zapConfig := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       development,
		DisableCaller:     false,
		DisableStacktrace: !development,
		Sampling:          nil,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       outputPaths,
		ErrorOutputPaths:  errorOutputPaths,
	}

	logger, err := zapConfig.Build(
		zap.AddCallerSkip(1),
	)
	if err != nil {
		return nil, err
	}

	return &Logger{logger.Named("wsrpc")}, nil
}

// NewNop returns a logger discarding everything, handy for tests.
func NewNop() *Logger {
	return &Logger{zap.NewNop()}
}

func (l *Logger) With(fields ...zapcore.Field) *Logger {
	return &Logger{l.Logger.With(fields...)}
}

func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{l.Logger.With(zap.Any(key, value))}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{l.Logger.With(zap.Error(err))}
}

func (l *Logger) WithContext(ctx context.Context) *Logger {
	return l
}

func (l *Logger) Sync() {
	_ = l.Logger.Sync()
}
