package utils

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until InitLogger runs.
var Log = zap.NewNop()

// InitLogger builds the logger for the given environment
func InitLogger(env string) error {
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	Log = logger
	return nil
}

// SyncLogger flushes buffered log entries
func SyncLogger() {
	_ = Log.Sync()
}

// LogInfo logs an informational message
func LogInfo(format string, v ...interface{}) {
	Log.Sugar().Infof(format, v...)
}

// LogWarn logs a warning
func LogWarn(format string, v ...interface{}) {
	Log.Sugar().Warnf(format, v...)
}

// LogError logs an error message
func LogError(format string, v ...interface{}) {
	Log.Sugar().Errorf(format, v...)
}

// LogDebug logs a debug message
func LogDebug(format string, v ...interface{}) {
	Log.Sugar().Debugf(format, v...)
}

// LogRequest logs HTTP request details
func LogRequest(requestID, method, path, ip string, status int, duration time.Duration) {
	Log.Info("Request completed",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("ip", ip),
		zap.Duration("latency", duration),
	)
}

// LogErrorWithStack logs an error with stack trace
func LogErrorWithStack(err error, stack []byte) {
	Log.Error("Recovered from panic", zap.Error(err), zap.ByteString("stack", stack))
}
