package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferedLogger(level zapcore.Level) (*Logger, *bytes.Buffer) {
	var logBuffer bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&logBuffer),
		level,
	)
	return &Logger{SugaredLogger: zap.New(core).Sugar()}, &logBuffer
}

func TestNew_DefaultConfiguration(t *testing.T) {
	logger := New()
	assert.NotNil(t, logger)
	assert.NotNil(t, logger.SugaredLogger)
}

func TestLogger_Info(t *testing.T) {
	logger, logBuffer := newBufferedLogger(zapcore.InfoLevel)

	logger.Info("test message with key: ", "value")

	assert.Contains(t, logBuffer.String(), "test message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, logBuffer := newBufferedLogger(zapcore.InfoLevel)

	logger.Debug("debug message")
	logger.Info("info message")

	output := logBuffer.String()
	assert.NotContains(t, output, "debug message")
	assert.Contains(t, output, "info message")
}

func TestLogger_WithFields(t *testing.T) {
	logger, logBuffer := newBufferedLogger(zapcore.InfoLevel)

	logger.With("tg_id", "111", "operation", "create_user").Info("test with fields")

	output := logBuffer.String()
	assert.Contains(t, output, "tg_id")
	assert.Contains(t, output, "111")
	assert.Contains(t, output, "create_user")
}

func TestLogger_WithRequestID(t *testing.T) {
	logger, logBuffer := newBufferedLogger(zapcore.InfoLevel)

	requestLogger := logger.WithRequestID("req-12345")
	requestLogger.Info("test with request ID")

	output := logBuffer.String()
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-12345")
}

func TestLogger_JSONFormat(t *testing.T) {
	logger, logBuffer := newBufferedLogger(zapcore.InfoLevel)

	logger.Info("json format test")

	output := logBuffer.String()
	assert.Contains(t, output, "\"level\":")
	assert.Contains(t, output, "\"msg\":")
}
