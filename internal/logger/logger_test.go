package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/scoreline/internal/models"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerForEnvironment(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLoggerForEnvironment("debug", "production", buf)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)

	log.Info("hello")
	entry := parseLogOutput(buf)
	require.NotNil(t, entry)
	assert.Equal(t, "hello", entry["msg"])

	dev := NewLoggerForEnvironment("nonsense", "development", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, dev.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)
}

func TestProjectionLoggerProjection(t *testing.T) {
	log, buf := setupTestLogger()
	projectionLogger := NewProjectionLogger(log)

	projectionLogger.LogProjection(&models.Projection{
		EventID: "evt_123",
		Path:    models.PathMoneylineTotals,
		Rates:   models.Rates{Home: 1.4, Away: 1.1},
		Mu:      2.5,
		Markets: make([]models.DerivedMarket, 7),
	}, 1.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "projection", logEntry["component"])
	assert.Equal(t, "evt_123", logEntry["event_id"])
	assert.Equal(t, "moneyline_totals", logEntry["path"])
	assert.Equal(t, float64(7), logEntry["markets"])
	assert.Equal(t, 2.5, logEntry["mu"])
}

func TestProjectionLoggerRootFallback(t *testing.T) {
	log, buf := setupTestLogger()
	projectionLogger := NewProjectionLogger(log)

	projectionLogger.LogRootFallback("evt_123", models.NewRootNotBracketedError("rate_allocator", 1e-9, 0.5), 0.25)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "warning", logEntry["level"])
	assert.Equal(t, "rate_allocator", logEntry["solver"])
	assert.Equal(t, 0.25, logEntry["fallback_value"])
}

func TestProjectionLoggerSkippedMarket(t *testing.T) {
	log, buf := setupTestLogger()
	projectionLogger := NewProjectionLogger(log)

	projectionLogger.LogSkippedMarket("evt_123", "moneyline", errors.New("invalid prices"))

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "debug", logEntry["level"])
	assert.Equal(t, "moneyline", logEntry["market"])
	assert.Equal(t, "invalid prices", logEntry["error"])
}

func TestProjectionLoggerInsufficientData(t *testing.T) {
	log, buf := setupTestLogger()
	projectionLogger := NewProjectionLogger(log)

	projectionLogger.LogInsufficientData("evt_123", "no moneyline or team goals")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "no moneyline or team goals", logEntry["reason"])
}

func TestProjectionLoggerForContext(t *testing.T) {
	log, buf := setupTestLogger()
	projectionLogger := NewProjectionLogger(log)

	assert.Same(t, projectionLogger, projectionLogger.ForContext(context.Background()))

	ctx := WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestID(ctx))

	projectionLogger.ForContext(ctx).LogInsufficientData("evt_1", "empty")
	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "req-42", logEntry["request_id"])
	assert.Equal(t, "projection", logEntry["component"])
}
