package observability

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsCounters(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/employees", "GET", 200, 5*time.Millisecond)
	metrics.RecordRequest("/employees", "GET", 200, 7*time.Millisecond)
	metrics.RecordRequest("/employees", "POST", 303, time.Millisecond)
	metrics.RecordError("/employees/1", "GET", "NOT_FOUND")

	assert.Equal(t, int64(2), metrics.RequestCount("/employees", "GET", 200))
	assert.Equal(t, int64(1), metrics.RequestCount("/employees", "POST", 303))
	assert.Zero(t, metrics.RequestCount("/login", "GET", 200))
	assert.Equal(t, int64(1), metrics.ErrorCount("/employees/1", "GET", "NOT_FOUND"))
	assert.Zero(t, metrics.ErrorCount("/employees/1", "GET", "VALIDATION_FAILED"))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/employees", "GET", 200, time.Millisecond)
	metrics.RecordError("/employees", "GET", "NOT_FOUND")
}

func TestRequestLoggerFeedsCounters(t *testing.T) {
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	req, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, int64(1), metrics.RequestCount("/ping", "GET", 200))
}
