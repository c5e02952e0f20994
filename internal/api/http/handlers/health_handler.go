package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Pinger reports reachability of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to the unauthenticated healthcheck surface.
type HealthHandler struct {
	version  string
	database Pinger
	sessions Pinger
	logger   *zap.Logger
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(version string, database, sessions Pinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{version: version, database: database, sessions: sessions, logger: logger}
}

// Check reports structured status for the application and its stores.
// Failure messages stay generic; the real error goes to the log only.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	checks := fiber.Map{
		"application": fiber.Map{"status": "OK", "version": h.version},
	}
	ok := true

	if err := h.database.Ping(ctx); err != nil {
		h.logger.Error("healthcheck: database unreachable", zap.Error(err))
		checks["database"] = fiber.Map{"status": "ERROR", "message": "Database connection failed."}
		ok = false
	} else {
		checks["database"] = fiber.Map{"status": "OK", "message": "Database connection successful."}
	}

	if err := h.sessions.Ping(ctx); err != nil {
		h.logger.Error("healthcheck: session store unreachable", zap.Error(err))
		checks["session_store"] = fiber.Map{"status": "ERROR", "message": "Session store connection failed."}
		ok = false
	} else {
		checks["session_store"] = fiber.Map{"status": "OK", "message": "Session store connection successful."}
	}

	status := "OK"
	httpStatus := fiber.StatusOK
	if !ok {
		status = "ERROR"
		httpStatus = fiber.StatusServiceUnavailable
	}

	return c.Status(httpStatus).JSON(fiber.Map{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}
