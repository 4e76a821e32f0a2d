package http

import (
	"catalog/pkg/httperror"
	"context"

	"github.com/gofiber/fiber/v2"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// BrokerChecker is implemented by event publishers that hold a live broker
// connection.
type BrokerChecker interface {
	IsHealthy() bool
}

type HealthHandler struct {
	pinger Pinger
	broker BrokerChecker
}

// NewHealthHandler checks the database, and the broker when one is given.
func NewHealthHandler(pinger Pinger, broker BrokerChecker) *HealthHandler {
	return &HealthHandler{
		pinger: pinger,
		broker: broker,
	}
}

type HealthRequest struct{}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Broker   string `json:"broker,omitempty"`
}

// Handle fails only when the database is unreachable. A lost broker
// connection reports the service as degraded.
func (h HealthHandler) Handle(ctx context.Context, _ *HealthRequest) (*HealthResponse, error) {
	if err := h.pinger.Ping(ctx); err != nil {
		return nil, httperror.New(fiber.StatusServiceUnavailable, "health.database_unavailable", "Database unavailable", err)
	}

	res := &HealthResponse{
		Status:   "ok",
		Database: "up",
	}

	if h.broker != nil {
		res.Broker = "up"
		if !h.broker.IsHealthy() {
			res.Status = "degraded"
			res.Broker = "down"
		}
	}

	return res, nil
}
