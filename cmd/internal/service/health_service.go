package service

import (
	"net/http"
	"reurb/cmd/internal/contract"

	"github.com/labstack/gommon/log"
)

type Pinger interface {
	Ping() error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func() error

func (f PingFunc) Ping() error {
	return f()
}

type HealthService struct {
	Storage Pinger
}

func NewHealthService(storage Pinger) *HealthService {
	return &HealthService{Storage: storage}
}

// Check probes storage connectivity. The returned status is the HTTP code to
// answer with.
func (h *HealthService) Check() (*contract.HealthResponse, int) {
	if err := h.Storage.Ping(); err != nil {
		log.Errorf("health check failed: %v", err)
		return &contract.HealthResponse{
			Status:  contract.HealthError,
			Message: "Database connection failed: " + err.Error(),
		}, http.StatusInternalServerError
	}

	return &contract.HealthResponse{
		Status:  contract.HealthOK,
		Message: "Database connection successful",
	}, http.StatusOK
}
