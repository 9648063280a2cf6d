package service

import (
	"errors"
	"net/http"
	"reurb/cmd/internal/contract"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	resp, status := NewHealthService(PingFunc(func() error { return nil })).Check()
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, contract.HealthOK, resp.Status)

	resp, status = NewHealthService(PingFunc(func() error { return errors.New("connection refused") })).Check()
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, contract.HealthError, resp.Status)
	assert.Contains(t, resp.Message, "connection refused")
}
