package contract

// SuccessResponse is the body of every mutation that has nothing else to say.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func NewSuccess(msg string) *SuccessResponse {
	return &SuccessResponse{Success: true, Message: msg}
}

type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthError HealthStatus = "error"
)

type HealthResponse struct {
	Status  HealthStatus `json:"status"`
	Message string       `json:"message"`
}
