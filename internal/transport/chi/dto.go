package chi

import "github.com/kailas-cloud/msgcheck/internal/domain"

// PredictResponse is the body of a successful POST /predict.
type PredictResponse struct {
	Prediction domain.Label `json:"prediction"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}
