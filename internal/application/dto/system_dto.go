package dto

import "time"

// RootResponse descripción del servicio en GET /.
type RootResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse estado del servidor.
type HealthResponse struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}
