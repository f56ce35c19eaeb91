package dto

// ErrorResponse cuerpo de error HTTP fuera del protocolo GraphQL (cuerpo inválido, validación).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse salida de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
