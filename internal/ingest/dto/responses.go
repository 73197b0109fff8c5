package dto

// IngestedData identifica o evento aceito.
type IngestedData struct {
	EventID   string `json:"event_id"`
	Timestamp string `json:"timestamp"`
}

// IngestSuccessResponse é a resposta 200 de POST /ingest.
type IngestSuccessResponse struct {
	Status  string       `json:"status"` // "success"
	Message string       `json:"message"`
	Data    IngestedData `json:"data"`
}

// IngestErrorResponse é a resposta de erro de POST /ingest.
// A API original responde 404 tanto para payload inválido quanto para
// falha de persistência; o contrato é mantido.
type IngestErrorResponse struct {
	Status  string   `json:"status"` // "error"
	Message string   `json:"message"`
	Error   []string `json:"error,omitempty"`
}
