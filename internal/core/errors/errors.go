package errors

const (
	HttpInternalError     = "internal_error"
	HttpInvalidQueryError = "invalid_query"
	HttpUnauthorizedError = "unauthorized"
	HttpUpstreamAIError   = "upstream_ai_error"
)

// User-facing messages are part of the API contract and stay in Portuguese.
const (
	MsgUnauthorized       = "Unauthorized"
	MsgInvalidQuery       = "Parâmetros de consulta inválidos"
	MsgPromptRequired     = "Informe um prompt válido antes de gerar o resumo"
	MsgAIRequestFailed    = "Erro ao gerar resumo com IA"
	MsgInternalError      = "Erro interno do servidor"
	MsgAIResponseFallback = "Erro ao processar resposta da IA"
)

// ErrorResponse is the JSON error body returned by all handlers.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
