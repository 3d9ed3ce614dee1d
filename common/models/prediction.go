package models

// PredictionRequest represents a request to classify a piece of news text
type PredictionRequest struct {
	Text string `json:"text"`
}

// PredictionResult represents the verdict produced by the prediction service.
// The gateway never decodes into this type; it relays the upstream payload as is.
type PredictionResult struct {
	Prediction  string     `json:"prediction"`
	Probability [2]float64 `json:"probability"`
	Reasons     []string   `json:"reasons"`
	SimilarReal string     `json:"similar_real,omitempty"`
}

// ErrorResponse is the body of every failed gateway response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// UpstreamErrorBody is the error shape returned by the prediction service
type UpstreamErrorBody struct {
	Error string `json:"error"`
}

// HealthResponse represents the gateway health probe payload
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// Error codes reported in ErrorResponse.Code
const (
	CodeMissingTextField   = "MISSING_TEXT_FIELD"
	CodeInvalidTextType    = "INVALID_TEXT_TYPE"
	CodeEmptyText          = "EMPTY_TEXT"
	CodeTextTooLong        = "TEXT_TOO_LONG"
	CodeInvalidJSON        = "INVALID_JSON"
	CodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeConnectionError    = "CONNECTION_ERROR"
	CodeRequestTimeout     = "REQUEST_TIMEOUT"
	CodeMLServiceError     = "ML_SERVICE_ERROR"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeUnexpectedError    = "UNEXPECTED_ERROR"
	CodeNotFound           = "NOT_FOUND"
)
