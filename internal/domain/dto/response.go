package dto

import (
	"net/http"
	"time"

	"github.com/swifthaul/rate-service/internal/domain/model"
)

// Quote estimation statuses.
const (
	// StatusOK indicates a priced quote is present.
	StatusOK = "ok"
	// StatusNeedsClarification indicates required fields are missing.
	StatusNeedsClarification = "needs_clarification"
	// StatusError indicates the request could not be priced.
	StatusError = "error"
)

// QuoteResponse is the tagged result of a rate estimation.
// Exactly one of Quote, MissingFields or Message is populated,
// matching Status.
//
// @Description Rate estimation result: a quote, a clarification list, or an error
type QuoteResponse struct {
	// Status is one of ok, needs_clarification, error
	Status string `json:"status" example:"ok"`
	// Quote is the priced result (status ok)
	Quote *model.Quote `json:"quote,omitempty"`
	// MissingFields lists required fields still absent, in a stable order (status needs_clarification)
	MissingFields []string `json:"missing_fields,omitempty" example:"containerType"`
	// Message is a safe user-facing failure description (status error)
	Message string `json:"message,omitempty" example:"origin and destination cannot be the same"`
} // @name QuoteResponse

// OKResponse builds a QuoteResponse carrying a priced quote.
func OKResponse(q model.Quote) QuoteResponse {
	return QuoteResponse{Status: StatusOK, Quote: &q}
}

// ClarificationResponse builds a QuoteResponse carrying missing fields.
func ClarificationResponse(missing []string) QuoteResponse {
	return QuoteResponse{Status: StatusNeedsClarification, MissingFields: missing}
}

// ErrorQuoteResponse builds a QuoteResponse carrying a failure message.
func ErrorQuoteResponse(message string) QuoteResponse {
	return QuoteResponse{Status: StatusError, Message: message}
}

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeUnprocessable indicates a request that fails domain validation.
	ErrCodeUnprocessable = "unprocessable"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (QuoteResponse for the quote endpoint)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"weight_kg: must not be negative"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusUnprocessableEntity:
		return ErrCodeUnprocessable
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}
