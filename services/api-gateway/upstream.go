package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"

	"fndetector/common/models"
)

// maxUpstreamBody bounds how much of an upstream reply is read
const maxUpstreamBody = 10 << 20

// errInvalidPayload is returned when a successful upstream reply is not JSON
var errInvalidPayload = errors.New("upstream returned a non-JSON payload")

// predictor forwards validated text to the prediction service
type predictor interface {
	Predict(ctx context.Context, text string) (json.RawMessage, error)
}

// UpstreamError is a non-2xx reply from the prediction service
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Message)
}

// predictionClient calls POST <baseURL>/predict
type predictionClient struct {
	client  *http.Client
	baseURL string
}

func newPredictionClient(baseURL string) *predictionClient {
	return &predictionClient{
		// the deadline comes from the caller's context
		client:  &http.Client{},
		baseURL: baseURL,
	}
}

// Predict makes exactly one attempt. The payload of a 2xx reply is returned untouched.
func (p *predictionClient) Predict(ctx context.Context, text string) (json.RawMessage, error) {
	payload, err := json.Marshal(models.PredictionRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxUpstreamBody))
	if err != nil {
		return nil, fmt.Errorf("reading upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upErr := &UpstreamError{StatusCode: resp.StatusCode}
		var eb models.UpstreamErrorBody
		if json.Unmarshal(body, &eb) == nil {
			upErr.Message = eb.Error
		}
		return nil, upErr
	}

	if !json.Valid(body) {
		return nil, errInvalidPayload
	}
	return json.RawMessage(body), nil
}

// classifyUpstreamError maps an outbound failure onto the client-facing taxonomy.
// Resolver failures, timeouts included, count as connection errors; any other
// timeout, dial or read, is a request timeout.
func classifyUpstreamError(err error) *apiError {
	var upErr *UpstreamError
	if errors.As(err, &upErr) {
		msg := upErr.Message
		if msg == "" {
			msg = "ML service error"
		}
		return &apiError{Status: upErr.StatusCode, Code: models.CodeMLServiceError, Message: msg}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &apiError{
			Status:  http.StatusServiceUnavailable,
			Code:    models.CodeConnectionError,
			Message: "Cannot connect to ML service",
		}
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &apiError{
			Status:  http.StatusGatewayTimeout,
			Code:    models.CodeRequestTimeout,
			Message: "Request timed out. Please try again.",
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return &apiError{
			Status:  http.StatusServiceUnavailable,
			Code:    models.CodeServiceUnavailable,
			Message: "ML service is unavailable. Please try again later.",
		}
	}

	return &apiError{
		Status:  http.StatusInternalServerError,
		Code:    models.CodeInternalError,
		Message: "Internal server error",
	}
}
