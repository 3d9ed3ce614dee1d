package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf16"

	"fndetector/common/models"
)

// apiError is a failure already mapped to the client-facing taxonomy
type apiError struct {
	Status  int
	Code    string
	Message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func (e *apiError) response() models.ErrorResponse {
	return models.ErrorResponse{Error: e.Message, Code: e.Code}
}

func badRequest(code, msg string) *apiError {
	return &apiError{Status: http.StatusBadRequest, Code: code, Message: msg}
}

// validatePredictRequest checks a raw JSON body and returns the text to forward.
// Checks run in order and the first failure wins.
func validatePredictRequest(body []byte, maxLen int) (string, *apiError) {
	var fields map[string]any

	if len(bytes.TrimSpace(body)) > 0 {
		// numbers stay as json.Number so out-of-range values in any field still decode
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil || dec.Decode(&struct{}{}) != io.EOF {
			return "", badRequest(models.CodeInvalidJSON, "Request body must be valid JSON")
		}
		// non-object bodies carry no fields
		fields, _ = v.(map[string]any)
	}

	raw, ok := fields["text"]
	if !ok || raw == nil {
		return "", badRequest(models.CodeMissingTextField, "Text field is required")
	}

	text, ok := raw.(string)
	if !ok {
		return "", badRequest(models.CodeInvalidTextType, "Text must be a string")
	}

	if strings.TrimSpace(text) == "" {
		return "", badRequest(models.CodeEmptyText, "Text cannot be empty")
	}

	if textLength(text) > maxLen {
		return "", badRequest(models.CodeTextTooLong,
			fmt.Sprintf("Text is too long. Maximum length is %d characters", maxLen))
	}

	return text, nil
}

// textLength counts UTF-16 code units, the unit browsers use for string length
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
