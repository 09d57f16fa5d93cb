//go:build unit

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail    json.RawMessage `json:"detail"`
	RequestID string          `json:"request_id"`
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	return body
}

// AssertFieldError checks that a 400 names the failing field and binding rule.
func AssertFieldError(t *testing.T, w *httptest.ResponseRecorder, field, rule string) {
	t.Helper()
	body := decodeErrorBody(t, w)
	var fields map[string]string
	assert.NoError(t, json.Unmarshal(body.Detail, &fields), "detail: %s", body.Detail)
	assert.Equal(t, rule, fields[field], "detail: %s", body.Detail)
}

// AssertErrorRequestID checks that the error body quotes the X-Request-ID header.
func AssertErrorRequestID(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	body := decodeErrorBody(t, w)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, w.Header().Get("X-Request-ID"), body.RequestID)
}
