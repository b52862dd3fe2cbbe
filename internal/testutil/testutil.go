package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
)

// NewRequest creates a GET request for path with the given query parameters.
func NewRequest(path string, params url.Values) *http.Request {
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	return httptest.NewRequest(http.MethodGet, path, nil)
}

// RecordResponse is a decoded JSON response envelope.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
	Raw    []byte
}

// RecordHTTPResponse reads the recorded response and decodes its body when it
// is JSON.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	raw, _ := io.ReadAll(result.Body)

	var body map[string]any
	if len(raw) > 0 {
		_ = json.NewDecoder(bytes.NewReader(raw)).Decode(&body)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   body,
		Raw:    raw,
	}
}

// ErrorCode returns error.code from a failure envelope, or "".
func (r RecordResponse) ErrorCode() string {
	e, ok := r.Body["error"].(map[string]any)
	if !ok {
		return ""
	}
	code, _ := e["code"].(string)
	return code
}

// Meta returns the meta object of the envelope.
func (r RecordResponse) Meta() map[string]any {
	m, _ := r.Body["meta"].(map[string]any)
	return m
}

// WriteFile writes contents to name inside a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
