package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	r := NewRequest("/v1/albums", url.Values{"genre": {"Rock"}})
	assert.Equal(t, http.MethodGet, r.Method)
	assert.Equal(t, "Rock", r.URL.Query().Get("genre"))

	r = NewRequest("/", nil)
	assert.Empty(t, r.URL.RawQuery)
}

func TestRecordHTTPResponse(t *testing.T) {
	w := httptest.NewRecorder()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.WriteString(`{"success":false,"error":{"code":"RATE_LIMIT_EXCEEDED"},"meta":{"request_id":"abc"}}`)

	rec := RecordHTTPResponse(w)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", rec.ErrorCode())
	assert.Equal(t, "abc", rec.Meta()["request_id"])
}

func TestRecordHTTPResponse_NonJSON(t *testing.T) {
	w := httptest.NewRecorder()
	_, _ = w.WriteString("ok")

	rec := RecordHTTPResponse(w)

	assert.Nil(t, rec.Body)
	assert.Equal(t, "ok", string(rec.Raw))
	assert.Empty(t, rec.ErrorCode())
}

func TestWriteFile(t *testing.T) {
	path := WriteFile(t, "bands_full.json", `{"bands":[]}`)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"bands":[]}`, string(b))
}
