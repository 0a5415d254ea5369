package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/eks-decision-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(traceID string, logs *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/decision/x", nil)
	ctx := WithTraceID(req.Context(), traceID)
	l := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx = logger.WithLogger(ctx, l)
	return req.WithContext(ctx)
}

func TestRespondWithJSON(t *testing.T) {
	var logs bytes.Buffer
	rec := httptest.NewRecorder()

	RespondWithJSON(rec, newRequest("t-1", &logs), http.StatusOK, map[string]int{"total": 4})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total":4}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		err       error
		wantLevel string
	}{
		{name: "not found", status: http.StatusNotFound, err: errors.New("missing"), wantLevel: "WARN"},
		{name: "server error", status: http.StatusInternalServerError, err: errors.New("open /etc/secret/file failed"), wantLevel: "ERROR"},
		{name: "bad request", status: http.StatusBadRequest, wantLevel: "DEBUG"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			rec := httptest.NewRecorder()

			RespondWithErrorAndLog(rec, newRequest("trace-abc", &logs), tc.status, "safe message", tc.err)

			assert.Equal(t, tc.status, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "safe message", body["detail"])
			assert.Equal(t, "trace-abc", body["trace_id"])
			assert.NotContains(t, body, "Code")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, "trace-abc", entry["trace_id"])
			assert.Equal(t, float64(tc.status), entry["status_code"])
			if tc.err != nil {
				assert.NotContains(t, entry["error"], "/etc/secret")
			}
		})
	}
}

func TestRespondWithErrorWithoutTraceID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithError(rec, req, http.StatusNotFound, "gone")

	assert.JSONEq(t, `{"detail":"gone"}`, rec.Body.String())
}

func TestTraceIDContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", GetTraceID(req.Context()))

	ctx := SetTraceID(req.Context())
	first := GetTraceID(ctx)
	assert.Len(t, first, 36, "trace IDs are UUID strings")

	second := GetTraceID(SetTraceID(req.Context()))
	assert.NotEqual(t, first, second)
}
