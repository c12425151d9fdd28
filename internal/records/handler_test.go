package records

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func doParse(t *testing.T, h *ParseHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestParseHandlerSuccess(t *testing.T) {
	h := &ParseHandler{
		Parser: NewParser(&fakeClient{reply: validPayload}),
		Logger: discardLogger(),
	}
	w := doParse(t, h, `{"text":"the production database US-East-1 timed out at 6:30 PM"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data == nil || resp.Data.Severity != SeverityHigh {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestParseHandlerRejectsShortText(t *testing.T) {
	h := &ParseHandler{
		Parser: NewParser(&fakeClient{reply: validPayload}),
		Logger: discardLogger(),
	}
	w := doParse(t, h, `{"text":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestParseHandlerUnparseableReplyIsStructuredFailure(t *testing.T) {
	// Model garbage produces success:false with an error message, never a 5xx.
	h := &ParseHandler{
		Parser: NewParser(&fakeClient{reply: "definitely not json"}),
		Logger: discardLogger(),
	}
	w := doParse(t, h, `{"text":"a sufficiently long incident report"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp ParseResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success || resp.Error == "" || resp.Data != nil {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestParseHandlerIngestToken(t *testing.T) {
	h := &ParseHandler{
		Parser:      NewParser(&fakeClient{reply: validPayload}),
		Logger:      discardLogger(),
		IngestToken: "sekrit",
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(`{"text":"a sufficiently long incident report"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without key = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v1/parse", strings.NewReader(`{"text":"a sufficiently long incident report"}`))
	req.Header.Set("X-Api-Key", "sekrit")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status with key = %d, want 200", w.Code)
	}
}

func TestParseHandlerMethodNotAllowed(t *testing.T) {
	h := &ParseHandler{Parser: NewParser(&fakeClient{}), Logger: discardLogger()}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/parse", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}
