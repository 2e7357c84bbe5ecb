package records

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

func newTestClient(baseURL string) *HTTPClient {
	return NewHTTPClient(baseURL, "test-key", 0, logging.New("error"))
}

func TestGetRecord(t *testing.T) {
	var gotPath, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":     "rec123",
			"fields": map[string]any{"Name": "Jane Doe"},
		})
	}))
	defer ts.Close()

	rec, err := newTestClient(ts.URL).Get(context.Background(), "Clients", "rec123")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if gotPath != "/tables/Clients/records/rec123" {
		t.Fatalf("unexpected path: %s", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %s", gotAuth)
	}
	if rec.ID != "rec123" || rec.StringField("Name") != "Jane Doe" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestGetRecordNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "no such record"})
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Get(context.Background(), "Clients", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "no such record") {
		t.Fatalf("expected proxy message in error, got %v", err)
	}
}

func TestListRecordsWithFilter(t *testing.T) {
	var gotFilter string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"records": []map[string]any{
				{"id": "rec1", "fields": map[string]any{"Name": "A"}},
				{"id": "rec2", "fields": map[string]any{"Name": "B"}},
			},
		})
	}))
	defer ts.Close()

	recs, err := newTestClient(ts.URL).List(context.Background(), "Clients", `{Status}="New"`)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if gotFilter != `{Status}="New"` {
		t.Fatalf("unexpected filter: %s", gotFilter)
	}
	if len(recs) != 2 || recs[0].ID != "rec1" {
		t.Fatalf("unexpected records: %+v", recs)
	}
}

func TestUpdateRecordSendsFieldsEnvelope(t *testing.T) {
	var gotMethod string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	err := newTestClient(ts.URL).Update(context.Background(), "Clients", "rec123", map[string]any{
		"Discussed Treatments": "[]",
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", gotMethod)
	}
	fields, ok := gotBody["fields"].(map[string]any)
	if !ok || fields["Discussed Treatments"] != "[]" {
		t.Fatalf("unexpected body: %+v", gotBody)
	}
}

func TestErrorMessageFallsBackToTruncatedBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(strings.Repeat("x", 500)))
	}))
	defer ts.Close()

	_, err := newTestClient(ts.URL).Get(context.Background(), "Clients", "rec123")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "status 502") {
		t.Fatalf("expected status in error, got %v", err)
	}
	if len(err.Error()) > 400 {
		t.Fatalf("expected truncated error body, got %d chars", len(err.Error()))
	}
}

func TestMissingBaseURL(t *testing.T) {
	_, err := newTestClient("").Get(context.Background(), "Clients", "rec123")
	if err == nil || !strings.Contains(err.Error(), "missing base url") {
		t.Fatalf("expected missing base url error, got %v", err)
	}
}

func TestStringFieldTolerant(t *testing.T) {
	rec := &Record{Fields: map[string]any{"Name": "  Jane  ", "Count": 3}}
	if got := rec.StringField("Name"); got != "Jane" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := rec.StringField("Count"); got != "" {
		t.Fatalf("expected empty for non-string, got %q", got)
	}
	var nilRec *Record
	if got := nilRec.StringField("Name"); got != "" {
		t.Fatalf("expected empty for nil record, got %q", got)
	}
}
