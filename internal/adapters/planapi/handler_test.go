package planapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"platecore/internal/planner"
)

func validPlanBody() string {
	return `{
		"num_samples": 3,
		"num_standards": 2,
		"replicates": 2,
		"overage_pct": 10,
		"include_rtneg": true,
		"include_rnaneg": true,
		"genes": [{"name": "Tnf", "chemistry": "SYBR"}]
	}`
}

func newTestHandler() *Handler {
	return NewHandler(planner.NewService())
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("body = %v", body)
	}
}

func TestPlanReturnsJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(validPlanBody()))
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %s", ct)
	}
	var res planner.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Layout) != 16 {
		t.Fatalf("layout has %d wells, want 16", len(res.Layout))
	}
	if res.Inputs.Replicates != 2 {
		t.Fatalf("inputs not echoed: %+v", res.Inputs)
	}
}

func TestPlanCSVViaQueryParam(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan?format=csv", strings.NewReader(validPlanBody()))
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %s", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Fatalf("content disposition = %s", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "Plate,Well,Target,Type,Label,Replicate") {
		t.Fatalf("body does not start with CSV header: %q", rec.Body.String()[:40])
	}
}

func TestPlanCSVViaAcceptHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(validPlanBody()))
	req.Header.Set("Accept", "text/csv")
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "text/csv" {
		t.Fatalf("status = %d, content type = %s", rec.Code, rec.Header().Get("Content-Type"))
	}
}

func TestPlanUnsupportedFormat(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan?format=xlsx", strings.NewReader(validPlanBody()))
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotAcceptable {
		t.Fatalf("status = %d, want 406", rec.Code)
	}
}

func TestPlanInputErrorIsBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"num_samples": 3, "replicates": 0, "genes": [{"name": "Tnf", "chemistry": "SYBR"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader(body))
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(payload["error"], "replicates") {
		t.Fatalf("error = %q", payload["error"])
	}
}

func TestPlanMalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan", strings.NewReader("{not json"))
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPlanRejectsGet(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/plan", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestUnknownPathIs404(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestExportsDisabledWithoutScheduler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/plan/exports", strings.NewReader(validPlanBody()))
	newTestHandler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
