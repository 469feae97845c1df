package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/hydromet/explorer/pkg/config"
)

// stubProvider satisfies config.ConfigProvider with fixed data
type stubProvider struct {
	data config.ConfigData
}

func (s *stubProvider) LoadConfig() (*config.ConfigData, error)      { return &s.data, nil }
func (s *stubProvider) GetServerConfig() (*config.ServerData, error) { return &s.data.Server, nil }
func (s *stubProvider) GetSiteConfig() (*config.SiteData, error)     { return &s.data.Site, nil }
func (s *stubProvider) GetLoggingConfig() (*config.LoggingData, error) {
	return &s.data.Logging, nil
}
func (s *stubProvider) IsReadOnly() bool { return true }
func (s *stubProvider) Close() error     { return nil }

func newTestController(t *testing.T) *Controller {
	t.Helper()
	provider := &stubProvider{data: config.ConfigData{
		Server: config.ServerData{MaxGridPoints: 500},
	}}
	var wg sync.WaitGroup
	ctrl, err := NewController(context.Background(), &wg, provider, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return ctrl
}

func doRequest(t *testing.T, ctrl *Controller, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	ctrl.Server.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response: %v\nbody: %s", err, rec.Body.String())
	}
}

type seriesBody struct {
	Model  string `json:"model"`
	Series *struct {
		Time       []float64 `json:"time"`
		Rate       []float64 `json:"rate"`
		Cumulative []float64 `json:"cumulative"`
	} `json:"series"`
	Runoff map[string]float64 `json:"runoff"`
}

type errorBody struct {
	Error string `json:"error"`
	Param string `json:"param"`
}

func TestGetModels(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var models []struct {
		Slug        string `json:"slug"`
		Implemented bool   `json:"implemented"`
	}
	decodeJSON(t, rec, &models)

	byslug := map[string]bool{}
	for _, m := range models {
		byslug[m.Slug] = m.Implemented
	}
	for _, slug := range []string{"green-ampt", "philip", "horton", "scs-curve-number"} {
		if !byslug[slug] {
			t.Errorf("%s missing or not implemented", slug)
		}
	}
	if implemented, ok := byslug["unit-hydrograph"]; !ok {
		t.Error("placeholder unit-hydrograph missing from catalog listing")
	} else if implemented {
		t.Error("unit-hydrograph should not report implemented")
	}
}

func TestGetModelUnknown(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/richards", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestEvaluatePhilipQuery(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/philip/evaluate?s=1&k=1&start=1&end=2&points=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body seriesBody
	decodeJSON(t, rec, &body)
	if body.Series == nil {
		t.Fatal("no series in response")
	}
	if got := body.Series.Rate[0]; math.Abs(got-1.5) > 1e-12 {
		t.Errorf("rate at t=1 = %g, want 1.5", got)
	}
	if got := body.Series.Cumulative[0]; math.Abs(got-2.0) > 1e-12 {
		t.Errorf("cumulative at t=1 = %g, want 2.0", got)
	}
}

func TestEvaluateSCSQuery(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/scs-curve-number/evaluate?p=5&cn=70&ia_ratio=0.2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body seriesBody
	decodeJSON(t, rec, &body)
	if body.Runoff == nil {
		t.Fatal("no runoff in response")
	}
	if got := body.Runoff["runoff"]; math.Abs(got-0.581) > 1e-2 {
		t.Errorf("runoff = %g, want ≈0.581", got)
	}
	if got := body.Runoff["infiltration"]; math.Abs(got-4.419) > 1e-2 {
		t.Errorf("infiltration = %g, want ≈4.419", got)
	}
}

func TestEvaluateBadParamValue(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/philip/evaluate?s=banana", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body errorBody
	decodeJSON(t, rec, &body)
	if body.Param != "s" {
		t.Errorf("error names param %q, want s", body.Param)
	}
}

func TestEvaluateRejectsZeroStart(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/green-ampt/evaluate?start=0&end=24&points=10", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (rate undefined at t=0)", rec.Code)
	}
}

func TestEvaluatePlaceholder(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/unit-hydrograph/evaluate", "")
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want 501", rec.Code)
	}
}

func TestEvaluatePointsCap(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/horton/evaluate?start=0&end=24&points=100000", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body errorBody
	decodeJSON(t, rec, &body)
	if body.Param != "points" {
		t.Errorf("error names param %q, want points", body.Param)
	}
}

func TestEvaluatePost(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodPost, "/api/evaluate",
		`{"model":"horton","params":{"f0":10,"fc":1,"k":1},"grid":{"start":0,"end":2,"points":3}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body seriesBody
	decodeJSON(t, rec, &body)
	if body.Series == nil {
		t.Fatal("no series in response")
	}
	if got := body.Series.Cumulative[0]; got != 0 {
		t.Errorf("cumulative[0] = %g, want 0", got)
	}
	if got := body.Series.Rate[0]; math.Abs(got-10) > 1e-12 {
		t.Errorf("rate[0] = %g, want 10", got)
	}
}

func TestEvaluatePostMalformed(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodPost, "/api/evaluate", `{"model":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEvaluateMsgpackFormat(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/api/models/philip/evaluate?format=msgpack", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/x-msgpack" {
		t.Errorf("Content-Type = %q, want application/x-msgpack", ct)
	}
}

func TestGetVersionAndSite(t *testing.T) {
	ctrl := newTestController(t)

	rec := doRequest(t, ctrl, http.MethodGet, "/api/version", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("version status = %d", rec.Code)
	}
	var version map[string]string
	decodeJSON(t, rec, &version)
	if version["version"] == "" {
		t.Error("empty version")
	}

	rec = doRequest(t, ctrl, http.MethodGet, "/api/site", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("site status = %d", rec.Code)
	}
	var site map[string]string
	decodeJSON(t, rec, &site)
	if site["page_title"] != "Hydromet Concepts Explorer" {
		t.Errorf("page_title = %q", site["page_title"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	ctrl := newTestController(t)

	rec := doRequest(t, ctrl, http.MethodGet, "/api/version", "")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("no X-Request-ID header assigned")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	ctrl.Server.Handler.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want the caller's abc-123", got)
	}
}

func TestIndexTemplate(t *testing.T) {
	ctrl := newTestController(t)
	rec := doRequest(t, ctrl, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Hydromet Concepts Explorer") {
		t.Error("index page does not contain the page title")
	}
}
