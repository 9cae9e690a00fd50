package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"Bendung/internal/config"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Server{
		TokenKey:  []byte("test-key"),
		TicketTTL: time.Hour,
		RateLimit: 100,
		RateBurst: 100,
		Design:    config.DefaultDesign(),
	}
	r := mux.NewRouter()
	HandleList(r, cfg)
	srv := httptest.NewServer(Wrap(r))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv := testServer(t)
	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestClassifyRoute(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv.URL+"/api/jump/classify", `{"flow_rate_m3s":0.049,"width_m":0.15,"approach_depth_m":0.0155}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var res struct {
		JumpType string `json:"jump_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	if res.JumpType != "USBR-II" {
		t.Errorf("jump type = %q", res.JumpType)
	}

	resp = post(t, srv.URL+"/api/jump/classify", `{"flow_rate_m3s":1,"width_m":0,"approach_depth_m":1}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("zero width: status = %d", resp.StatusCode)
	}
}

func TestCheckThenReport(t *testing.T) {
	srv := testServer(t)
	resp := post(t, srv.URL+"/api/drop/check",
		`{"drop":{"flow_rate_m3s":1.5,"width_m":2.0,"total_height_m":3.5,"max_height_per_stage_m":1.5,"cost_saving":true}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check status = %d", resp.StatusCode)
	}
	var checked struct {
		Ticket string `json:"ticket"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&checked); err != nil {
		t.Fatal(err)
	}
	if checked.Ticket == "" {
		t.Fatal("no ticket issued")
	}

	body, _ := json.Marshal(map[string]string{"ticket": checked.Ticket})
	resp = post(t, srv.URL+"/api/report/pdf", string(body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("report status = %d", resp.StatusCode)
	}
	var buf bytes.Buffer
	buf.ReadFrom(resp.Body)
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("report is not a PDF")
	}

	resp = post(t, srv.URL+"/api/report/xlsx", `{"ticket":"forged"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("forged ticket: status = %d", resp.StatusCode)
	}
}

func TestCORSPreflight(t *testing.T) {
	srv := testServer(t)
	req, _ := http.NewRequest(http.MethodOptions, srv.URL+"/api/drop/design", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}
