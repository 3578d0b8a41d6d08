package api

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/san-kum/physlab/internal/acoustics"
	"github.com/san-kum/physlab/internal/storage"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store := storage.New(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	return CORS(NewRouter(store))
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAtwoodRestEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/api/atwood/rest", map[string]any{
		"mass_table_kg":   2.0,
		"mass_hanging_kg": 1.0,
		"gravity":         10.0,
		"target_m":        1.5,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var out atwoodRestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if math.Abs(out.Acceleration-10.0/3.0) > 1e-9 {
		t.Errorf("acceleration = %v", out.Acceleration)
	}
	if out.Mode != "frictionless" {
		t.Errorf("mode = %q", out.Mode)
	}
	if out.TimeToTarget == nil {
		t.Fatal("expected a time to target")
	}
	want := math.Sqrt(2 * 1.5 / (10.0 / 3.0))
	if math.Abs(*out.TimeToTarget-want) > 1e-9 {
		t.Errorf("time to target = %v, want %v", *out.TimeToTarget, want)
	}
}

func TestAtwoodRestStaticHoldOmitsTime(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/api/atwood/rest", map[string]any{
		"mass_table_kg":   6.0,
		"mass_hanging_kg": 1.0,
		"mu":              0.2,
		"gravity":         10.0,
		"friction_on":     true,
		"target_m":        1.0,
	})
	var out atwoodRestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Mode != "static_hold" {
		t.Errorf("mode = %q", out.Mode)
	}
	if out.TimeToTarget != nil {
		t.Error("held system must not report a time to target")
	}
	if out.Friction != 10 {
		t.Errorf("friction = %v, want balancing 10", out.Friction)
	}
}

func TestAtwoodDynamicEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/api/atwood/dynamic", map[string]any{
		"mass_table_kg":   2.0,
		"mass_hanging_kg": 2.0,
		"mu":              0.25,
		"gravity":         10.0,
		"friction_on":     true,
		"velocity":        -0.5,
	})
	var out atwoodDynamicResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	// Moving backward: friction pushes forward, adding to the drive.
	if out.FrictionSigned != 5 {
		t.Errorf("friction = %v, want +5", out.FrictionSigned)
	}
	if math.Abs(out.Acceleration-25.0/4.0) > 1e-9 {
		t.Errorf("acceleration = %v", out.Acceleration)
	}
}

func TestResonanceEndpointsRoundTrip(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/api/resonance/length", map[string]any{
		"frequency_hz":    440.0,
		"tube_diameter_m": 0.03,
		"air_temp_c":      20.0,
	})
	var lengthOut resonanceLengthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &lengthOut); err != nil {
		t.Fatal(err)
	}
	if math.Abs(lengthOut.SpeedOfSound-343.0) > 1e-9 {
		t.Errorf("speed = %v", lengthOut.SpeedOfSound)
	}

	rec = postJSON(t, h, "/api/resonance/speed", map[string]any{
		"frequency_hz":    440.0,
		"air_length_m":    lengthOut.TargetLengthM,
		"tube_diameter_m": 0.03,
	})
	var speedOut resonanceSpeedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &speedOut); err != nil {
		t.Fatal(err)
	}
	if math.Abs(speedOut.InferredSpeed-343.0) > 1e-6 {
		t.Errorf("inferred speed = %v, want 343", speedOut.InferredSpeed)
	}
}

func TestResonanceQualityEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/api/resonance/quality", map[string]any{
		"air_length_m":    0.18,
		"target_length_m": 0.18,
	})
	var out resonanceQualityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Strength != 1 {
		t.Errorf("strength at target = %v", out.Strength)
	}
	if !out.Band.Accepted || out.Band.Class != "high" {
		t.Errorf("band = %+v", out.Band)
	}

	// Narrow bandwidth makes the same offset score worse.
	wide := acoustics.ResonanceStrengthWithBandwidth(0.19, 0.18, 0.05)
	rec = postJSON(t, h, "/api/resonance/quality", map[string]any{
		"air_length_m":    0.19,
		"target_length_m": 0.18,
		"bandwidth":       0.001,
	})
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Strength >= wide {
		t.Errorf("narrow bandwidth strength %v should be below %v", out.Strength, wide)
	}
}

func TestTrialLogEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rec := postJSON(t, h, "/api/trials", map[string]any{
		"experiment": "resonance",
		"inputs":     map[string]float64{"frequency_hz": 440, "air_length_m": 0.165},
		"outputs":    map[string]float64{"strength": 0.97},
		"band":       "High",
		"accepted":   true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, h, "/api/trials", map[string]any{"experiment": "bogus"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown experiment: status %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/trials", nil)
	list := httptest.NewRecorder()
	h.ServeHTTP(list, req)
	if list.Code != http.StatusOK {
		t.Fatalf("list status %d", list.Code)
	}
	var trials []map[string]any
	if err := json.Unmarshal(list.Body.Bytes(), &trials); err != nil {
		t.Fatal(err)
	}
	if len(trials) != 1 {
		t.Fatalf("expected one logged trial, got %d", len(trials))
	}
	if trials[0]["id"].(float64) != 1 {
		t.Errorf("first trial should get id 1, got %v", trials[0]["id"])
	}
}

func TestReportEndpointStreamsPDF(t *testing.T) {
	h := newTestRouter(t)

	postJSON(t, h, "/api/trials", map[string]any{
		"experiment": "atwood",
		"inputs":     map[string]float64{"mass_table_kg": 2, "mass_hanging_kg": 1},
		"outputs":    map[string]float64{"acceleration": 10.0 / 3.0},
		"mode":       "frictionless",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/report?student=A.+Student", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("body does not look like a PDF")
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/trials", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing allow-origin header")
	}
}
