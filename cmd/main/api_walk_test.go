package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pipeworks/syllawalk/pkg/walker"
)

// setupWalkMux builds a mux with the walk routes over a three-syllable corpus.
func setupWalkMux(t *testing.T) *http.ServeMux {
	t.Helper()
	corpus, err := walker.NewCorpus([]walker.SyllableRecord{
		{Text: "ka", Frequency: 100, Features: walker.FeatureVector(0b00)},
		{Text: "ki", Frequency: 50, Features: walker.FeatureVector(0b01)},
		{Text: "ko", Frequency: 10, Features: walker.FeatureVector(0b11)},
	})
	if err != nil {
		t.Fatalf("NewCorpus() error = %v", err)
	}
	graph, err := walker.BuildGraph(corpus, 2)
	if err != nil {
		t.Fatalf("BuildGraph() error = %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	NewWalkAPI(walker.NewWalker(corpus, graph), logger).RegisterRoutes(mux)
	return mux
}

// TestHandleWalkCustomParameters checks that custom-profile parameters are
// only applied when present in the request body: omitted fields keep the
// defaults, while an explicit out-of-range value (including 0) is rejected.
func TestHandleWalkCustomParameters(t *testing.T) {
	mux := setupWalkMux(t)

	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"Omitted parameters use defaults", `{"start":"ka","profile":"custom"}`, http.StatusOK},
		{"Explicit valid parameters", `{"start":"ka","profile":"custom","max_flips":1,"temperature":0.5,"frequency_weight":1.0,"seed":7}`, http.StatusOK},
		{"Explicit zero temperature", `{"start":"ka","profile":"custom","temperature":0}`, http.StatusBadRequest},
		{"Negative temperature", `{"start":"ka","profile":"custom","temperature":-1}`, http.StatusBadRequest},
		{"Explicit zero max flips", `{"start":"ka","profile":"custom","max_flips":0}`, http.StatusBadRequest},
		{"Max flips beyond graph radius", `{"start":"ka","profile":"custom","max_flips":3}`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/walk", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tc.wantStatus, rr.Body.String())
			}
			if tc.wantStatus == http.StatusOK {
				var resp WalkResponse
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if len(resp.Walk) != 5 {
					t.Errorf("walk length = %d, want 5", len(resp.Walk))
				}
			}
		})
	}
}
