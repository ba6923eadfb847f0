package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postDistance(t *testing.T, s *Server, query, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/distance"+query, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeMux().ServeHTTP(rec, req)
	return rec
}

func TestDistanceHandler(t *testing.T) {
	s := NewServer(1 << 20)

	tests := []struct {
		name      string
		query     string
		body      string
		distance  int
		reachable bool
	}{
		{"Canonical", "", canonical, 31, true},
		{"Lowest", "?from=lowest", canonical, 29, true},
		{"Within", "?rule=within&step=25", "Saaa\naaxx\naaxE\n", 5, true},
		{"Unreachable", "?rule=climb&step=1", "Saaa\naaxx\naaxE\n", -1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postDistance(t, s, tc.query, tc.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp distanceResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.distance, resp.Distance)
			assert.Equal(t, tc.reachable, resp.Reachable)
			assert.Positive(t, resp.Visited)
		})
	}
}

func TestDistanceHandler_Errors(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		query    string
		body     string
		code     int
	}{
		{"Malformed", 1 << 20, "", "SaS\nabE\n", http.StatusBadRequest},
		{"Empty", 1 << 20, "", "", http.StatusBadRequest},
		{"BadStep", 1 << 20, "?step=two", canonical, http.StatusBadRequest},
		{"NegativeStep", 1 << 20, "?step=-1", canonical, http.StatusBadRequest},
		{"UnknownRule", 1 << 20, "?rule=teleport", canonical, http.StatusBadRequest},
		{"UnknownOrigin", 1 << 20, "?from=summit", canonical, http.StatusBadRequest},
		{"TooLarge", 8, "", canonical, http.StatusRequestEntityTooLarge},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postDistance(t, NewServer(tc.maxBytes), tc.query, tc.body)
			assert.Equal(t, tc.code, rec.Code, rec.Body.String())
		})
	}
}

func TestDistanceHandler_Method(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/distance", nil)
	rec := httptest.NewRecorder()
	NewServer(1<<20).ServeMux().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestMetrics checks that searches show up on /metrics.
func TestMetrics(t *testing.T) {
	s := NewServer(1 << 20)
	rec := postDistance(t, s, "", canonical)
	require.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	s.ServeMux().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `hillclimb_searches_total{outcome="reachable"}`)
	assert.Contains(t, body, "hillclimb_search_visited_cells_bucket")
}
