package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/hillclimb/adjacency"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// Server answers distance queries for height maps posted as text.
type Server struct {
	maxBytes int64
}

// distanceResponse is the JSON body returned by /v1/distance.
type distanceResponse struct {
	Distance  int  `json:"distance"`
	Reachable bool `json:"reachable"`
	Visited   int  `json:"visited"`
}

// NewServer returns a Server that rejects bodies larger than maxBytes.
func NewServer(maxBytes int64) *Server {
	return &Server{maxBytes: maxBytes}
}

// ServeMux returns a mux serving /v1/distance and the Prometheus /metrics endpoint.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/distance", s.distanceHandler)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) distanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	step := 1
	if v := q.Get("step"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "Invalid step: "+err.Error(), http.StatusBadRequest)
			return
		}
		step = n
	}
	c, err := newSearchConfig(queryDefault(q.Get("from"), fromStart), queryDefault(q.Get("rule"), adjacency.NameClimb), step)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	g, err := heightmap.Parse(http.MaxBytesReader(w, r.Body, s.maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		default:
			// malformed grids and unreadable bodies are both the client's fault
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
		return
	}

	res, err := c.search(g, bfs.WithContext(r.Context()))
	if err != nil {
		log.WithError(err).Warn("search failed")
		http.Error(w, "Search failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(distanceResponse{
		Distance:  res.Distance,
		Reachable: res.Reachable(),
		Visited:   res.Visited,
	}); err != nil {
		log.WithError(err).Warn("writing response")
	}
}

func queryDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// logRequests logs every request at debug level before serving it.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Debug("request")
		next.ServeHTTP(w, r)
	})
}
