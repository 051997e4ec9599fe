package main

import (
	"log/slog"
	"net/http"

	"github.com/pipeworks/syllawalk/pkg/walker"
)

// StatsAPI holds the dependencies for the statistics handler.
type StatsAPI struct {
	corpus *walker.Corpus
	graph  *walker.NeighborGraph
	logger *slog.Logger
}

// NewStatsAPI creates a new instance of the StatsAPI.
func NewStatsAPI(corpus *walker.Corpus, graph *walker.NeighborGraph, logger *slog.Logger) *StatsAPI {
	return &StatsAPI{
		corpus: corpus,
		graph:  graph,
		logger: logger,
	}
}

// RegisterRoutes sets up the routing for the stats endpoint.
func (s *StatsAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/stats", s.handleStats)
}

func (s *StatsAPI) handleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respondWithJSON(w, http.StatusOK, walker.Stats(s.corpus, s.graph))
}
