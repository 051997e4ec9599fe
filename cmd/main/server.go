package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pipeworks/syllawalk/pkg/walker"
)

// Server wires the walker core to the HTTP mux.
type Server struct {
	config   *Config
	logger   *slog.Logger
	walker   *walker.Walker
	walkAPI  *WalkAPI
	statsAPI *StatsAPI
	mux      *http.ServeMux
}

// NewServer creates the server object and registers all routes.
func NewServer(config *Config, logger *slog.Logger, w *walker.Walker, corpus *walker.Corpus, graph *walker.NeighborGraph) *Server {
	walkAPI := NewWalkAPI(w, logger)
	statsAPI := NewStatsAPI(corpus, graph, logger)

	server := &Server{
		config:   config,
		logger:   logger,
		walker:   w,
		walkAPI:  walkAPI,
		statsAPI: statsAPI,
		mux:      http.NewServeMux(),
	}

	server.walkAPI.RegisterRoutes(server.mux)
	server.statsAPI.RegisterRoutes(server.mux)
	server.mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, config.Server.IndexPath)
	})

	return server
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		err := json.NewEncoder(w).Encode(payload)
		if err != nil {
			fmt.Printf("ERROR: Failed to encode JSON response: %v\n", err)
		}
	}
}
