package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pipeworks/syllawalk/pkg/walker"
)

// WalkAPI holds the dependencies for the walk generation handlers.
type WalkAPI struct {
	walker *walker.Walker
	logger *slog.Logger
}

// NewWalkAPI creates a new instance of the WalkAPI.
func NewWalkAPI(w *walker.Walker, logger *slog.Logger) *WalkAPI {
	return &WalkAPI{
		walker: w,
		logger: logger,
	}
}

// RegisterRoutes sets up the routing for the walk endpoints.
func (a *WalkAPI) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/walk", a.handleWalk)
	mux.HandleFunc("/api/profiles", a.handleProfiles)
}

// WalkRequest is the JSON body accepted by POST /api/walk. An empty start
// picks a random syllable; profile "custom" uses the explicit parameters;
// a null seed produces a non-reproducible walk.
type WalkRequest struct {
	Start           string   `json:"start"`
	Profile         string   `json:"profile"`
	Steps           int      `json:"steps"`
	MaxFlips        *int     `json:"max_flips"`
	Temperature     *float64 `json:"temperature"`
	FrequencyWeight *float64 `json:"frequency_weight"`
	Seed            *uint64  `json:"seed"`
}

// WalkResponse echoes the resolved profile and start alongside the walk.
type WalkResponse struct {
	Walk    []walker.WalkStep `json:"walk"`
	Profile string            `json:"profile"`
	Start   string            `json:"start"`
}

func (a *WalkAPI) handleWalk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req WalkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid JSON request body")
		return
	}

	// Defaults: dialect profile, 5 steps, random start.
	if req.Profile == "" {
		req.Profile = "dialect"
	}
	if req.Steps == 0 {
		req.Steps = 5
	}
	if req.Start == "" {
		req.Start = a.walker.RandomSyllable()
	}

	var seedOpts []walker.WalkOption
	if req.Seed != nil {
		seedOpts = append(seedOpts, walker.WithSeed(*req.Seed))
	}

	var steps []walker.WalkStep
	var err error
	if req.Profile == "custom" {
		// Absent fields keep the walker defaults; explicit values pass
		// through unchanged, so an out-of-range 0 is rejected rather than
		// silently replaced.
		opts := seedOpts
		if req.MaxFlips != nil {
			opts = append(opts, walker.WithMaxFlips(*req.MaxFlips))
		}
		if req.Temperature != nil {
			opts = append(opts, walker.WithTemperature(*req.Temperature))
		}
		if req.FrequencyWeight != nil {
			opts = append(opts, walker.WithFrequencyWeight(*req.FrequencyWeight))
		}
		steps, err = a.walker.Walk(req.Start, req.Steps, opts...)
	} else {
		steps, err = a.walker.WalkFromProfile(req.Start, req.Profile, req.Steps, seedOpts...)
	}

	if err != nil {
		switch {
		case errors.Is(err, walker.ErrUnknownSyllable),
			errors.Is(err, walker.ErrUnknownProfile),
			errors.Is(err, walker.ErrInvalidParameter):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			a.logger.Error("Walk generation failed", "start", req.Start, "profile", req.Profile, "error", err)
			respondWithError(w, http.StatusInternalServerError, fmt.Sprintf("Walk generation failed: %v", err))
		}
		return
	}

	a.logger.Debug("Walk generated",
		slog.String("start", req.Start),
		slog.String("profile", req.Profile),
		slog.Int("steps", len(steps)),
	)
	respondWithJSON(w, http.StatusOK, WalkResponse{Walk: steps, Profile: req.Profile, Start: req.Start})
}

func (a *WalkAPI) handleProfiles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	respondWithJSON(w, http.StatusOK, a.walker.Profiles().Profiles())
}
