//go:build !js
// +build !js

package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/simukka/ninja-slice/leaderboard"
)

// Identity headers set by the hosting platform.
const (
	headerUserID   = "X-User-Id"
	headerUsername = "X-Username"
	headerPostID   = "X-Post-Id"
)

// Server serves the game page and the leaderboard API.
type Server struct {
	svc    *leaderboard.Service
	log    *slog.Logger
	index  []byte
	static http.Handler
}

// NewServer creates a server backed by svc. Files other than the index are
// served from staticDir.
func NewServer(svc *leaderboard.Service, logger *slog.Logger, index []byte, staticDir string) *Server {
	return &Server{
		svc:    svc,
		log:    logger,
		index:  index,
		static: http.FileServer(http.Dir(staticDir)),
	}
}

// Routes returns the handler for every endpoint, wrapped in request logging.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("POST /api/leaderboard/submit", s.handleSubmit)
	mux.HandleFunc("GET /api/leaderboard/top", s.handleTop)
	mux.HandleFunc("GET /api/leaderboard/challenge", s.handleChallenge)
	mux.HandleFunc("GET /api/init", s.handleInit)
	mux.HandleFunc("/api/health", handleHealth)
	return logRequests(s.log, mux)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Status: "error", Message: message})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" || r.URL.Path == "/index.html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(s.index)
		return
	}
	s.static.ServeHTTP(w, r)
}

type submitResponse struct {
	Status string              `json:"status"`
	Saved  map[string]*float64 `json:"saved"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(headerUserID)
	username := r.Header.Get(headerUsername)
	if userID == "" || username == "" {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var fields map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	saved, err := s.svc.Submit(r.Context(), userID, username, fields)
	if errors.Is(err, leaderboard.ErrNotLoggedIn) {
		writeError(w, http.StatusUnauthorized, "Not logged in")
		return
	}
	if err != nil {
		s.log.Error("Error saving score", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to save score")
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{Status: "success", Saved: saved})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	board, err := s.svc.Top(r.Context(), r.Header.Get(headerUserID), r.Header.Get(headerUsername))
	if err != nil {
		s.log.Error("Leaderboard fetch error", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.svc.Challenge())
}

type initResponse struct {
	Type   string `json:"type"`
	PostID string `json:"postId"`
	Count  int64  `json:"count"`
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	postID := r.Header.Get(headerPostID)
	if postID == "" {
		writeError(w, http.StatusBadRequest, "postId is required but missing from context")
		return
	}

	count, err := s.svc.Count(r.Context())
	if err != nil {
		s.log.Error("Initialization failed", "post", postID, "error", err)
		writeError(w, http.StatusBadRequest, "Initialization failed")
		return
	}
	writeJSON(w, http.StatusOK, initResponse{Type: "init", PostID: postID, Count: count})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"healthy"}`))
}
