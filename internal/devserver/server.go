// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package devserver implements an in-memory fake of the remote config
// backend's HTTP contract: token issuance, config fetch with etag/304
// handling, and forced throttling.
//
// It exists for SDK development and testing — adapter tests mount Router on
// an httptest.Server, and cmd/devserver runs it standalone.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-config-keeper/internal/logger"
	"github.com/MKhiriev/go-config-keeper/models"
)

type Config struct {
	// Project is the only project the server answers for; other projects
	// get 404.
	Project string

	// APIKey is the key the token endpoint accepts.
	APIKey string

	// TokenSecret signs issued tokens (HS256).
	TokenSecret []byte

	// TokenTTL bounds issued token lifetime.
	TokenTTL time.Duration

	Logger *logger.Logger
}

// Server is a fake remote config backend. Safe for concurrent use.
type Server struct {
	cfg    Config
	logger *logger.Logger

	mu             sync.RWMutex
	entries        models.RemoteEntries
	revision       int
	throttledUntil time.Time
}

// New creates a devserver with sane defaults: project "demo", api key
// "dev-key", a one hour token TTL, and an empty configuration set.
func New(cfg Config) *Server {
	if cfg.Project == "" {
		cfg.Project = "demo"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = "dev-key"
	}
	if len(cfg.TokenSecret) == 0 {
		cfg.TokenSecret = []byte("devserver-secret")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	return &Server{
		cfg:     cfg,
		logger:  cfg.Logger,
		entries: models.RemoteEntries{},
	}
}

// SetEntries replaces the served configuration set and bumps the revision,
// invalidating previously issued etags.
func (s *Server) SetEntries(entries models.RemoteEntries) {
	copied := models.RemoteEntries{}
	for namespace, kv := range entries {
		copied[namespace] = make(map[string]string, len(kv))
		for key, value := range kv {
			copied[namespace][key] = value
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = copied
	s.revision++
}

// ThrottleUntil makes every fetch until t answer 429 with t as the throttle
// end time. Pass the zero time to lift the throttle.
func (s *Server) ThrottleUntil(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.throttledUntil = t
}

// Router builds the HTTP surface of the fake backend.
func (s *Server) Router() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.requestLogger)

	router.Post("/v1/token", s.token)
	router.Post("/v1/projects/{project}/config:fetch", s.fetch)

	return router
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := s.logger.With().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Logger()
		next.ServeHTTP(w, r.WithContext(reqLogger.WithContext(r.Context())))
	})
}

func (s *Server) token(w http.ResponseWriter, r *http.Request) {
	var req models.RemoteTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid token request", http.StatusBadRequest)
		return
	}
	if req.APIKey != s.cfg.APIKey {
		logger.FromRequest(r).Warn().Msg("token request with wrong api key")
		http.Error(w, "invalid api key", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": req.ClientID,
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.TokenTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.TokenSecret)
	if err != nil {
		http.Error(w, "token signing failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.RemoteTokenResponse{Token: signed})
}

func (s *Server) fetch(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "project") != s.cfg.Project {
		http.Error(w, "unknown project", http.StatusNotFound)
		return
	}
	if !s.authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	s.mu.RLock()
	entries := s.entries
	etag := fmt.Sprintf(`"rev-%d"`, s.revision)
	throttledUntil := s.throttledUntil
	s.mu.RUnlock()

	if !throttledUntil.IsZero() && time.Now().Before(throttledUntil) {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(time.Until(throttledUntil)/time.Second)+1))
		writeJSON(w, http.StatusTooManyRequests, models.RemoteThrottleResponse{
			ThrottleEndSeconds: throttledUntil.Unix(),
		})
		return
	}

	if r.Header.Get("If-None-Match") == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	writeJSON(w, http.StatusOK, models.RemoteFetchResponse{
		Entries: entries,
		FetchID: uuid.NewString(),
	})
}

func (s *Server) authorized(r *http.Request) bool {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return false
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.cfg.TokenSecret, nil
	})
	return err == nil && token.Valid
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
