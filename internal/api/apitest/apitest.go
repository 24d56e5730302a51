// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package apitest runs an in-memory recipe API for tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/matt-FFFFFF/recipectl/internal/models"
)

// Server is an httptest server serving the recipes and ingredients routes.
// IDs start at 1 and increase per collection.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	recipes     []models.Recipe
	ingredients []models.Ingredient
	failStatus  int
	latency     time.Duration

	requests atomic.Int64
	inFlight atomic.Int64
	peak     atomic.Int64
	gate     chan struct{}
}

// New starts a server that is closed when the test finishes.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /recipes", list(s, func() any { return s.recipes }))
	mux.HandleFunc("GET /ingredients", list(s, func() any { return s.ingredients }))
	mux.HandleFunc("GET /recipes/{id}", s.getRecipe)
	mux.HandleFunc("GET /ingredients/{id}", s.getIngredient)
	mux.HandleFunc("POST /recipes", s.postRecipe)
	mux.HandleFunc("POST /ingredients", s.postIngredient)

	s.Server = httptest.NewServer(s.middleware(mux))
	t.Cleanup(s.Close)

	return s
}

// BaseURL is the server URL with a trailing slash.
func (s *Server) BaseURL() string {
	return s.URL + "/"
}

// AddIngredient stores ing and returns it with its assigned ID.
func (s *Server) AddIngredient(ing models.Ingredient) models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	ing.ID = len(s.ingredients) + 1
	s.ingredients = append(s.ingredients, ing)

	return ing
}

// AddRecipe stores r and returns it with its assigned ID.
func (s *Server) AddRecipe(r models.Recipe) models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.ID = len(s.recipes) + 1
	s.recipes = append(s.recipes, r)

	return r
}

// Recipes returns a copy of the stored recipes.
func (s *Server) Recipes() []models.Recipe {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.recipes)
}

// Ingredients returns a copy of the stored ingredients.
func (s *Server) Ingredients() []models.Ingredient {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.ingredients)
}

// FailWith makes every following request answer with status. Zero restores
// normal behaviour.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failStatus = status
}

// SetLatency delays every following response by d.
func (s *Server) SetLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latency = d
}

// Hold blocks every request until Release is called.
func (s *Server) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gate = make(chan struct{})
}

// Release unblocks requests held by Hold.
func (s *Server) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gate != nil {
		close(s.gate)
		s.gate = nil
	}
}

// Requests is the number of requests served so far.
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

// InFlight is the number of requests currently being served.
func (s *Server) InFlight() int {
	return int(s.inFlight.Load())
}

// PeakInFlight is the largest number of concurrent requests observed.
func (s *Server) PeakInFlight() int {
	return int(s.peak.Load())
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)

		n := s.inFlight.Add(1)
		defer s.inFlight.Add(-1)

		for {
			p := s.peak.Load()
			if n <= p || s.peak.CompareAndSwap(p, n) {
				break
			}
		}

		s.mu.Lock()
		gate, status, latency := s.gate, s.failStatus, s.latency
		s.mu.Unlock()

		if latency > 0 {
			select {
			case <-time.After(latency):
			case <-r.Context().Done():
				return
			}
		}

		if gate != nil {
			select {
			case <-gate:
			case <-r.Context().Done():
				return
			}
		}

		if status != 0 {
			writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func list(s *Server, items func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		writeJSON(w, http.StatusOK, items())
	}
}

func (s *Server) getRecipe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	getByID(w, r, s.recipes)
}

func (s *Server) getIngredient(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	getByID(w, r, s.ingredients)
}

func (s *Server) postRecipe(w http.ResponseWriter, r *http.Request) {
	var in models.Recipe
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "BadRequest"})
		return
	}

	writeJSON(w, http.StatusOK, s.AddRecipe(in))
}

func (s *Server) postIngredient(w http.ResponseWriter, r *http.Request) {
	var in models.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "BadRequest"})
		return
	}

	writeJSON(w, http.StatusOK, s.AddIngredient(in))
}

func getByID[T any](w http.ResponseWriter, r *http.Request, items []T) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 || id > len(items) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "NotFound"})
		return
	}

	writeJSON(w, http.StatusOK, items[id-1])
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
