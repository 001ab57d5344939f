// Package clienttest provides an in-memory review backend for tests.
package clienttest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/colonyops/hrevu/internal/core/review"
)

// Request records one call received by the fake backend.
type Request struct {
	Method    string
	Path      string
	Body      string
	RequestID string
}

// Server is a fake backend implementing the review REST surface.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	review    review.Review
	failures  map[string]int
	requests  []Request
	nextID    int
	completed bool

	// Now stamps created comments.
	Now func() time.Time
}

// New starts a fake backend serving r. The server is closed when the test ends.
func New(t testing.TB, r review.Review) *Server {
	t.Helper()

	s := &Server{
		review:   r,
		failures: make(map[string]int),
		Now:      func() time.Time { return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC) },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data", s.handleData)
	mux.HandleFunc("POST /api/comments", s.handleCreate)
	mux.HandleFunc("PUT /api/comments/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/comments/{id}", s.handleDelete)
	mux.HandleFunc("POST /api/complete", s.handleComplete)

	s.Server = httptest.NewServer(s.record(mux))
	t.Cleanup(s.Close)
	return s
}

// Fail makes every following request matching method and path answer with
// code until Recover is called.
func (s *Server) Fail(method, path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+path] = code
}

// Recover clears all injected failures.
func (s *Server) Recover() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]int)
}

// Comments returns the backend's comment list.
func (s *Server) Comments() []review.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]review.Comment, len(s.review.Comments))
	copy(out, s.review.Comments)
	return out
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Completed reports whether the review was completed.
func (s *Server) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.EscapedPath(),
			Body:      string(body),
			RequestID: r.Header.Get("X-Request-ID"),
		})
		code, fail := s.failures[r.Method+" "+r.URL.Path]
		s.mu.Unlock()

		if fail {
			http.Error(w, "injected failure", code)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleData(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, s.review)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		File *string `json:"file"`
		Line *int    `json:"line"`
		Text string  `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c := review.Comment{
		ID:        fmt.Sprintf("c%d", s.nextID),
		File:      in.File,
		Line:      in.Line,
		Text:      in.Text,
		CreatedAt: s.Now(),
	}
	s.review.Comments = append(s.review.Comments, c)
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text *string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.review.Comments {
		if s.review.Comments[i].ID != id {
			continue
		}
		if in.Text != nil {
			s.review.Comments[i].Text = *in.Text
		}
		writeJSON(w, http.StatusOK, s.review.Comments[i])
		return
	}
	http.Error(w, "Comment not found: "+id, http.StatusNotFound)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.review.Comments {
		if s.review.Comments[i].ID == id {
			s.review.Comments = append(s.review.Comments[:i], s.review.Comments[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	http.Error(w, "Comment not found: "+id, http.StatusNotFound)
}

func (s *Server) handleComplete(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = true
	writeJSON(w, http.StatusOK, map[string]any{
		"message":       "Review completed",
		"comment_count": len(s.review.Comments),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
