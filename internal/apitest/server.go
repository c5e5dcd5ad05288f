// Package apitest is an in-memory stand-in for the AGEI REST API, for
// tests that exercise the client end to end over real HTTP.
package apitest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/agei/internal/domain"
)

// Server is the fake API. Its routes live under /api.
type Server struct {
	mem          *memory
	tokens       *tokenIssuerHS256
	passwordCost int
	suggestions  []domain.Course
	log          *slog.Logger

	mu            sync.Mutex
	failures      map[string][]int
	lastAuth      map[string]string
	lastRequestID map[string]string
	hits          map[string]int

	url string
}

// Option customises a Server.
type Option func(*Server)

// WithClock replaces time.Now for server-assigned timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.mem.now = now }
}

// WithSuggestions replaces the built-in suggestion catalogue.
func WithSuggestions(courses []domain.Course) Option {
	return func(s *Server) { s.suggestions = courses }
}

// WithLogger sets the logger for access logs and recovered panics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.log = logger.With("component", "apitest") }
}

// New creates a Server with no users.
func New(opts ...Option) *Server {
	s := &Server{
		mem:          newMemory(time.Now),
		tokens:       newTokenIssuer("apitest-signing-secret-0123456789abcdef", time.Hour),
		passwordCost: bcrypt.MinCost,
		suggestions:  defaultSuggestions(),
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),

		failures:      map[string][]int{},
		lastAuth:      map[string]string{},
		lastRequestID: map[string]string{},
		hits:          map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start serves s on a local port until the test ends.
func Start(tb testing.TB, opts ...Option) *Server {
	tb.Helper()
	s := New(opts...)
	ts := httptest.NewServer(s.Router())
	tb.Cleanup(ts.Close)
	s.url = ts.URL + "/api"
	return s
}

// URL is the API base address of a started server.
func (s *Server) URL() string { return s.url }

// Router returns the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID, s.recovery, s.accessLog, s.record, s.injectFailures)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Post("/auth/registro", s.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)

			r.Get("/tarefas", s.handleListTasks)
			r.Post("/tarefas", s.handleCreateTask)
			r.Put("/tarefas/{id}", s.handleUpdateTask)
			r.Delete("/tarefas/{id}", s.handleDeleteTask)

			r.Get("/emocional/check-ins", s.handleListCheckIns)
			r.Post("/emocional/check-ins", s.handleCreateCheckIn)
			r.Get("/emocional/eventos", s.handleListEvents)
			r.Post("/emocional/eventos", s.handleCreateEvent)
			r.Get("/emocional/analise", s.handleAnalysis)

			r.Get("/formacao/cursos", s.handleListCourses)
			r.Post("/formacao/cursos", s.handleCreateCourse)
			r.Put("/formacao/cursos/{id}", s.handleUpdateCourse)
			r.Delete("/formacao/cursos/{id}", s.handleDeleteCourse)
			r.Get("/formacao/sugestoes", s.handleSuggestions)
		})
	})
	return r
}

// FailNext makes the next request matching method and path (relative to
// /api, e.g. "/tarefas") answer with status instead of being served.
// Several calls queue several failures.
func (s *Server) FailNext(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := routeKey(method, path)
	s.failures[key] = append(s.failures[key], status)
}

// LastAuthorization returns the Authorization header of the most recent
// request to method and path, and whether such a request was seen.
func (s *Server) LastAuthorization(method, path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.lastAuth[routeKey(method, path)]
	return v, ok
}

// LastRequestID returns the X-Request-Id of the most recent request to
// method and path.
func (s *Server) LastRequestID(method, path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.lastRequestID[routeKey(method, path)]
	return v, ok
}

// Hits returns how many requests reached method and path.
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[routeKey(method, path)]
}

func routeKey(method, path string) string {
	return method + " " + path
}

func apiPath(r *http.Request) string {
	return strings.TrimPrefix(r.URL.Path, "/api")
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := routeKey(r.Method, apiPath(r))
		s.mu.Lock()
		s.lastAuth[key] = r.Header.Get("Authorization")
		s.hits[key]++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := routeKey(r.Method, apiPath(r))
		s.mu.Lock()
		queue := s.failures[key]
		status := 0
		if len(queue) > 0 {
			status = queue[0]
			s.failures[key] = queue[1:]
		}
		s.mu.Unlock()

		if status != 0 {
			writeError(w, status, "falha simulada")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"erro": message})
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}
