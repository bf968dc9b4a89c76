// Package server exposes the merge/split workflow as a JSON API. Each
// browser-style client gets its own session, identified by a cookie; uploads
// are staged into a per-session temp directory.
package server

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/pdfdeck/pdfdeck/config"
	"github.com/pdfdeck/pdfdeck/session"
)

const sessionCookie = "pdfdeck_session"

type clientSession struct {
	session *session.Session
	dir     string // staging area for uploads, removed on reset
}

// Server owns the session registry and the HTTP handlers around it.
type Server struct {
	cfg config.Config

	mu       sync.Mutex
	sessions map[string]*clientSession
}

// New returns a Server for the given configuration.
func New(cfg config.Config) *Server {
	return &Server{
		cfg:      cfg,
		sessions: make(map[string]*clientSession),
	}
}

// ListenAndServe blocks serving the API on the configured address.
func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.cfg.ListenAddr, s.Routes())
}

// Routes builds the API mux.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.withSession(s.handleState))
	mux.HandleFunc("POST /api/files", s.withSession(s.handleUpload))
	mux.HandleFunc("DELETE /api/files/{id}", s.withSession(s.handleDelete))
	mux.HandleFunc("POST /api/files/{id}/move", s.withSession(s.handleMove))
	mux.HandleFunc("POST /api/merge", s.withSession(s.handleMerge))
	mux.HandleFunc("POST /api/split", s.withSession(s.handleSplit))
	mux.HandleFunc("POST /api/reset", s.withSession(s.handleReset))
	return logRequests(mux)
}

// withSession resolves (or creates) the client session for a request and
// hands it to the wrapped handler. Session state itself is guarded by the
// session's own mutex; this only guards the registry.
func (s *Server) withSession(h func(w http.ResponseWriter, r *http.Request, cs *clientSession)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(sessionCookie); err == nil {
			id = c.Value
		}

		s.mu.Lock()
		cs, ok := s.sessions[id]
		if !ok {
			id = uuid.New().String()
			dir, err := os.MkdirTemp("", "pdfdeck-session-")
			if err != nil {
				s.mu.Unlock()
				writeError(w, http.StatusInternalServerError, err)
				return
			}

			// Outputs land in the staging dir too, so a session
			// leaves nothing behind outside it.
			cfg := s.cfg
			cfg.OutputDir = dir

			cs = &clientSession{session: session.New(cfg), dir: dir}
			s.sessions[id] = cs
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
		}
		s.mu.Unlock()

		h(w, r, cs)
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
