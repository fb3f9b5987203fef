package ops

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the internal ops listener: liveness plus pprof. It binds its own
// port so the profiling surface never rides on the public API.
type Server struct {
	router *chi.Mux
}

// NewServer creates the ops router
func NewServer() *Server {
	s := &Server{router: chi.NewRouter()}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures HTTP middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
}

// setupRoutes configures the ops routes
func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Mount("/debug", middleware.Profiler())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the ops listener; meant to run on its own goroutine
func (s *Server) Start(port string) {
	log.Printf("🚀 Ops listener starting on :%s (healthz + pprof under /debug)", port)
	if err := http.ListenAndServe(":"+port, s.router); err != nil {
		log.Printf("❌ Ops listener failed: %v", err)
	}
}
