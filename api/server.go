package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gradefill/app"
	"gradefill/internal/config"
)

// Server is the public HTTP surface of the fill service
type Server struct {
	router      *gin.Engine
	fillService *app.FillService
	corsOrigins []string
}

// NewServer creates a new web server instance
func NewServer(cfg *config.Config, fillService *app.FillService) *Server {
	gin.SetMode(cfg.Server.GinMode)

	s := &Server{
		router:      gin.Default(),
		fillService: fillService,
		corsOrigins: cfg.CORS.AllowOrigins,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	// Browser frontends call this API cross-origin with credentials, so the
	// allow-list must name origins explicitly. Wildcard headers are ignored
	// by browsers on credentialed requests, hence the concrete list.
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     s.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Fill-ID"},
		AllowCredentials: true,
		MaxAge:           10 * time.Minute,
	}))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	api.POST("/fill-grading-tool", s.handleFillGradingTool)
	api.GET("/templates", s.handleTemplatesList)
	api.GET("/health", s.handleHealth)
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting grading-tool fill API on http://%s", addr)
	return s.router.Run(addr)
}
