// Package stub is a development stand-in for the remote document store.
// It serves the same HTTP contract the console consumes, backed by an
// in-memory record table, so the TUI and CLI can be exercised without the
// real ingestion pipeline.
package stub

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server bundles the gin engine with its record table.
type Server struct {
	Engine *gin.Engine
	store  *memStore
}

// New builds the stub server and its routes.
func New(logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		Engine: gin.New(),
		store:  newMemStore(),
	}
	h := &handlers{store: s.store, logger: logger}

	s.Engine.Use(gin.Recovery())
	s.Engine.Use(requestLogger(logger))
	s.Engine.Use(cors.Default())

	apiGroup := s.Engine.Group("/api")
	{
		apiGroup.GET("/documents", h.listDocuments)
		apiGroup.POST("/documents/upload", h.uploadDocument)
		apiGroup.GET("/documents/:id", h.getDocument)
		apiGroup.PUT("/documents/:id", h.updateDocument)
		apiGroup.DELETE("/documents/:id", h.deleteDocument)
		apiGroup.POST("/search/semantic", h.semanticSearch)
		apiGroup.GET("/stats", h.getStats)
	}
	s.Engine.GET("/health", h.health)

	return s
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.Engine.Run(addr)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
