package server

import (
	"context"
	"net/http"
	"time"

	"github.com/dimasprs/catalog-service/config"
	"github.com/dimasprs/catalog-service/internal/product/handler"
	"github.com/dimasprs/catalog-service/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	logger     *zap.Logger
}

func New(cfg *config.ServerConfig, products *handler.ProductHandler, logger *zap.Logger) *Server {
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), RequestLogger(logger), CORS())

	s := &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPPort,
			Handler:      engine,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		engine: engine,
		logger: logger,
	}

	s.registerRoutes(products)
	return s
}

func (s *Server) registerRoutes(products *handler.ProductHandler) {
	s.engine.GET("/health", s.handleHealth)

	// /products is kept alongside /api/products for older clients.
	for _, prefix := range []string{"/api/products", "/products"} {
		group := s.engine.Group(prefix)
		group.GET("", products.GetProducts)
		group.GET("/search", products.SearchProducts)
		group.POST("", products.CreateProduct)
		group.PUT("/:id", products.UpdateProduct)
		group.DELETE("/:id", products.DeleteProduct)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound,
			"Route not found: "+c.Request.Method+" "+c.Request.URL.Path)
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
