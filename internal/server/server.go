package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"employees/internal/config"
	"employees/internal/handler"
	"employees/internal/middleware"
	"employees/internal/repository"
	"employees/internal/service"
	"employees/internal/version"
	"employees/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Server represents the HTTP server
type Server struct {
	cfg   *config.Config
	log   *logger.Logger
	http  *http.Server
	mongo *mongo.Client
}

// New creates a new server instance
func New(cfg *config.Config, log *logger.Logger) (*Server, error) {
	mongoClient, err := Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	db := mongoClient.Database(cfg.Mongo.Database)

	employeeRepo := repository.NewEmployeeRepository(db)
	employeeService := service.NewEmployeeService(employeeRepo)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	router := setupRouter(cfg, log, employeeHandler)

	return &Server{
		cfg: cfg,
		log: log,
		http: &http.Server{
			Addr:    cfg.Server.Address(),
			Handler: router,
		},
		mongo: mongoClient,
	}, nil
}

func Connect(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Run starts the server and blocks until the listener stops
func (s *Server) Run() error {
	s.log.Info().Str("addr", s.http.Addr).Str("version", version.Version).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener, waiting for in-flight requests, then
// disconnects MongoDB.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.http.Shutdown(ctx); err != nil {
		return err
	}
	return s.Close()
}

// Close disconnects MongoDB client
func (s *Server) Close() error {
	if s.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mongo.Disconnect(ctx)
	}
	return nil
}

func setupRouter(cfg *config.Config, log *logger.Logger, h *handler.EmployeeHandler) *gin.Engine {
	if cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetTrustedProxies(nil)
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
			"version": version.Get(),
		})
	})

	api := r.Group("/api")

	// Employee routes
	employees := api.Group("/employees")
	{
		employees.POST("", h.Create)
		employees.GET("", h.List)
		employees.GET("/:id", h.Get)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}

	return r
}
