// Package api is the HTTP surface: a thin gin layer where every write
// endpoint delegates straight to the store, compiler, or runtime.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cortexhq/cortex/pkg/compiler"
	"github.com/cortexhq/cortex/pkg/database"
	"github.com/cortexhq/cortex/pkg/engine"
	"github.com/cortexhq/cortex/pkg/runtime"
	"github.com/cortexhq/cortex/pkg/shaper"
	"github.com/cortexhq/cortex/pkg/store"
	"github.com/cortexhq/cortex/pkg/version"
)

// Server is the API server.
type Server struct {
	store    *store.Store
	db       *database.Client
	compiler *compiler.Compiler
	runtime  *runtime.Runtime
	engine   *engine.Engine
	shaper   *shaper.Shaper

	httpSrv *http.Server
}

// NewServer creates an API server over the engine's components.
func NewServer(st *store.Store, db *database.Client, comp *compiler.Compiler, rt *runtime.Runtime, eng *engine.Engine, sh *shaper.Shaper) *Server {
	return &Server{
		store:    st,
		db:       db,
		compiler: comp,
		runtime:  rt,
		engine:   eng,
		shaper:   sh,
	}
}

// Router builds the route tree.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/health", s.health)

	api := r.Group("/api")
	api.POST("/webhooks/nango", s.handleWebhook)

	conns := api.Group("/connections", requireUser())
	conns.POST("", s.registerConnection)
	conns.GET("", s.listConnections)
	conns.PATCH("/:id", s.updateConnection)

	cortex := api.Group("/cortex", requireUser())
	cortex.GET("/units", s.listUnits)
	cortex.POST("/units", s.createUnit)
	cortex.GET("/units/:id", s.getUnit)
	cortex.PATCH("/units/:id/status", s.updateUnitStatus)
	cortex.DELETE("/units/:id", s.deleteUnit)
	cortex.GET("/units/:id/runs", s.listUnitRuns)
	cortex.GET("/runs", s.listRuns)
	cortex.GET("/runs/:id", s.getRun)
	cortex.POST("/runs/:id/rerun", s.rerunRun)
	cortex.GET("/metrics", s.metrics)

	return r
}

// Start begins serving. Blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start(addr string) error {
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	if err := s.store.Cache().Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"cache":  err.Error(),
		})
		return
	}

	engineState := "stopped"
	if s.engine.Running() {
		engineState = "running"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
		"engine":   engineState,
	})
}
