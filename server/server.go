// SPDX-License-Identifier: MIT

// Package server exposes a simulation.Session over a JSON HTTP API.
//
//	GET    /health              liveness
//	GET    /api/state           strategy, batch, params, active accident
//	GET    /api/cycle           last completed cycle
//	POST   /api/run             run one cycle
//	PUT    /api/strategy        {"strategy": "greedy|coordinated|optimized"}
//	POST   /api/strategy/next   advance to the next strategy
//	POST   /api/accident        close a random road and rerun
//	DELETE /api/accident        reopen the closed road
//	GET    /api/compare         run every strategy and rank them
//	GET    /api/route?from=&to= shortest path on the uncongested baseline
//	GET    /api/distances?from= baseline cost from one node to every node
//
// Costs are JSON numbers, or the string "unreachable". All handlers hold one
// mutex while they touch the session.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadflow/simulation"
)

const shutdownTimeout = 5 * time.Second

// Option customizes a Server.
type Option func(*Server)

// WithAllowOrigins restricts CORS to origins. Without it every origin is allowed.
func WithAllowOrigins(origins ...string) Option {
	return func(s *Server) { s.allowOrigins = append([]string(nil), origins...) }
}

// WithLogger sets the request logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("server: WithLogger(nil)")
	}
	return func(s *Server) { s.logger = l }
}

// Server is the HTTP adapter.
type Server struct {
	mu           sync.Mutex
	sess         *simulation.Session
	logger       *zap.Logger
	allowOrigins []string
	engine       *gin.Engine
}

// New wires the routes for sess.
func New(sess *simulation.Session, opts ...Option) *Server {
	s := &Server{sess: sess, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	cc := cors.DefaultConfig()
	if len(s.allowOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = s.allowOrigins
	}
	cc.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cc.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(cc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	api := r.Group("/api")
	api.GET("/state", s.handleState)
	api.GET("/cycle", s.handleCycle)
	api.POST("/run", s.handleRun)
	api.PUT("/strategy", s.handleSetStrategy)
	api.POST("/strategy/next", s.handleNextStrategy)
	api.POST("/accident", s.handleInjectAccident)
	api.DELETE("/accident", s.handleClearAccident)
	api.GET("/compare", s.handleCompare)
	api.GET("/route", s.handleRoute)
	api.GET("/distances", s.handleDistances)

	s.engine = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("http server shutting down")
		return hs.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
