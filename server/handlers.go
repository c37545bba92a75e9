// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/roadflow/dijkstra"
	"github.com/katalvlaran/roadflow/simulation"
	"github.com/katalvlaran/roadflow/strategy"
)

type strategyRequest struct {
	Strategy string `json:"strategy" binding:"required"`
}

func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, strategy.ErrUnknownStrategy),
		errors.Is(err, simulation.ErrUnknownEndpoint),
		errors.Is(err, dijkstra.ErrVertexNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, simulation.ErrNoCycle):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (s *Server) handleState(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, stateView(s.sess))
}

func (s *Server) handleCycle(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cycle, err := s.sess.Last()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cycleView(cycle))
}

func (s *Server) handleRun(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cycle, err := s.sess.Run()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cycleView(cycle))
}

func (s *Server) handleSetStrategy(c *gin.Context) {
	var req strategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	k, err := strategy.ParseKind(req.Strategy)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.sess.SetStrategy(k); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stateView(s.sess))
}

func (s *Server) handleNextStrategy(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.NextStrategy()
	c.JSON(http.StatusOK, stateView(s.sess))
}

func (s *Server) handleInjectAccident(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	road, cycle, err := s.sess.InjectAccident()
	if err != nil {
		s.fail(c, err)
		return
	}
	if cycle == nil {
		c.JSON(http.StatusOK, gin.H{"accident": nil, "cycle": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"accident": road.String(), "cycle": cycleView(cycle)})
}

func (s *Server) handleClearAccident(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cleared := s.sess.ClearAccident()
	c.JSON(http.StatusOK, gin.H{"cleared": cleared})
}

func (s *Server) handleCompare(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cmp, err := s.sess.Compare()
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cmp)
}

func (s *Server) handleRoute(c *gin.Context) {
	from, to := c.Query("from"), c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.sess.Route(from, to)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, routeView(from, to, p))
}

func (s *Server) handleDistances(c *gin.Context) {
	from := c.Query("from")
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d, err := s.sess.Distances(from)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, distancesView(from, d))
}
