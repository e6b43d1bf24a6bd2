package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
)

func (s *Server) registerConnection(c *gin.Context) {
	var req models.RegisterConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := s.store.UpsertConnection(c.Request.Context(), currentUser(c), req.Provider, req.ConnectionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conn)
}

func (s *Server) listConnections(c *gin.Context) {
	conns, err := s.store.ListConnections(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, conns)
}

type updateConnectionRequest struct {
	Enabled *bool `json:"enabled"`
}

// updateConnection flips a connection on or off. Re-enabling an
// auto-disabled connection resets its failure counters and resumes polling.
func (s *Server) updateConnection(c *gin.Context) {
	var req updateConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled field is required"})
		return
	}

	conn, err := s.store.GetConnection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if conn.UserID != currentUser(c) {
		respondError(c, store.ErrNotFound)
		return
	}

	updated, err := s.store.SetConnectionEnabled(c.Request.Context(), conn.ID, *req.Enabled)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
