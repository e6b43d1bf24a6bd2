package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cortexhq/cortex/ent"
	"github.com/cortexhq/cortex/pkg/models"
	"github.com/cortexhq/cortex/pkg/store"
)

func (s *Server) listUnits(c *gin.Context) {
	units, err := s.store.ListUnits(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, units)
}

// createUnit accepts either a raw natural-language prompt (compiled into a
// plan) or an already structured when/if/then body (validated and saved
// as-is).
func (s *Server) createUnit(c *gin.Context) {
	var req models.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rec *store.UnitRecord
	switch {
	case req.Prompt != "":
		compiled, err := s.compiler.CompileFromPrompt(c.Request.Context(), currentUser(c), req.Prompt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rec = compiled

	case req.When != nil && len(req.Then) > 0:
		name := req.Name
		if name == "" {
			name = "Untitled rule"
		}
		rec = &store.UnitRecord{
			ID:      uuid.New().String(),
			OwnerID: currentUser(c),
			Plan: models.Plan{
				Name: name,
				When: *req.When,
				If:   req.If,
				Then: req.Then,
			},
			Status: "active",
		}

	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "either prompt or when+then is required",
		})
		return
	}

	u, err := s.store.SaveUnit(c.Request.Context(), *rec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (s *Server) getUnit(c *gin.Context) {
	u, err := s.ownedUnit(c)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) updateUnitStatus(c *gin.Context) {
	var req models.UpdateUnitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	u, err := s.ownedUnit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	updated, err := s.store.UpdateUnitStatus(c.Request.Context(), u.ID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteUnit(c *gin.Context) {
	u, err := s.ownedUnit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.store.DeleteUnit(c.Request.Context(), u.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listUnitRuns(c *gin.Context) {
	u, err := s.ownedUnit(c)
	if err != nil {
		respondError(c, err)
		return
	}

	runs, err := s.store.ListRunsForUnit(c.Request.Context(), u.ID, queryLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

// ownedUnit loads the :id unit and hides other users' units behind the same
// not-found as missing ones.
func (s *Server) ownedUnit(c *gin.Context) (*ent.Unit, error) {
	u, err := s.store.GetUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		return nil, err
	}
	if u.OwnerID != currentUser(c) {
		return nil, store.ErrNotFound
	}
	return u, nil
}
