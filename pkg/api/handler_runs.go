package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cortexhq/cortex/pkg/store"
)

func queryLimit(c *gin.Context) int {
	n, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (s *Server) listRuns(c *gin.Context) {
	runs, err := s.store.ListRunsForUser(c.Request.Context(), currentUser(c), queryLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

func (s *Server) getRun(c *gin.Context) {
	detail, err := s.store.GetRunDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if detail.Run.UserID != currentUser(c) {
		respondError(c, store.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// rerunRun re-drives a unit from a finished run's original event payload.
// The new run executes on the engine's workers; the response returns as soon
// as it is persisted.
func (s *Server) rerunRun(c *gin.Context) {
	orig, err := s.store.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if orig.UserID != currentUser(c) {
		respondError(c, store.ErrNotFound)
		return
	}

	r, err := s.runtime.Rerun(c.Request.Context(), orig.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	s.engine.Dispatch(r.ID)
	c.JSON(http.StatusCreated, r)
}

func (s *Server) metrics(c *gin.Context) {
	m, err := s.store.Metrics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
