package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oyunsanaa/oyunsanaa/internal/catalog"
	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/results"
)

const defaultHistoryLimit = 50

func (s *Server) handleSaveResult(c *gin.Context) {
	var p results.ResultPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed result payload"})
		return
	}

	// The verified session is the only source of identity. A user id in
	// the payload would be ignored; the wire shape has no such field.
	id := callerIdentity(c)

	res := results.ScoredResult{
		Slug:       p.TestSlug,
		Title:      p.TestTitle,
		Percentage: float64(results.ClampPct(p.ScorePct)) / 100,
		Band: catalog.Band{
			Title:   p.BandTitle,
			Summary: p.BandSummary,
		},
		Answers:   p.Answers,
		AttemptID: p.AttemptID,
	}

	if err := results.SaveRemote(c.Request.Context(), s.resultStore, id, res); err != nil {
		writeStoreError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

func (s *Server) handleLatestResult(c *gin.Context) {
	// slug is an optional filter; without it the newest row across all
	// instruments is returned.
	slug := c.Query("slug")

	id := callerIdentity(c)
	row, err := s.resultStore.Latest(c.Request.Context(), id.ID, slug)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if row == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no results found"})
		return
	}

	c.JSON(http.StatusOK, storedPayload(*row))
}

func (s *Server) handleHistory(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	id := callerIdentity(c)
	rows, err := s.resultStore.History(c.Request.Context(), id.ID, limit)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	out := make([]results.StoredPayload, len(rows))
	for i, row := range rows {
		out[i] = storedPayload(row)
	}
	c.JSON(http.StatusOK, out)
}

// moodPayload is the wire shape of a mood check-in.
type moodPayload struct {
	Score     int       `json:"score"` // 1-5
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

func (s *Server) handleSaveMood(c *gin.Context) {
	var p moodPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed mood payload"})
		return
	}
	if p.Score < 1 || p.Score > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be between 1 and 5"})
		return
	}

	id := callerIdentity(c)
	if err := s.moodRepo.Append(c.Request.Context(), id.ID, p.Score, p.Note); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mood store unavailable"})
		return
	}

	c.Status(http.StatusCreated)
}

func (s *Server) handleRecentMoods(c *gin.Context) {
	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	id := callerIdentity(c)
	entries, err := s.moodRepo.Recent(c.Request.Context(), id.ID, limit)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mood store unavailable"})
		return
	}

	out := make([]moodPayload, len(entries))
	for i, e := range entries {
		out[i] = moodPayload{Score: e.Score, Note: e.Note, CreatedAt: e.CreatedAt}
	}
	c.JSON(http.StatusOK, out)
}

func storedPayload(row results.StoredResult) results.StoredPayload {
	return results.StoredPayload{
		UserID:      row.UserID,
		TestSlug:    row.Slug,
		TestTitle:   row.Title,
		ScorePct:    row.ScorePct,
		BandTitle:   row.BandTitle,
		BandSummary: row.BandSummary,
		Answers:     row.Answers,
		AttemptID:   row.AttemptID,
		CreatedAt:   row.CreatedAt,
	}
}

// writeStoreError maps persistence errors onto the API's status codes.
func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	case errors.Is(err, results.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "result store unavailable"})
	}
}
