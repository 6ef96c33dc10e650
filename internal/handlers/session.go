package handlers

import (
	"net/http"
	"time"

	"github.com/fitlog/fitlog/internal/middleware"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/services"
	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

func (h *SessionHandler) List(c *gin.Context) {
	var filter repository.SessionFilter

	if v := c.Query("is_completed"); v != "" {
		completed := v == "true"
		filter.IsCompleted = &completed
	}
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		filter.EndDate = &t
	}
	offset, limit := parsePage(c)

	sessions, err := h.sessionService.List(c.Request.Context(), middleware.GetUserID(c), filter, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessions": sessions,
		"offset":   offset,
		"limit":    limit,
	})
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req services.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Start(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.sessionService.Get(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *SessionHandler) Update(c *gin.Context) {
	var req services.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.sessionService.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session deleted"})
}

// Complete closes out a session, finalizing its totals and updating the
// owner's lifetime stats.
func (h *SessionHandler) Complete(c *gin.Context) {
	session, err := h.sessionService.Complete(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session completed",
		"session": session,
	})
}

func (h *SessionHandler) AppendSet(c *gin.Context) {
	var req services.AppendSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := h.sessionService.AppendSet(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"set": set})
}

func (h *SessionHandler) ListSets(c *gin.Context) {
	sets, err := h.sessionService.ListSets(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sets": sets})
}

func (h *SessionHandler) GetSet(c *gin.Context) {
	set, err := h.sessionService.GetSet(c.Request.Context(), middleware.GetUserID(c), c.Param("set_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"set": set})
}

func (h *SessionHandler) UpdateSet(c *gin.Context) {
	var req services.AppendSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set, err := h.sessionService.UpdateSet(c.Request.Context(), middleware.GetUserID(c), c.Param("set_id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"set": set})
}

func (h *SessionHandler) DeleteSet(c *gin.Context) {
	if err := h.sessionService.DeleteSet(c.Request.Context(), middleware.GetUserID(c), c.Param("set_id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Set deleted"})
}

// Stats summarizes the caller's recent completed sessions.
func (h *SessionHandler) Stats(c *gin.Context) {
	summary, sessions, err := h.sessionService.RecentStats(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":           summary,
		"recent_sessions": sessions,
	})
}
