package handlers

import (
	"net/http"

	"github.com/fitlog/fitlog/internal/middleware"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/services"
	"github.com/gin-gonic/gin"
)

type RoutineHandler struct {
	routineService *services.RoutineService
}

func NewRoutineHandler(routineService *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

func (h *RoutineHandler) List(c *gin.Context) {
	filter := repository.RoutineFilter{
		MineOnly:   c.Query("my_routines") == "true",
		PublicOnly: c.Query("public") == "true",
		Search:     c.Query("search"),
	}
	offset, limit := parsePage(c)

	routines, err := h.routineService.List(c.Request.Context(), middleware.GetUserID(c), filter, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"routines": routines,
		"offset":   offset,
		"limit":    limit,
	})
}

func (h *RoutineHandler) Create(c *gin.Context) {
	var req services.RoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routine, err := h.routineService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"routine": routine})
}

func (h *RoutineHandler) Get(c *gin.Context) {
	routine, err := h.routineService.Get(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	likes, err := h.routineService.LikeCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"routine":     routine,
		"likes_count": likes,
	})
}

func (h *RoutineHandler) Update(c *gin.Context) {
	var req services.RoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routine, err := h.routineService.Update(c.Request.Context(), middleware.GetUserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"routine": routine})
}

func (h *RoutineHandler) Delete(c *gin.Context) {
	if err := h.routineService.Delete(c.Request.Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Routine deleted"})
}

// ToggleLike flips the caller's like on a routine and reports the
// resulting state.
func (h *RoutineHandler) ToggleLike(c *gin.Context) {
	liked, err := h.routineService.ToggleLike(c.Request.Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if liked {
		c.JSON(http.StatusCreated, gin.H{"message": "Routine liked", "liked": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Routine unliked", "liked": false})
}
