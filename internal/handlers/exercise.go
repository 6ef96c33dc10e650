package handlers

import (
	"net/http"

	"github.com/fitlog/fitlog/internal/middleware"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/services"
	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

func (h *ExerciseHandler) List(c *gin.Context) {
	filter := repository.ExerciseFilter{
		Category:    c.Query("category"),
		MuscleGroup: c.Query("muscle_group"),
		Equipment:   c.Query("equipment"),
		Search:      c.Query("search"),
	}
	offset, limit := parsePage(c)

	exercises, err := h.exerciseService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"exercises": exercises,
		"offset":    offset,
		"limit":     limit,
	})
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	var req services.ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := h.exerciseService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"exercise": exercise})
}

func (h *ExerciseHandler) Get(c *gin.Context) {
	exercise, err := h.exerciseService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercise": exercise})
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	var req services.ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exercise, err := h.exerciseService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"exercise": exercise})
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	if err := h.exerciseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Exercise deleted"})
}
