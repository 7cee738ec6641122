package httpHandler

import (
	"net/http"
	"workout-server/entities"
	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type ExerciseHandler struct {
	exercises *usecases.ExerciseUseCase
}

func NewExerciseHandler(exercises *usecases.ExerciseUseCase) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

// GetAllExercises handles GET /api/exercises
func (h *ExerciseHandler) GetAllExercises(c *gin.Context) {
	exercises, err := h.exercises.GetAllExercises()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

type CreateExerciseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateExercise handles POST /api/exercises
func (h *ExerciseHandler) CreateExercise(c *gin.Context) {
	var req CreateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	exercise := entities.Exercise{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.exercises.CreateExercise(&exercise); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, exercise)
}
