package httpHandler

import (
	"net/http"
	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type WorkoutHandler struct {
	workouts *usecases.WorkoutUseCase
}

func NewWorkoutHandler(workouts *usecases.WorkoutUseCase) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

// SetPayload mirrors the wire format the client sends on a whole-workout
// update: the complete current set list, exercise given by reference.
type SetPayload struct {
	Weight      float64 `json:"weight"`
	Repetitions int     `json:"repetitions"`
	Completed   bool    `json:"completed"`
	UUID        string  `json:"uuid"`
	Exercise    struct {
		ID string `json:"id"`
	} `json:"exercise"`
}

type UpdateWorkoutRequest struct {
	Sets []SetPayload `json:"sets"`
}

type CreateTemplateRequest struct {
	Sets []SetPayload `json:"sets"`
}

func setInputs(payloads []SetPayload) []usecases.SetInput {
	inputs := make([]usecases.SetInput, 0, len(payloads))
	for _, s := range payloads {
		inputs = append(inputs, usecases.SetInput{
			UUID:        s.UUID,
			ExerciseID:  s.Exercise.ID,
			Weight:      s.Weight,
			Repetitions: s.Repetitions,
			Completed:   s.Completed,
		})
	}
	return inputs
}

// GetAllWorkouts handles GET /api/workouts
func (h *WorkoutHandler) GetAllWorkouts(c *gin.Context) {
	workouts, err := h.workouts.GetAll(CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout handles GET /api/workouts/:id
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.workouts.GetOne(c.Param("id"), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout handles POST /api/workouts
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	workout, err := h.workouts.CreateEmpty(CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateFromTemplate handles POST /api/workouts/template/:id
func (h *WorkoutHandler) CreateFromTemplate(c *gin.Context) {
	workout, err := h.workouts.CreateFromTemplate(CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// GetTemplates handles GET /api/templates
func (h *WorkoutHandler) GetTemplates(c *gin.Context) {
	templates, err := h.workouts.GetTemplates()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

// CreateTemplate handles POST /api/templates
func (h *WorkoutHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	template, err := h.workouts.CreateTemplate(CurrentUserID(c), setInputs(req.Sets))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// UpdateWorkout handles PUT /api/workouts/:id
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.workouts.UpdateSets(c.Param("id"), CurrentUserID(c), setInputs(req.Sets)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteWorkout handles DELETE /api/workouts/:id
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.workouts.Delete(c.Param("id"), CurrentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
