package httpHandler

import (
	"net/http"
	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *usecases.UserUseCase
}

func NewUserHandler(users *usecases.UserUseCase) *UserHandler {
	return &UserHandler{users: users}
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup handles POST /api/users
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.users.Signup(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetAllUsers handles GET /api/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.users.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}
