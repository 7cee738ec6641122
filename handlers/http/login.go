package httpHandler

import (
	"net/http"
	"workout-server/usecases"

	"github.com/gin-gonic/gin"
)

type LoginHandler struct {
	users  *usecases.UserUseCase
	secret []byte
}

func NewLoginHandler(users *usecases.UserUseCase, secret []byte) *LoginHandler {
	return &LoginHandler{users: users, secret: secret}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Login handles POST /api/login
func (h *LoginHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := IssueToken(user, h.secret)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}
