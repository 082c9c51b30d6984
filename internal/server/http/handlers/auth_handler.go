package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/dto"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/middleware"
)

// AuthHandler processes login and staff account management.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)})
}

// CreateUser handles POST /api/auth/users. Only administrators may add
// accounts with a caller-chosen password.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	user, err := h.facade.CreateUser(c.Request.Context(), req.Name, req.Email, req.Password, model.UserRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// InviteUser handles POST /api/auth/users/invite. The server generates a
// password and emails it to the invitee.
func (h *AuthHandler) InviteUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var req dto.InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	user, err := h.facade.InviteUser(c.Request.Context(), req.Name, req.Email, model.UserRole(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

func (h *AuthHandler) requireAdmin(c *gin.Context) bool {
	user, err := h.facade.User(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
		return false
	}
	if user.Role != model.UserRoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "administrator role required"})
		return false
	}
	return true
}
