package handlers

import (
	"errors"
	"net/http"

	"salao/services/user"
	"salao/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account and authentication endpoints.
type UserHandler struct {
	UserService user.UserService
}

// NewUserHandler builds a UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// RegisterUserHandler handles POST /api/users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.Register(req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /api/users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.UserService.Authenticate(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Authentication failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetUsersHandler handles GET /api/users with an optional role filter.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	role := c.Query("role")
	users, err := h.UserService.ListUsers(role)
	if err != nil {
		utils.GetLogger().Error("Failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetEmployeesHandler handles GET /api/users/employees.
func (h *UserHandler) GetEmployeesHandler(c *gin.Context) {
	employees, err := h.UserService.ListEmployees()
	if err != nil {
		utils.GetLogger().Error("Failed to list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetUserByIDHandler handles GET /api/users/id/:id.
func (h *UserHandler) GetUserByIDHandler(c *gin.Context) {
	id := c.Param("id")
	usr, err := h.UserService.GetUserByID(id)
	if err != nil {
		utils.GetLogger().Error("User not found", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateUserHandler handles PUT /api/users/update/:id.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	// Only the account holder or an admin may edit a profile.
	if c.GetString("userID") != id && c.GetString("userRole") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		return
	}

	var patch user.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := h.UserService.UpdateUser(id, patch)
	if err != nil {
		logger.Error("Update error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/delete/:id.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.UserService.DeleteUser(id); err != nil {
		utils.GetLogger().Error("Delete error", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
