package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"salon-booking-server/internal/apperr"
	"salon-booking-server/internal/models"
	"salon-booking-server/internal/store"
	"salon-booking-server/internal/utils"
)

// UserHandler handles user-related requests (typically admin operations).
type UserHandler struct {
	Users store.UserStore
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore) *UserHandler {
	return &UserHandler{Users: users}
}

func sanitizeAll(users []models.User) []models.UserSanitized {
	out := make([]models.UserSanitized, 0, len(users))
	for i := range users {
		out = append(out, users[i].Sanitize())
	}
	return out
}

// GetUsers lists active users, optionally filtered by role. Available to any
// authenticated user: the calendar needs the hairdresser roster.
func (h *UserHandler) GetUsers(c *gin.Context) {
	role := models.Role(c.Query("role"))
	if role != "" && !models.ValidRole(role) {
		utils.BadRequest(c, "Unknown role")
		return
	}

	users, err := h.Users.Find(role, true)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Users fetched successfully", sanitizeAll(users))
}

// CreateUserRequest represents the request body for creating a user by an admin.
type CreateUserRequest struct {
	Name                  string `json:"name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"required,min=6"`
	Role                  string `json:"role" binding:"required,oneof=admin hairdresser"`
	CanCreateAppointments bool   `json:"canCreateAppointments"`
	CanModifyAppointments bool   `json:"canModifyAppointments"`
}

// CreateUser handles creating a new user (admin).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if _, err := h.Users.FindByEmail(req.Email); err == nil {
		utils.BadRequest(c, "User with this email already exists")
		return
	} else if !errors.Is(err, apperr.ErrNotFound) {
		utils.RespondError(c, err)
		return
	}

	user := models.User{
		Name:                  req.Name,
		Email:                 req.Email,
		Role:                  models.Role(req.Role),
		CanCreateAppointments: req.CanCreateAppointments,
		CanModifyAppointments: req.CanModifyAppointments,
		IsActive:              true,
	}
	if err := user.SetPassword(req.Password); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.Users.Insert(&user); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, "User created successfully", user.Sanitize())
}

// UpdateUserRequest represents a partial user update by an admin. A present
// password is re-hashed; an absent one is left alone.
type UpdateUserRequest struct {
	Name                  *string `json:"name"`
	Email                 *string `json:"email" binding:"omitempty,email"`
	Password              *string `json:"password" binding:"omitempty,min=6"`
	Role                  *string `json:"role" binding:"omitempty,oneof=admin hairdresser"`
	CanCreateAppointments *bool   `json:"canCreateAppointments"`
	CanModifyAppointments *bool   `json:"canModifyAppointments"`
	IsActive              *bool   `json:"isActive"`
}

// UpdateUser handles updating a user by ID (admin).
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Users.FindByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = models.Role(*req.Role)
	}
	if req.CanCreateAppointments != nil {
		user.CanCreateAppointments = *req.CanCreateAppointments
	}
	if req.CanModifyAppointments != nil {
		user.CanModifyAppointments = *req.CanModifyAppointments
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			utils.InternalServerError(c, "Failed to hash password")
			return
		}
	}

	if err := h.Users.Update(user); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "User updated successfully", user.Sanitize())
}

// DeactivateUser soft-deletes a user (admin). The record stays so historical
// appointments keep a valid hairdresser reference.
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	if err := h.Users.DeactivateByID(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "User deactivated successfully", nil)
}

// Bootstrap seeds a default admin and a sample hairdresser on a fresh
// database. It does nothing once an admin exists.
func (h *UserHandler) Bootstrap(c *gin.Context) {
	admins, err := h.Users.Find(models.RoleAdmin, false)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if len(admins) > 0 {
		utils.Success(c, "Admin user already exists", nil)
		return
	}

	admin := models.User{
		Name:                  "Administrator",
		Email:                 "admin@salon.local",
		Role:                  models.RoleAdmin,
		CanCreateAppointments: true,
		CanModifyAppointments: true,
		IsActive:              true,
	}
	if err := admin.SetPassword("admin123"); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}
	if err := h.Users.Insert(&admin); err != nil {
		utils.RespondError(c, err)
		return
	}

	hairdresser := models.User{
		Name:                  "Maria Garcia",
		Email:                 "maria@salon.local",
		Role:                  models.RoleHairdresser,
		CanCreateAppointments: true,
		CanModifyAppointments: true,
		IsActive:              true,
	}
	if err := hairdresser.SetPassword("hairdresser123"); err != nil {
		utils.InternalServerError(c, "Failed to hash password")
		return
	}
	if err := h.Users.Insert(&hairdresser); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Created(c, "Database initialized successfully", gin.H{
		"adminEmail":       admin.Email,
		"hairdresserEmail": hairdresser.Email,
	})
}
