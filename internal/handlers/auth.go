package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking-server/internal/apperr"
	"salon-booking-server/internal/auth"
	"salon-booking-server/internal/config"
	"salon-booking-server/internal/middleware"
	"salon-booking-server/internal/models"
	"salon-booking-server/internal/store"
	"salon-booking-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	Users store.UserStore
	Cfg   *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users store.UserStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Users: users, Cfg: cfg}
}

// setAuthCookie attaches the signed credential to the response. The cookie
// max-age is the credential's only expiry.
func (h *AuthHandler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.Cfg.AuthCookieName,
		token,
		h.Cfg.AuthCookieMaxAge,
		"/",
		"",
		h.Cfg.Environment != "development", // Secure in prod, not in dev
		true,                               // HTTP only
	)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cfg.AuthCookieName, "", -1, "/", "", h.Cfg.Environment != "development", true)
}

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name                  string `json:"name" binding:"required"`
	Email                 string `json:"email" binding:"required,email"`
	Password              string `json:"password" binding:"required,min=6"`
	Role                  string `json:"role" binding:"required,oneof=admin hairdresser"`
	CanCreateAppointments bool   `json:"canCreateAppointments"`
	CanModifyAppointments bool   `json:"canModifyAppointments"`
}

// Register handles user registration and logs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	// Check if user already exists
	if _, err := h.Users.FindByEmail(req.Email); err == nil {
		utils.BadRequest(c, "User with this email already exists")
		return
	} else if !errors.Is(err, apperr.ErrNotFound) {
		utils.RespondError(c, err)
		return
	}

	role := models.Role(req.Role)
	user := models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  role,
		// Admins hold both capabilities no matter what was submitted.
		CanCreateAppointments: role == models.RoleAdmin || req.CanCreateAppointments,
		CanModifyAppointments: role == models.RoleAdmin || req.CanModifyAppointments,
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

	// Auto-login after registration
	token, err := auth.IssueToken(&user, h.Cfg.TokenSecret)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue token")
		return
	}
	h.setAuthCookie(c, token)

	utils.Created(c, "User registered successfully", user.Sanitize())
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			utils.RespondError(c, err)
		}
		return
	}
	// Deactivated users get the same answer as unknown ones.
	if !user.IsActive || !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := auth.IssueToken(user, h.Cfg.TokenSecret)
	if err != nil {
		utils.InternalServerError(c, "Failed to issue token")
		return
	}
	h.setAuthCookie(c, token)

	utils.Success(c, "Login successful", user.Sanitize())
}

// Logout clears the auth cookie. With a stateless credential there is no
// server-side session to destroy.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	utils.Success(c, "Logout successful", nil)
}

// GetProfile returns the live user record behind the current credential, so
// capability changes show up here even while an older token is in flight.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.Users.FindByID(claims.UserID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.Success(c, "Profile fetched successfully", user.Sanitize())
}
