package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/interfaces/http/middleware"
	"luckycat.backend/internal/interfaces/http/response"
)

// UserService is the part of the user usecase the handler needs
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	Update(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error)
	ConfirmPassword(ctx context.Context, id uuid.UUID, password string) (bool, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserHandler handles the authenticated user's account endpoints
type UserHandler struct {
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get returns the authenticated user's account
// GET /user
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization required"))
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

// UpdateName changes the account's display name
// PATCH /user/name
func (h *UserHandler) UpdateName(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization required"))
		return
	}

	var input struct {
		Name string `json:"name" binding:"required,min=2,max=255"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), userID, &entities.UserPatch{Name: &input.Name})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

// UpdateAvatar changes the account's avatar URL
// PATCH /user/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization required"))
		return
	}

	var input struct {
		AvatarURL string `json:"avatarUrl" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), userID, &entities.UserPatch{AvatarURL: &input.AvatarURL})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

// ConfirmPassword checks the account password, e.g. before a destructive
// action in the frontend
// POST /user/confirm-password
func (h *UserHandler) ConfirmPassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization required"))
		return
	}

	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ok, err := h.userService.ConfirmPassword(c.Request.Context(), userID, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"confirmed": ok})
}

// UpdatePassword changes the account password
// PATCH /user/password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization required"))
		return
	}

	var input struct {
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.userService.UpdatePassword(c.Request.Context(), userID, input.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Password has been updated successfully",
	})
}

// Delete removes the authenticated user's account and clears the session
// cookie
// DELETE /user
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization required"))
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{
		"message": "Account has been deleted",
	})
}
