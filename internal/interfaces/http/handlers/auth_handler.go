package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/interfaces/http/middleware"
	"luckycat.backend/internal/interfaces/http/response"
	"luckycat.backend/pkg/jwt"
)

// AuthService is the part of the auth usecase the handler needs
type AuthService interface {
	SignUp(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	SignIn(ctx context.Context, input *entities.SignInInput) (*entities.User, error)
	VerifyEmail(ctx context.Context, token string) error
	ResendVerificationEmail(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	SetNewPassword(ctx context.Context, token, password string) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService AuthService
	jwtService  *jwt.Service
	tokenExpiry time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, jwtService *jwt.Service, tokenExpiry time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
		tokenExpiry: tokenExpiry,
	}
}

// SignUp handles user registration
// POST /auth/sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input entities.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.SignUp(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email to verify your account.",
		"user":    userView(user),
	})
}

// SignIn handles user login. Credentials are checked first, then the
// verification gate: an unverified account gets 403 even with a correct
// password, and no session cookie is set.
// POST /auth/sign-in
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input entities.SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.SignIn(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !user.IsEmailVerified {
		response.Error(c, domainerrors.Forbidden("Email is not verified. Please verify your email to sign in."))
		return
	}

	token, err := h.jwtService.Generate(user.ID)
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, int(h.tokenExpiry.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  userView(user),
	})
}

// VerifyEmail redeems an email verification token
// POST /auth/confirm-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authService.VerifyEmail(c.Request.Context(), input.Token); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email verified successfully",
	})
}

// ResendVerificationEmail issues a fresh verification token
// POST /auth/resend-verification-email
func (h *AuthHandler) ResendVerificationEmail(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authService.ResendVerificationEmail(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Verification email has been sent. Please check your email.",
	})
}

// RequestPasswordReset starts the password reset flow
// POST /auth/request-password-reset
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Password reset email has been sent. Please check your email.",
	})
}

// SetNewPassword redeems a reset token and sets the new password
// POST /auth/set-new-password
func (h *AuthHandler) SetNewPassword(c *gin.Context) {
	var input struct {
		Token    string `json:"token" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authService.SetNewPassword(c.Request.Context(), input.Token, input.Password); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Password has been updated successfully",
	})
}

// Me returns the authenticated user. The same verification gate as sign-in
// applies: a stale session for a since-unverified account gets 403.
// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authorization required"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if !user.IsEmailVerified {
		response.Error(c, domainerrors.Forbidden("Email is not verified"))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userView(user)})
}

// userView is the public shape of a user; the password digest never leaves
// the entity thanks to its json tag, this trims the rest down to what the
// frontend shows.
func userView(user *entities.User) gin.H {
	return gin.H{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"role":            user.Role,
		"avatarUrl":       user.AvatarURL,
		"isEmailVerified": user.IsEmailVerified,
		"lastLoginAt":     user.LastLoginAt,
		"createdAt":       user.CreatedAt,
	}
}
