package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aidosk/taskvault/internal/domain"
	"github.com/aidosk/taskvault/internal/metrics"
	"github.com/aidosk/taskvault/internal/session"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, email string) (*domain.User, error)
}

type AuthHandler struct {
	authUsecase  authUsecaser
	logger       *slog.Logger
	sessionTTL   time.Duration
	secureCookie bool
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger, sessionTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		logger:       logger.With("component", "auth_handler"),
		sessionTTL:   sessionTTL,
		secureCookie: secureCookie,
	}
}

// userResponse deliberately has no field for the password hash.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type signupRequest struct {
	Name     string `json:"name"     binding:"required,max=128"`
	Email    string `json:"email"    binding:"required,email,max=256"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			c.JSON(http.StatusConflict, gin.H{"error": errEmailTaken})
			return
		}
		metrics.SignupsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "signup", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
// The 401 body never reveals whether the email exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	session.SetCookie(c.Writer, token, h.sessionTTL, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// POST /auth/logout
// Stateless tokens cannot be revoked server-side; logout just drops the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	session.ClearCookie(c.Writer, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// GET /auth/me
// Runs behind the auth middleware. The account may have been deleted after
// the token was issued; that is a 404, never a stale identity.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUsecase.GetProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "get profile", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

type updateProfileRequest struct {
	Name  string `json:"name"  binding:"required,max=128"`
	Email string `json:"email" binding:"required,email,max=256"`
}

// PUT /me
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	user, err := h.authUsecase.UpdateProfile(c.Request.Context(), c.GetString("userID"), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": errUserNotFound})
		case errors.Is(err, domain.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"error": errEmailTaken})
		default:
			h.logger.ErrorContext(c.Request.Context(), "update profile", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}
