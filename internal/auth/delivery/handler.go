package delivery

import (
	"errors"
	"net/http"

	authdomain "stayhub-backend/internal/auth/domain"
	authdto "stayhub-backend/internal/auth/dto"
	"stayhub-backend/internal/auth/usecase"
	"stayhub-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	cfg         *config.Config
	log         *zap.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cfg:         cfg,
		log:         log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already in use"})
			return
		}
		h.log.Error("register failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, sessionToken, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.setAuthCookie(c, sessionToken, int(h.cfg.JWTExpiry.Seconds()))
	c.JSON(http.StatusOK, userResponse(user))
}

// Logout clears the auth cookie. The token itself stays cryptographically
// valid until its natural expiry; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	identity, ok := IdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	user, err := h.authUsecase.Profile(identity.UserID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		h.log.Error("profile lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

// setAuthCookie writes the auth cookie. Logout must pass the exact same
// attributes with maxAge -1 or some clients will keep the cookie.
func (h *AuthHandler) setAuthCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(AuthCookieName, value, maxAge, "/", "", h.cfg.IsProduction(), true)
}

func userResponse(user *authdomain.User) authdto.UserResponse {
	return authdto.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
