package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barbershop-admin/internal/config"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/middleware"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// LoginThrottle é implementado pelo limitador em Redis; nil desliga o limite
type LoginThrottle interface {
	Allow(ctx context.Context, email string) (bool, error)
	Fail(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

type AuthHandler struct {
	users    UserStore
	config   *config.Config
	throttle LoginThrottle
}

func NewAuthHandler(users UserStore, cfg *config.Config, throttle LoginThrottle) *AuthHandler {
	return &AuthHandler{users: users, config: cfg, throttle: throttle}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userJSON(u *models.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"role":      u.Role,
		"barber_id": u.BarberID,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Informe e-mail e senha.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx := c.Request.Context()

	if h.throttle != nil {
		allowed, err := h.throttle.Allow(ctx, email)
		if err != nil {
			log.Printf("[auth] throttle check failed: %v", err)
		}
		if !allowed {
			respond(c, httperr.ErrBusiness("too_many_attempts"), "login_failed", "Erro ao entrar.")
			return
		}
	}

	user, err := h.users.FindByEmail(ctx, email)
	if err != nil && !httperr.IsBusiness(err, "user_not_found") {
		respond(c, err, "login_failed", "Erro ao entrar.")
		return
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		if h.throttle != nil {
			if err := h.throttle.Fail(ctx, email); err != nil {
				log.Printf("[auth] throttle fail: %v", err)
			}
		}
		respond(c, httperr.ErrBusiness("invalid_credentials"), "login_failed", "Erro ao entrar.")
		return
	}

	if h.throttle != nil {
		if err := h.throttle.Reset(ctx, email); err != nil {
			log.Printf("[auth] throttle reset: %v", err)
		}
	}

	token, err := middleware.IssueToken(h.config.JWTSecret, user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userJSON(user),
		"token": token,
	})
}

// --------- Me ---------

func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		httperr.Unauthorized(c, "user_not_in_context", "Faça login para continuar.")
		return
	}

	user, err := h.users.GetUser(c.Request.Context(), *userID)
	if err != nil {
		respond(c, err, "failed_to_load_user", "Erro ao carregar usuário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userJSON(user)})
}
