package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barbershop-admin/internal/config"
	"github.com/BruksfildServices01/barbershop-admin/internal/httperr"
	"github.com/BruksfildServices01/barbershop-admin/internal/models"
)

const (
	ContextUserID   = "userID"
	ContextUserName = "userName"
	ContextUserRole = "userRole"
	ContextBarberID = "barberID"
)

const (
	RoleAdmin  = "admin"
	RoleBarber = "barber"
)

const tokenTTL = 24 * time.Hour

// IssueToken gera o JWT HS256 da equipe
func IssueToken(secret string, user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": user.Role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}
	if user.BarberID != nil {
		claims["barber_id"] = *user.BarberID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Faça login para continuar.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Sessão expirada ou inválida.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Sessão expirada ou inválida.")
			c.Abort()
			return
		}

		userID, ok := claims["sub"].(float64)
		role, _ := claims["role"].(string)
		if !ok || role == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Sessão expirada ou inválida.")
			c.Abort()
			return
		}
		name, _ := claims["name"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserName, name)
		c.Set(ContextUserRole, role)
		if barberID, ok := claims["barber_id"].(float64); ok {
			c.Set(ContextBarberID, uint(barberID))
		}

		c.Next()
	}
}

// RequireRole bloqueia quem não tiver um dos papéis informados
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.Forbidden(c, "forbidden", "Você não tem permissão para esta ação.")
		c.Abort()
	}
}

// --------------------------------------------------
// Leitura do contexto
// --------------------------------------------------

func UserID(c *gin.Context) *uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}

func UserName(c *gin.Context) string { return c.GetString(ContextUserName) }
func Role(c *gin.Context) string     { return c.GetString(ContextUserRole) }

// BarberID: só presente para usuários com papel barber
func BarberID(c *gin.Context) *uint {
	v, ok := c.Get(ContextBarberID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
